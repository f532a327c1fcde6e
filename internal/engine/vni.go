package engine

import (
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
)

// VNIMethod is the VNI InputMethod: tones live on digits 1-5 (plus 0 to
// remove), diacritics on 6 (circumflex), 7 (horn), 8 (breve), 9 (stroke).
// Grounded on the teacher's vni.go (vniToneKeys/vniVowelKeys).
type VNIMethod struct{}

// NewVNIMethod returns the VNI InputMethod.
func NewVNIMethod() VNIMethod { return VNIMethod{} }

func (VNIMethod) Name() string { return "VNI" }

func (VNIMethod) NumericModifiersOnly() bool { return true }

func (VNIMethod) Classify(key keycode.Code) Modifier {
	switch key {
	case keycode.KeyN1:
		return Modifier{Kind: ModMark, Mark: phonology.MarkAcute}
	case keycode.KeyN2:
		return Modifier{Kind: ModMark, Mark: phonology.MarkGrave}
	case keycode.KeyN3:
		return Modifier{Kind: ModMark, Mark: phonology.MarkHook}
	case keycode.KeyN4:
		return Modifier{Kind: ModMark, Mark: phonology.MarkTilde}
	case keycode.KeyN5:
		return Modifier{Kind: ModMark, Mark: phonology.MarkDot}
	case keycode.KeyN0:
		return Modifier{Kind: ModRemove}
	case keycode.KeyN6:
		return Modifier{Kind: ModTone, Tone: phonology.ToneCircumflex}
	case keycode.KeyN7:
		return Modifier{Kind: ModTone, Tone: phonology.ToneHorn}
	case keycode.KeyN8:
		return Modifier{Kind: ModTone, Tone: phonology.ToneBreve}
	case keycode.KeyN9:
		return Modifier{Kind: ModStroke}
	default:
		return Modifier{Kind: ModNone}
	}
}
