package engine

import (
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
)

// TelexMethod is the Telex InputMethod: tone/mark modifiers live on letter
// keys (s/f/r/x/j for marks, z to remove, d to stroke, a/e/o doubling for
// circumflex, w for horn/breve). Grounded on the teacher's telex.go, whose
// per-rune lookup tables (telexToneKeys, telexDoublePatterns,
// telexHornPatterns) are collapsed here into one stateless Classify.
type TelexMethod struct{}

// NewTelexMethod returns the Telex InputMethod.
func NewTelexMethod() TelexMethod { return TelexMethod{} }

func (TelexMethod) Name() string { return "Telex" }

func (TelexMethod) NumericModifiersOnly() bool { return false }

// Classify reports the modifier a key would request in Telex, independent
// of buffer state; the engine's modifier-application functions
// (applyTone/applyMark/...) own target search and fall through to a plain
// letter when no valid target exists.
func (TelexMethod) Classify(key keycode.Code) Modifier {
	switch key {
	case keycode.KeyS:
		return Modifier{Kind: ModMark, Mark: phonology.MarkAcute}
	case keycode.KeyF:
		return Modifier{Kind: ModMark, Mark: phonology.MarkGrave}
	case keycode.KeyR:
		return Modifier{Kind: ModMark, Mark: phonology.MarkHook}
	case keycode.KeyX:
		return Modifier{Kind: ModMark, Mark: phonology.MarkTilde}
	case keycode.KeyJ:
		return Modifier{Kind: ModMark, Mark: phonology.MarkDot}
	case keycode.KeyZ:
		return Modifier{Kind: ModRemove}
	case keycode.KeyD:
		return Modifier{Kind: ModStroke}
	case keycode.KeyW:
		return Modifier{Kind: ModWAsVowel}
	case keycode.KeyA, keycode.KeyE, keycode.KeyO:
		return Modifier{Kind: ModTone, Tone: phonology.ToneCircumflex}
	default:
		return Modifier{Kind: ModNone}
	}
}
