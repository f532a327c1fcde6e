package engine

import "github.com/username/goviet-ime/internal/keycode"

// PassthroughMethod is the no-op InputMethod used when Config.Method is
// MethodPassthrough: every key classifies as a plain letter, so the
// engine never applies a Vietnamese transform (it still tracks the buffer
// so backspace/ESC/shortcut bookkeeping keeps working uniformly).
type PassthroughMethod struct{}

// NewPassthroughMethod returns the passthrough InputMethod.
func NewPassthroughMethod() PassthroughMethod { return PassthroughMethod{} }

func (PassthroughMethod) Name() string { return "Passthrough" }

func (PassthroughMethod) NumericModifiersOnly() bool { return false }

func (PassthroughMethod) Classify(keycode.Code) Modifier {
	return Modifier{Kind: ModNone}
}
