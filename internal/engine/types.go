// Package engine is the Vietnamese IME keystroke transformation engine:
// the entity that owns the in-flight syllable buffer, interprets
// Telex/VNI modifier conventions, applies diacritic/tone placement, runs
// the English detector and instant-restore mechanism, and emits minimal
// edit deltas to the host. This is a from-scratch generalisation of the
// teacher's interface-driven engine (Engine/InputMethod/OutputFormat) to
// a buffer-and-edit-delta model: Syllable becomes Buffer, ProcessResult
// becomes EditDelta, and ToneMark/VowelMark become the Mark/Tone pair
// internal/phonology defines.
package engine

import (
	"github.com/username/goviet-ime/internal/keycode"
	"github.com/username/goviet-ime/internal/phonology"
	"github.com/username/goviet-ime/internal/shortcut"
)

// BufferCap is the bounded capacity of the in-flight syllable buffer.
const BufferCap = 64

// RawInputCap is the bounded capacity of the raw-input ring.
const RawInputCap = 64

// HistoryCap is the bounded capacity of the word-history stack.
const HistoryCap = 8

// Char is one cell of the in-flight buffer.
type Char struct {
	Key    keycode.Code   // keycode of the underlying Latin letter
	Caps   bool           // case at time of entry
	Tone   phonology.Tone // diacritic slot: none | circumflex | horn | breve
	Mark   phonology.Mark // tonal-accent slot: none | acute | grave | hook | tilde | dot
	Stroke bool           // meaningful only when Key == keycode.KeyD
}

// Rune returns the bare Latin letter this cell holds, honouring Caps, with
// no tone/mark/stroke applied.
func (c Char) Rune() rune {
	r, _ := keycode.ToRune(c.Key, c.Caps)
	return r
}

// Glyph returns the fully composed on-screen rune for this cell, consulting
// chartable for vowels and the stroke rule for D.
func (c Char) Glyph() rune {
	if c.Key == keycode.KeyD {
		if c.Stroke {
			return composeStroke(c.Caps)
		}
		return c.Rune()
	}
	base, isVowel := keycode.ToRune(c.Key, false)
	if !isVowel {
		return c.Rune()
	}
	if g, ok := compose(base, c.Caps, c.Tone, c.Mark); ok {
		return g
	}
	return c.Rune()
}

// Keystroke is one entry of the raw-input ring: the key actually pressed
// and whether it was capitalised, in true keystroke order.
type Keystroke struct {
	Key  keycode.Code
	Caps bool
}

// TransformKind tags the kind of the most recent successful modifier
// application, consulted by the double-press-revert check at the top of
// the modifier pipeline.
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformStroke
	TransformTone
	TransformMark
	TransformWAsVowel
)

// Transform records the kind and, where relevant, the key and value of the
// most recent successful modifier application.
type Transform struct {
	Kind TransformKind
	Key  keycode.Code
	Tone phonology.Tone
	Mark phonology.Mark
}

// EditAction is the action field of an EditDelta.
type EditAction uint8

const (
	// ActionPassthrough means the host should handle the raw key itself;
	// the engine made no decision about it.
	ActionPassthrough EditAction = 0
	// ActionConsume means the host should delete Backspace screen
	// characters and then insert Chars.
	ActionConsume EditAction = 1
)

// EditDelta is the engine's output: a screen-edit instruction, or a
// passthrough sentinel. Backspace/Count saturate at uint8 — no delta this
// engine produces ever needs more than 255 screen characters of edit,
// since BufferCap is 64.
type EditDelta struct {
	Action    EditAction
	Backspace uint8
	Count     uint8
	Chars     []rune
}

// Passthrough is the canonical no-op/let-the-host-handle-it delta.
func Passthrough() EditDelta {
	return EditDelta{Action: ActionPassthrough}
}

func saturateU8(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func consume(backspace int, chars []rune) EditDelta {
	if len(chars) > 255 {
		chars = chars[:255]
	}
	return EditDelta{
		Action:    ActionConsume,
		Backspace: saturateU8(backspace),
		Count:     uint8(len(chars)),
		Chars:     chars,
	}
}

// Method selects the Vietnamese input convention in effect.
type Method uint8

const (
	MethodTelex       Method = 0
	MethodVNI         Method = 1
	MethodPassthrough Method = 2
)

func (m Method) String() string {
	switch m {
	case MethodTelex:
		return "telex"
	case MethodVNI:
		return "vni"
	case MethodPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Config holds the engine's persistent, host-controlled settings. It
// survives hard resets and only changes when the host calls a setter.
type Config struct {
	Method                Method
	Enabled               bool
	SkipWShortcut         bool
	EscRestoreEnabled     bool
	FreeToneEnabled       bool
	ModernTone            bool
	InstantRestoreEnabled bool
	ShortcutsEnabled      bool
}

// DefaultConfig mirrors the teacher's DefaultConfig: Telex, modern tone
// rule, instant restore and shortcuts enabled.
func DefaultConfig() Config {
	return Config{
		Method:                MethodTelex,
		Enabled:               true,
		SkipWShortcut:         false,
		EscRestoreEnabled:     true,
		FreeToneEnabled:       false,
		ModernTone:            true,
		InstantRestoreEnabled: true,
		ShortcutsEnabled:      true,
	}
}

// InputMethod is the tagged-variant modifier interpreter: given a key, it
// reports what kind of modifier the key would request, independent of
// buffer state. The engine's modifier pipeline (modifiers.go) owns target
// search, adjacency rules, and validation — shared machinery, not
// per-method behaviour.
type InputMethod interface {
	Name() string
	Classify(key keycode.Code) Modifier
	// NumericModifiersOnly reports whether this method's modifiers live on
	// the digit keys (VNI) rather than letter keys (Telex).
	NumericModifiersOnly() bool
}

// ModifierKind is the interpretation Classify assigns to a key.
type ModifierKind int

const (
	ModNone ModifierKind = iota
	ModStroke
	ModTone
	ModMark
	ModRemove
	ModWAsVowel
)

// Modifier is the stateless classification of a single key.
type Modifier struct {
	Kind ModifierKind
	Tone phonology.Tone
	Mark phonology.Mark
}

// Engine is the sole owner of its Buffer, RawInput ring, WordHistory, and
// ShortcutTable. It is not safe for concurrent use; the host must
// serialise calls.
type Engine struct {
	config Config
	method InputMethod

	buffer    Buffer
	raw       RawInput
	history   WordHistory
	shortcuts *shortcut.Table

	lastTransform Transform

	spacesAfterCommit  int
	breakAfterCommit   int
	isEnglishWord      bool
	hasNonLetterPrefix bool
}

// New creates an Engine with the given input method, default
// configuration, and an empty shortcut table.
func New(method InputMethod) *Engine {
	cfg := DefaultConfig()
	cfg.Method = methodOf(method)
	return &Engine{
		config:    cfg,
		method:    method,
		shortcuts: shortcut.NewTable(),
	}
}

// SetInputMethod swaps the active modifier interpreter.
func (e *Engine) SetInputMethod(method InputMethod) {
	e.method = method
	e.config.Method = methodOf(method)
}

func methodOf(m InputMethod) Method {
	switch m.Name() {
	case "Telex":
		return MethodTelex
	case "VNI":
		return MethodVNI
	default:
		return MethodPassthrough
	}
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Shortcuts returns the engine's shortcut table for configuration.
func (e *Engine) Shortcuts() *shortcut.Table {
	return e.shortcuts
}
