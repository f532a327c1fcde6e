package engine

// The setters below are the external configuration surface (spec.md §6).
// Each mutates e.config and, where the change affects in-flight
// composition, resets enough state to keep the buffer consistent with
// the new setting rather than leaving a half-composed word behind.

// SetMethod switches the active input method. Changing method mid-word
// would leave raw-input keystrokes interpreted under rules they weren't
// typed against, so the per-word state is hard-reset.
func (e *Engine) SetMethod(method Method) {
	e.config.Method = method
	switch method {
	case MethodVNI:
		e.method = NewVNIMethod()
	case MethodPassthrough:
		e.method = NewPassthroughMethod()
	default:
		e.method = NewTelexMethod()
	}
	e.hardReset()
}

// SetEnabled toggles the engine on or off. Disabling clears the buffer,
// raw-input and word-history outright, matching the "disabled" state
// OnKey falls into for every subsequent keystroke.
func (e *Engine) SetEnabled(enabled bool) {
	e.config.Enabled = enabled
	if !enabled {
		e.fullClear()
	}
}

// SetSkipWShortcut enables or disables the W-as-shortcut-for-"ư" bare
// keystroke some Telex layouts use outside of a word context.
func (e *Engine) SetSkipWShortcut(skip bool) {
	e.config.SkipWShortcut = skip
}

// SetEscRestore enables or disables ESC reverting the buffer to raw
// keystrokes (spec.md §4.3.3).
func (e *Engine) SetEscRestore(enabled bool) {
	e.config.EscRestoreEnabled = enabled
}

// SetFreeTone enables or disables free-tone-placement mode, in which
// syllable validation (spec.md §4.2.6) is bypassed.
func (e *Engine) SetFreeTone(enabled bool) {
	e.config.FreeToneEnabled = enabled
}

// SetModernTone selects between the modern ("òa", "úy") and traditional
// ("oà", "uý") tone-placement rule (spec.md §4.2.2).
func (e *Engine) SetModernTone(modern bool) {
	e.config.ModernTone = modern
}

// SetEnglishAutoRestore enables or disables instant-restore of
// high-confidence English words (spec.md §4.3.5).
func (e *Engine) SetEnglishAutoRestore(enabled bool) {
	e.config.InstantRestoreEnabled = enabled
}

// SetShortcutsEnabled enables or disables shortcut expansion, both
// Immediate (mid-word) and OnWordBoundary (spec.md §4.5).
func (e *Engine) SetShortcutsEnabled(enabled bool) {
	e.config.ShortcutsEnabled = enabled
}
