// Command govietd is the Fcitx5-facing daemon: it exports internal/engine
// over the D-Bus session bus exactly as the teacher's cmd/daemon did,
// extended with the configuration setters of spec.md §6. Of the shortcut
// API only JSON import and export of the whole table are exposed.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	govietconfig "github.com/username/goviet-ime/internal/config"
	"github.com/username/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"

	modShift   uint32 = 1 << 0
	modControl uint32 = 1 << 2
)

// InputEngine is the D-Bus object Fcitx5 talks to.
type InputEngine struct {
	engine     *engine.Engine
	configPath string
	logger     *log.Logger
}

// NewInputEngine creates an InputEngine with default Telex settings.
func NewInputEngine(logger *log.Logger, configPath string) *InputEngine {
	return &InputEngine{
		engine:     engine.New(engine.NewTelexMethod()),
		configPath: configPath,
		logger:     logger,
	}
}

// ProcessKey handles a single key event from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl bitmask).
// Output: handled (engine consumed the key), backspace (screen chars to
// delete first), commitText (chars to insert after the backspace).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, uint8, string, *dbus.Error) {
	shift := modifiers&modShift != 0
	ctrl := modifiers&modControl != 0

	key, caps, ok := keyFromKeysym(keysym, shift)
	if !ok {
		if e.logger != nil {
			e.logger.Printf("Key: 0x%x (unmapped) | passthrough", keysym)
		}
		return false, 0, "", nil
	}

	delta := e.engine.OnKey(key, caps, ctrl, shift)

	if e.logger != nil {
		e.logger.Printf("Key: 0x%x | Handled: %v | Backspace: %d | Commit: %q",
			keysym, delta.Action == engine.ActionConsume, delta.Backspace, string(delta.Chars))
	}

	if delta.Action != engine.ActionConsume {
		return false, 0, "", nil
	}
	return true, delta.Backspace, string(delta.Chars), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.FullClear()
	if e.logger != nil {
		e.logger.Println("Engine reset")
	}
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.logConfigChange("enabled", enabled)
	return nil
}

// SetMethod switches between "telex", "vni" and "passthrough".
func (e *InputEngine) SetMethod(method string) *dbus.Error {
	switch method {
	case "vni":
		e.engine.SetMethod(engine.MethodVNI)
	case "passthrough":
		e.engine.SetMethod(engine.MethodPassthrough)
	default:
		e.engine.SetMethod(engine.MethodTelex)
	}
	e.logConfigChange("method", method)
	return nil
}

func (e *InputEngine) SetSkipWShortcut(v bool) *dbus.Error {
	e.engine.SetSkipWShortcut(v)
	e.logConfigChange("skip_w_shortcut", v)
	return nil
}

func (e *InputEngine) SetEscRestore(v bool) *dbus.Error {
	e.engine.SetEscRestore(v)
	e.logConfigChange("esc_restore_enabled", v)
	return nil
}

func (e *InputEngine) SetFreeTone(v bool) *dbus.Error {
	e.engine.SetFreeTone(v)
	e.logConfigChange("free_tone_enabled", v)
	return nil
}

func (e *InputEngine) SetModernTone(v bool) *dbus.Error {
	e.engine.SetModernTone(v)
	e.logConfigChange("modern_tone", v)
	return nil
}

func (e *InputEngine) SetEnglishAutoRestore(v bool) *dbus.Error {
	e.engine.SetEnglishAutoRestore(v)
	e.logConfigChange("instant_restore_enabled", v)
	return nil
}

func (e *InputEngine) SetShortcutsEnabled(v bool) *dbus.Error {
	e.engine.SetShortcutsEnabled(v)
	e.logConfigChange("shortcuts_enabled", v)
	return nil
}

// ImportShortcuts merges shortcuts into the table from its JSON wire
// form (spec.md §4.5), returning the count actually added.
func (e *InputEngine) ImportShortcuts(data string) (int32, *dbus.Error) {
	n, err := e.engine.Shortcuts().FromJSON(data)
	if err != nil {
		return 0, dbus.MakeFailedError(err)
	}
	return int32(n), nil
}

// ExportShortcuts returns the shortcut table in its JSON wire form.
func (e *InputEngine) ExportShortcuts() (string, *dbus.Error) {
	data, err := e.engine.Shortcuts().ToJSON()
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return data, nil
}

// SaveConfig persists the current configuration to disk.
func (e *InputEngine) SaveConfig() *dbus.Error {
	f := govietconfig.FromEngineConfig(e.engine.Config())
	if err := govietconfig.Save(e.configPath, f); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

func (e *InputEngine) logConfigChange(field string, value any) {
	if e.logger != nil {
		e.logger.Printf("Config: %s = %v", field, value)
	}
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	configPath, err := govietconfig.Path()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to resolve config path:", err)
		os.Exit(1)
	}

	inputEngine := NewInputEngine(logger, configPath)
	if f, err := govietconfig.Load(configPath); err == nil {
		f.Apply(inputEngine.engine)
	} else if logger != nil {
		logger.Printf("Config: failed to load %s: %v", configPath, err)
	}

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("GoViet-IME daemon is running")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: %s\n", inputEngine.engine.Config().Method)
	fmt.Printf("  Config:      %s\n", configPath)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := inputEngine.SaveConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to save config on shutdown:", err)
	}
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
