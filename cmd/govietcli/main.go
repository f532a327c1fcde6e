// Command govietcli is a terminal REPL that drives internal/engine
// directly over a raw keystream, for manual interactive testing without
// Fcitx5/D-Bus. It puts stdin in raw mode the way the pack's terminal
// examples (gdamore/tcell's tty package, phroun/pawscript's key input
// manager) do, via golang.org/x/term.
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/username/goviet-ime/internal/engine"
	"github.com/username/goviet-ime/internal/keycode"
)

func main() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "govietcli: stdin is not a terminal")
		os.Exit(1)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "govietcli: failed to enter raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, state)

	eng := engine.New(engine.NewTelexMethod())
	if len(os.Args) > 1 && os.Args[1] == "vni" {
		eng.SetMethod(engine.MethodVNI)
	}

	fmt.Print("goviet-ime terminal demo — type away, Ctrl+C to quit\r\n\r\n")

	reader := bufio.NewReader(os.Stdin)
	var line []rune

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}

		switch {
		case b == 0x03: // Ctrl+C
			fmt.Print("\r\n")
			return
		case b == '\r' || b == '\n':
			eng.OnKey(keycode.KeyReturn, false, false, false)
			fmt.Print("\r\n")
			line = line[:0]
			continue
		case b == 0x7f || b == 0x08: // Backspace/Delete
			delta := eng.OnKey(keycode.KeyDelete, false, false, false)
			line = applyDelta(line, delta, deleteLastRune)
			redraw(line)
			continue
		}

		key, caps, ok := asciiToKey(b)
		if !ok {
			continue
		}
		typed := rune(b)
		delta := eng.OnKey(key, caps, false, false)
		line = applyDelta(line, delta, appendRune(typed))
		redraw(line)
	}
}

// asciiToKey maps a raw ASCII byte typed on the terminal to the
// engine's keycode convention; shift state is folded into caps for
// letters since raw terminal input delivers the cased byte directly.
func asciiToKey(b byte) (keycode.Code, bool, bool) {
	switch {
	case b == ' ':
		return keycode.KeySpace, false, true
	case b >= 'a' && b <= 'z':
		k, ok := keycode.FromRune(rune(b))
		return k, false, ok
	case b >= 'A' && b <= 'Z':
		k, ok := keycode.FromRune(rune(b))
		return k, true, ok
	case b >= '0' && b <= '9':
		k, ok := keycode.FromRune(rune(b))
		return k, false, ok
	case b == '/':
		return keycode.KeySlash, false, true
	case b == ';':
		return keycode.KeySemicolon, false, true
	case b == ',':
		return keycode.KeyComma, false, true
	case b == '.':
		return keycode.KeyPeriod, false, true
	case b == '\'':
		return keycode.KeyApostrophe, false, true
	case b == '-':
		return keycode.KeyMinus, false, true
	}
	return keycode.KeyNone, false, false
}

// applyDelta mirrors what a real host does with an EditDelta: when the
// engine claims the key (ActionConsume) it drops Backspace runes off
// the end of the line and appends Chars; when it passes the key
// through (ActionPassthrough) the host's own default handling for that
// key — echoing a rune, or deleting the last one — applies instead.
func applyDelta(line []rune, delta engine.EditDelta, fallback func([]rune) []rune) []rune {
	if delta.Action != engine.ActionConsume {
		return fallback(line)
	}
	n := int(delta.Backspace)
	if n > len(line) {
		n = len(line)
	}
	return append(line[:len(line)-n], delta.Chars...)
}

func appendRune(r rune) func([]rune) []rune {
	return func(line []rune) []rune { return append(line, r) }
}

func deleteLastRune(line []rune) []rune {
	if len(line) == 0 {
		return line
	}
	return line[:len(line)-1]
}

// redraw rewrites the current line in place: carriage-return, clear to
// end of line, print.
func redraw(line []rune) {
	fmt.Print("\r\x1b[K", string(line))
}
