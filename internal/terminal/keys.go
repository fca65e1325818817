package terminal

import (
	"strings"
	"unicode/utf8"
)

// Key types.
const (
	KeyRune      = iota // Normal printable character
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyTab              // Tab
	KeyBackspace        // Backspace/Delete-backward
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyHome             // Home
	KeyEnd              // End
	KeyDelete           // Delete/Forward-delete
	KeyCtrlC            // Ctrl+C
	KeyPaste            // Several characters delivered in one read
	KeyUnknown          // Unrecognised sequence
)

type Key struct {
	Type int
	Rune rune
	Text string // KeyPaste only; line breaks normalised to \n
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13 || b == 10:
			return Key{Type: KeyEnter}
		case b == 9:
			return Key{Type: KeyTab}
		case b == 127 || b == 8:
			return Key{Type: KeyBackspace}
		case b == 3: // Ctrl+C
			return Key{Type: KeyCtrlC}
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	// Escape sequences.
	if buf[0] == 27 && len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
		// CSI and SS3 3-byte sequences.
		switch buf[2] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}

		// CSI 4-byte sequences: ESC [ <n> ~
		if len(buf) >= 4 && buf[3] == '~' {
			switch buf[2] {
			case '1', '7':
				return Key{Type: KeyHome}
			case '3':
				return Key{Type: KeyDelete}
			case '4', '8':
				return Key{Type: KeyEnd}
			}
		}
		return Key{Type: KeyUnknown}
	}

	if !utf8.Valid(buf) {
		return Key{Type: KeyUnknown}
	}

	// Multi-byte UTF-8 character.
	if utf8.RuneCount(buf) == 1 {
		r, _ := utf8.DecodeRune(buf)
		if r >= 32 {
			return Key{Type: KeyRune, Rune: r}
		}
		return Key{Type: KeyUnknown}
	}

	// A paste or fast typing can arrive as one read.
	return parsePaste(string(buf))
}

// parsePaste turns a multi-character chunk into a single KeyPaste. Raw mode
// delivers Enter as \r, so CR and CRLF both become \n.
func parsePaste(s string) Key {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, r := range s {
		if r == '\n' || r >= 32 {
			return Key{Type: KeyPaste, Text: s}
		}
	}
	return Key{Type: KeyUnknown}
}
