package s11n

import (
	"io"
	"unicode/utf8"
)

// isInCharacterRange checks if rune is in XML Character Range
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

var (
	esc_quot = []byte("&#34;") // shorter than "&quot;"
	esc_amp  = []byte("&amp;")
	esc_lt   = []byte("&lt;")
	esc_gt   = []byte("&gt;")
	esc_tab  = []byte("&#9;")
	esc_nl   = []byte("&#10;")
	esc_cr   = []byte("&#13;")
	esc_fffd = []byte("\uFFFD") // Unicode replacement character
)

const (
	escapeQuote = 1 << iota
	escapeTab
	escapeNewline
)

func escape(w io.Writer, s []byte, flags int) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width
		switch r {
		case '"':
			if flags&escapeQuote == 0 {
				continue
			}
			esc = esc_quot
		case '&':
			esc = esc_amp
		case '<':
			esc = esc_lt
		case '>':
			esc = esc_gt
		case '\t':
			if flags&escapeTab == 0 {
				continue
			}
			esc = esc_tab
		case '\n':
			if flags&escapeNewline == 0 {
				continue
			}
			esc = esc_nl
		case '\r':
			esc = esc_cr
		default:
			if !isInCharacterRange(r) || (r == utf8.RuneError && width == 1) {
				esc = esc_fffd
				break
			}
			continue
		}

		if _, err := w.Write(s[last : i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	if _, err := w.Write(s[last:]); err != nil {
		return err
	}
	return nil
}

// EscapeAttrValue writes to w the escaped form of s, suitable for
// use inside a double quoted attribute value.
func EscapeAttrValue(w io.Writer, s []byte) error {
	return escape(w, s, escapeQuote|escapeTab|escapeNewline)
}

// EscapeText writes to w the properly escaped XML equivalent
// of the plain text data s. If escapeNewline is true, newline
// characters will be escaped.
func EscapeText(w io.Writer, s []byte, escapeNL bool) error {
	flags := 0
	if escapeNL {
		flags |= escapeNewline
	}
	return escape(w, s, flags)
}
