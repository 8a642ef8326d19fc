// Package urlutil contains the path encoding helpers used when
// embedding server paths in WebDAV hrefs.
package urlutil

import "strings"

const lowerhex = "0123456789abcdef"

// shouldEscape reports whether c must be percent-encoded in a path.
// Everything outside A-Z a-z 0-9 _ - . ~ ( ) / : @ is escaped,
// including '%' itself.
func shouldEscape(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '_', '-', '.', '~', '(', ')', '/', ':', '@':
		return false
	}
	return true
}

// EncodePath percent-encodes path so that it can be safely embedded
// in a URI. Segment separators are preserved, and escapes are written
// with lowercase hex digits ("%c3%a9").
func EncodePath(path string) string {
	n := 0
	for i := 0; i < len(path); i++ {
		if shouldEscape(path[i]) {
			n++
		}
	}
	if n == 0 {
		return path
	}

	var sb strings.Builder
	sb.Grow(len(path) + 2*n)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if !shouldEscape(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(lowerhex[c>>4])
		sb.WriteByte(lowerhex[c&15])
	}
	return sb.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodePath reverses EncodePath. Malformed escape sequences are
// copied through unchanged rather than rejected.
func DecodePath(path string) string {
	if strings.IndexByte(path, '%') < 0 {
		return path
	}

	var sb strings.Builder
	sb.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '%' && i+2 < len(path) {
			hi, ok1 := unhex(path[i+1])
			lo, ok2 := unhex(path[i+2])
			if ok1 && ok2 {
				sb.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
