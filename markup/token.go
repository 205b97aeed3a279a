package markup

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies a marker.
type Kind uint8

const (
	KindBold Kind = iota + 1
	KindItalic
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

const (
	BoldMarker   = "[b]"
	ItalicMarker = "[i]"

	colorMarkerLen = len("[RRGGBB]")
)

// Token is one recognized marker. Start and End are rune offsets into the
// source string, half-open.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Text  string
	Color string // "#RRGGBB" for KindColor
}

// ColorMarker returns the marker for a 6-digit hex value. The digits are
// written as given; callers normalize case first when they care.
func ColorMarker(hex string) string {
	return "[" + strings.TrimPrefix(hex, "#") + "]"
}

// Tokens returns every marker in s, in order.
func Tokens(s string) []Token {
	var out []Token
	runeOff := 0
	for i := 0; i < len(s); {
		if tok, n, ok := markerAt(s[i:]); ok {
			tok.Start = runeOff
			tok.End = runeOff + n // markers are ASCII
			out = append(out, tok)
			runeOff += n
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		runeOff++
		i += size
	}
	return out
}

// IsMarker reports whether s is exactly one marker.
func IsMarker(s string) bool {
	_, n, ok := markerAt(s)
	return ok && n == len(s)
}

// markerAt matches a marker at the start of s. Bold wins over italic, which
// wins over color.
func markerAt(s string) (Token, int, bool) {
	if strings.HasPrefix(s, BoldMarker) {
		return Token{Kind: KindBold, Text: BoldMarker}, len(BoldMarker), true
	}
	if strings.HasPrefix(s, ItalicMarker) {
		return Token{Kind: KindItalic, Text: ItalicMarker}, len(ItalicMarker), true
	}
	if len(s) >= colorMarkerLen && s[0] == '[' && s[colorMarkerLen-1] == ']' && IsHex6(s[1:colorMarkerLen-1]) {
		text := s[:colorMarkerLen]
		return Token{
			Kind:  KindColor,
			Text:  text,
			Color: "#" + strings.ToUpper(s[1:colorMarkerLen-1]),
		}, colorMarkerLen, true
	}
	return Token{}, 0, false
}

// IsHex6 reports whether s is exactly six hex digits, any case.
func IsHex6(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
