package normalize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Finding is one character CleanLabel removed or replaced.
type Finding struct {
	Category  string // "zero-width", "bidi", "tag-char", "control-char", "soft-hyphen", "homoglyph", "invalid-utf8"
	Codepoint string // e.g. "U+200B"
}

// CleanLabel prepares raw label text for SplitLabel. Text copied from web
// pages and PDFs carries invisible characters that would otherwise end up
// inside ingredient names and break exact lookups; those are dropped.
// Within words that also contain ASCII letters, Cyrillic and Greek letters
// that render like Latin ones are folded to Latin. Tabs, newlines and
// carriage returns are kept.
func CleanLabel(text string) (string, []Finding) {
	var findings []Finding
	var stripped strings.Builder

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			findings = append(findings, Finding{Category: "invalid-utf8", Codepoint: fmt.Sprintf("0x%02X", text[i])})
		case invisibleCategory(r) != "":
			findings = append(findings, Finding{Category: invisibleCategory(r), Codepoint: codepoint(r)})
		default:
			stripped.WriteRune(r)
		}
		i += size
	}

	var out strings.Builder
	s := stripped.String()
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			findings = foldWord(&out, s[start:i], findings)
			start = -1
		}
		out.WriteRune(r)
	}
	if start >= 0 {
		findings = foldWord(&out, s[start:], findings)
	}

	return out.String(), findings
}

// foldWord writes word to out, folding homoglyphs when the word mixes
// scripts. Words written entirely in Cyrillic or Greek are left alone.
func foldWord(out *strings.Builder, word string, findings []Finding) []Finding {
	if !hasASCIILetter(word) {
		out.WriteString(word)
		return findings
	}
	for _, r := range word {
		if latin, ok := homoglyph(r); ok {
			findings = append(findings, Finding{Category: "homoglyph", Codepoint: codepoint(r)})
			out.WriteRune(latin)
			continue
		}
		out.WriteRune(r)
	}
	return findings
}

func hasASCIILetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

func codepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

func invisibleCategory(r rune) string {
	switch {
	case isZeroWidth(r):
		return "zero-width"
	case isBidiControl(r):
		return "bidi"
	case r >= 0xE0001 && r <= 0xE007F:
		return "tag-char"
	case r == '\u00AD':
		return "soft-hyphen"
	case isUnsafeControl(r):
		return "control-char"
	}
	return ""
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200B', // ZERO WIDTH SPACE
		'\u200C', // ZERO WIDTH NON-JOINER
		'\u200D', // ZERO WIDTH JOINER
		'\uFEFF', // ZERO WIDTH NO-BREAK SPACE (BOM)
		'\u2060', // WORD JOINER
		'\u180E': // MONGOLIAN VOWEL SEPARATOR
		return true
	}
	return false
}

func isBidiControl(r rune) bool {
	switch {
	case r == '\u200E', r == '\u200F': // LRM, RLM
		return true
	case r >= '\u202A' && r <= '\u202E': // embeddings and overrides
		return true
	case r >= '\u2066' && r <= '\u2069': // isolates
		return true
	}
	return false
}

func isUnsafeControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return r <= 0x1F || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

func homoglyph(r rune) (rune, bool) {
	if r < 0x0370 {
		return 0, false
	}
	switch {
	case unicode.Is(unicode.Cyrillic, r):
		latin, ok := cyrillicHomoglyphs[r]
		return latin, ok
	case unicode.Is(unicode.Greek, r):
		latin, ok := greekHomoglyphs[r]
		return latin, ok
	}
	return 0, false
}

var cyrillicHomoglyphs = map[rune]rune{
	'а': 'a', 'А': 'A',
	'В': 'B',
	'с': 'c', 'С': 'C',
	'е': 'e', 'Е': 'E',
	'Н': 'H',
	'і': 'i', 'І': 'I',
	'К': 'K',
	'М': 'M',
	'о': 'o', 'О': 'O',
	'р': 'p', 'Р': 'P',
	'Т': 'T',
	'х': 'x', 'Х': 'X',
	'у': 'y', 'У': 'Y',
	'ѕ': 's', 'Ѕ': 'S',
	'ј': 'j', 'Ј': 'J',
}

var greekHomoglyphs = map[rune]rune{
	'Α': 'A',
	'Β': 'B',
	'Ε': 'E',
	'Η': 'H',
	'Ι': 'I',
	'Κ': 'K',
	'Μ': 'M',
	'Ν': 'N',
	'ο': 'o', 'Ο': 'O',
	'Ρ': 'P',
	'Τ': 'T',
	'Χ': 'X',
	'Υ': 'Y',
	'Ζ': 'Z',
}
