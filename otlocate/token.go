package otlocate

import (
	"strings"
	"unicode/utf8"
)

// Token is a parsed input token: a letter and the feature tags to apply to
// its glyph, in order.
type Token struct {
	Char     string
	Features []string
}

// ParseToken splits a token into its letter and feature tags.
//
// The letter is the first code point of text. If more code points follow,
// the one directly after the letter is taken as the separator and skipped
// without further checks. The remainder is split at '.'; empty segments are
// kept as empty feature tags. Feature tags are not validated.
func ParseToken(text string) Token {
	if text == "" {
		return Token{Features: []string{}}
	}
	_, size := utf8.DecodeRuneInString(text)
	tok := Token{Char: text[:size], Features: []string{}}
	rest := text[size:]
	if rest == "" {
		return tok
	}
	_, sep := utf8.DecodeRuneInString(rest)
	tok.Features = strings.Split(rest[sep:], ".")
	return tok
}

func (tok Token) String() string {
	if len(tok.Features) == 0 {
		return tok.Char
	}
	return tok.Char + "." + strings.Join(tok.Features, ".")
}
