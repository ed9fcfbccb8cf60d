package command

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes (start at 1 to avoid clash with parsly.EOF).
const (
	whitespaceCode = iota + 1
	separatorCode
	quotedCode
	wordCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	separatorToken  = parsly.NewToken(separatorCode, ";", matcher.NewByte(';'))
	quotedToken     = parsly.NewToken(quotedCode, "Quoted", &quotedMatcher{})
	wordToken       = parsly.NewToken(wordCode, "Word", &wordMatcher{})
)

// quotedMatcher matches a single or double quoted string literal. Double
// quoted literals honour backslash escapes; an unterminated literal runs to
// the end of input.
type quotedMatcher struct{}

func (m *quotedMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	quote := input[pos]
	if quote != '"' && quote != '\'' {
		return 0
	}
	for i := pos + 1; i < size; i++ {
		switch input[i] {
		case '\\':
			if quote == '"' {
				i++
			}
		case quote:
			return i - pos + 1
		}
	}
	return size - pos
}

// wordMatcher matches a gnuplot identifier.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	if !isLetter(input[pos]) && input[pos] != '_' {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' {
			matched++
			continue
		}
		break
	}
	return matched
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
