// Package command inspects and assembles gnuplot command lines.
//
// The session needs to know whether a line it forwards starts a 2D plot, a
// 3D plot or repeats the previous one; Scan answers that by looking at the
// leading keyword of every statement, so lines such as "set multiplot" or
// plots hidden inside quoted titles do not count.
package command

import (
	"strings"

	"github.com/viant/parsly"
)

// Kind classifies a gnuplot statement.
type Kind int

const (
	Other Kind = iota
	Plot
	Splot
	Replot
)

func (k Kind) String() string {
	switch k {
	case Plot:
		return "plot"
	case Splot:
		return "splot"
	case Replot:
		return "replot"
	default:
		return "other"
	}
}

// keywords lists plotting commands with the shortest abbreviation gnuplot
// accepts for each.
var keywords = []struct {
	name string
	min  int
	kind Kind
}{
	{name: "plot", min: 1, kind: Plot},
	{name: "splot", min: 2, kind: Splot},
	{name: "replot", min: 3, kind: Replot},
}

// Scan returns the kinds of the plotting statements in line, in order.
// Statements are separated by ';'; non-plotting statements are omitted.
func Scan(line string) []Kind {
	cursor := parsly.NewCursor("", []byte(line), 0)
	var kinds []Kind
	statementStart := true
	for cursor.HasMore() {
		matched := cursor.MatchAfterOptional(whitespaceToken, separatorToken, quotedToken, wordToken)
		switch matched.Code {
		case separatorCode:
			statementStart = true
		case wordCode:
			if statementStart {
				if kind := keyword(matched.Text(cursor)); kind != Other {
					kinds = append(kinds, kind)
				}
			}
			statementStart = false
		case quotedCode:
			statementStart = false
		case parsly.EOF:
			return kinds
		default:
			if cursor.Pos < cursor.InputSize {
				cursor.Pos++
			}
			statementStart = false
		}
	}
	return kinds
}

func keyword(word string) Kind {
	word = strings.ToLower(word)
	for _, candidate := range keywords {
		if len(word) >= candidate.min && strings.HasPrefix(candidate.name, word) {
			return candidate.kind
		}
	}
	return Other
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// Quote wraps text in double quotes for use as a gnuplot string literal.
// Backslashes and double quotes are escaped and line breaks become \n or \r
// escapes, so the literal always stays on one command line; a newline in text
// still breaks a title when gnuplot renders it.
func Quote(text string) string {
	return `"` + quoteReplacer.Replace(text) + `"`
}
