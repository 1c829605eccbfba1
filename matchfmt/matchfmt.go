// Package matchfmt renders token streams and match results as aligned,
// colorized text for grammar debugging. Output goes to humans, not
// parsers; the exact layout is not a stable interface.
package matchfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/token"
)

var (
	ruleStyle   = color.New(color.FgYellow, color.Bold)
	gutterStyle = color.New(color.FgHiBlue, color.Bold)
	matchStyle  = color.New(color.FgGreen, color.Bold)
	defStyle    = color.New(color.FgCyan)
	noteStyle   = color.New(color.FgRed, color.Bold)
)

// Format renders the stream with the match span highlighted: a header
// naming the rule and span, the token table with matched rows marked,
// and a summary line. A nil match renders the stream with a "no
// match" note.
func Format(m *rule.Match, toks []token.Token) string {
	var builder strings.Builder

	if m == nil {
		builder.WriteString(noteStyle.Sprint("no match\n"))
		builder.WriteString(tokenTable(toks, 0, 0))
		return builder.String()
	}

	builder.WriteString(header(m, toks))
	builder.WriteString(tokenTable(toks, m.Start, m.End))
	builder.WriteString(summary(m, toks))
	return builder.String()
}

// FormatStream renders the token table without any highlighting.
func FormatStream(toks []token.Token) string {
	var builder strings.Builder
	builder.WriteString(tokenTable(toks, 0, 0))
	builder.WriteString(gutterStyle.Sprintf("%s= ", gutterPadding(toks)))
	builder.WriteString(fmt.Sprintf("%d token(s)\n", len(toks)))
	return builder.String()
}

func header(m *rule.Match, toks []token.Token) string {
	name := "match"
	if m.Rule != nil {
		if s, ok := m.Rule.(fmt.Stringer); ok {
			name = s.String()
		} else {
			name = fmt.Sprintf("%T", m.Rule)
		}
	}

	endString := ruleStyle.Sprintf("match: %s\n", name)
	endString += gutterStyle.Sprintf("%s--> ", gutterPadding(toks))
	endString += fmt.Sprintf("tokens [%d, %d)", m.Start, m.End)

	if m.Start < len(toks) && m.Start < m.End {
		if pos := toks[m.Start].Start(); pos.IsPositioned() {
			endString += fmt.Sprintf(" at %s", pos)
		}
	}
	return endString + "\n"
}

func tokenTable(toks []token.Token, from, to int) string {
	padding := gutterPadding(toks)
	endString := gutterStyle.Sprintf("%s|\n", padding)

	if len(toks) == 0 {
		endString += gutterStyle.Sprintf("%s| ", padding)
		endString += "(empty stream)\n"
		return endString
	}

	width := gutterWidth(len(toks))
	valueWidth := maxValueWidth(toks)
	for i, t := range toks {
		endString += gutterStyle.Sprintf("%*d | ", width, i)
		endString += fmt.Sprintf("%-*s  ", valueWidth, t.Value())
		endString += defStyle.Sprint(tokenLabel(t))
		if i >= from && i < to {
			endString += matchStyle.Sprint("  ~")
		}
		endString += "\n"
	}
	return endString
}

func summary(m *rule.Match, toks []token.Token) string {
	endString := gutterStyle.Sprintf("%s= ", gutterPadding(toks))
	if m.Start == m.End {
		endString += matchStyle.Sprintf("zero-width match at index %d\n", m.Start)
		return endString
	}
	endString += matchStyle.Sprintf("%d token(s) matched\n", m.End-m.Start)
	return endString
}

// tokenLabel names the token's definition plus any decorators wrapped
// around it, outermost first.
func tokenLabel(t token.Token) string {
	label := t.Definition().String()
	var notes []string
	for {
		switch v := t.(type) {
		case *token.Group:
			notes = append(notes, fmt.Sprintf("group of %d", v.Len()))
			t = nil
		case *token.Annotated:
			notes = append(notes, "annotated")
			t = v.Unwrap()
		case *token.Shadow:
			notes = append(notes, "shadowed")
			t = v.Unwrap()
		case *token.Indexed:
			notes = append(notes, fmt.Sprintf("#%d", v.Index()))
			t = v.Unwrap()
		default:
			t = nil
		}
		if t == nil {
			break
		}
	}
	if len(notes) == 0 {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, strings.Join(notes, ", "))
}

func gutterWidth(n int) int {
	return len(fmt.Sprintf("%d", n-1))
}

func gutterPadding(toks []token.Token) string {
	if len(toks) == 0 {
		return " "
	}
	return strings.Repeat(" ", gutterWidth(len(toks))+1)
}

func maxValueWidth(toks []token.Token) int {
	width := 1
	for _, t := range toks {
		if len(t.Value()) > width {
			width = len(t.Value())
		}
	}
	return width
}
