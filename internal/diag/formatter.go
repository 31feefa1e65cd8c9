package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// Formatter renders Diagnostic values with source context, in the
// style of the teacher's internal/errors.CompilerError.Format: a
// header line, the offending source line prefixed with its line
// number, and a caret pointing at the column. Unlike the teacher's
// formatter — which spaces the caret by `e.Pos.Column-1` raw rune
// count — this one measures each preceding rune's display width via
// golang.org/x/text/width, since a string or template literal token
// ahead of the error column can contain East-Asian wide characters
// that would otherwise throw the caret's terminal alignment off by
// one column per wide rune.
type Formatter struct {
	Source map[string]string // file path -> full source text, for line extraction
	Color  bool
}

// NewFormatter creates a Formatter over the given file->source map.
func NewFormatter(source map[string]string) *Formatter {
	return &Formatter{Source: source}
}

// Format renders one diagnostic.
func (f *Formatter) Format(d *Diagnostic) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s at %s:%d:%d\n", d.Severity.String(), d.Message, d.File, d.Pos.Line, d.Pos.Column))

	line := f.sourceLine(d.File, d.Pos.Line)
	if line == "" {
		return strings.TrimSuffix(sb.String(), "\n")
	}

	lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")

	caretOffset := displayWidth(line, d.Pos.Column-1)
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+caretOffset))
	if f.Color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if f.Color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatAll renders every diagnostic in a Bag, numbered, matching the
// teacher's FormatErrors multi-error banner.
func (f *Formatter) FormatAll(items []*Diagnostic) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return f.Format(items[0])
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Checking failed with %d diagnostic(s):\n\n", len(items)))
	for i, d := range items {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(items)))
		sb.WriteString(f.Format(d))
		if i < len(items)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func (f *Formatter) sourceLine(file string, lineNum int) string {
	src, ok := f.Source[file]
	if !ok || lineNum < 1 {
		return ""
	}
	lines := strings.Split(src, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// displayWidth returns the terminal column width of the first
// runeCount runes of line, counting East-Asian wide/fullwidth runes as
// 2 columns and everything else as 1.
func displayWidth(line string, runeCount int) int {
	cols := 0
	n := 0
	for _, r := range line {
		if n >= runeCount {
			break
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cols += 2
		default:
			cols++
		}
		n++
	}
	return cols
}
