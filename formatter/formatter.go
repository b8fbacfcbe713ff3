// Package formatter renders lint issues as annotated source snippets.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/plint-dev/plint/internal"
	tt "github.com/plint-dev/plint/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	checkStyle   = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// GenerateFormattedIssue formats a slice of issues from one file into a
// human-readable string with a source snippet per issue.
func GenerateFormattedIssue(issues []tt.Issue, snippet *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssue(issue, snippet))
		builder.WriteString("\n")
	}
	return builder.String()
}

func formatIssue(issue tt.Issue, snippet *internal.SourceCode) string {
	var builder strings.Builder

	builder.WriteString(severityStyle(issue.Severity).Sprintf("%s: ", issue.Severity))
	builder.WriteString(checkStyle.Sprint(issue.Check))
	builder.WriteString("\n")
	builder.WriteString(lineStyle.Sprint(" --> "))
	builder.WriteString(fileStyle.Sprintf("%s:%d:%d", issue.Filename, issue.Line, issue.Column))
	builder.WriteString("\n")

	line, ok := sourceLine(snippet, issue.Line)
	if !ok {
		builder.WriteString(messageStyle.Sprint(issue.Message))
		builder.WriteString("\n")
		return builder.String()
	}

	gutter := len(fmt.Sprintf("%d", issue.Line))
	pad := strings.Repeat(" ", gutter)

	builder.WriteString(lineStyle.Sprintf("%s |\n", pad))
	builder.WriteString(lineStyle.Sprintf("%d | ", issue.Line))
	builder.WriteString(line)
	builder.WriteString("\n")
	builder.WriteString(lineStyle.Sprintf("%s | ", pad))
	builder.WriteString(strings.Repeat(" ", visualColumn(line, issue.Column)-1))
	builder.WriteString(messageStyle.Sprintf("^ %s", issue.Message))
	builder.WriteString("\n")

	return builder.String()
}

func severityStyle(s tt.Severity) *color.Color {
	if s == tt.SeverityWarning {
		return warningStyle
	}
	return errorStyle
}

func sourceLine(snippet *internal.SourceCode, line int) (string, bool) {
	if snippet == nil || line < 1 || line > len(snippet.Lines) {
		return "", false
	}
	return snippet.Lines[line-1], true
}

// visualColumn expands tabs so the caret lines up with the snippet.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i >= column-1 {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual + 1
}
