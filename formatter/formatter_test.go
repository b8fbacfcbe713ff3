package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plint-dev/plint/internal"
	tt "github.com/plint-dev/plint/internal/types"
)

func TestGenerateFormattedIssue(t *testing.T) {
	color.NoColor = true

	snippet := &internal.SourceCode{Lines: []string{
		"int main(void) {",
		"    if(x) {",
		"    }",
		"}",
	}}
	issues := []tt.Issue{
		{
			Check:    "control-flow-spacing",
			Severity: tt.SeverityWarning,
			Filename: "main.c",
			Line:     2,
			Column:   5,
			Message:  `expected "if (...) {", found "if(...) {"`,
		},
	}

	out := GenerateFormattedIssue(issues, snippet)

	assert.Contains(t, out, "warning: control-flow-spacing")
	assert.Contains(t, out, " --> main.c:2:5")
	assert.Contains(t, out, "2 |     if(x) {")
	assert.Contains(t, out, `^ expected "if (...) {", found "if(...) {"`)
}

func TestGenerateFormattedIssue_MissingSnippetLine(t *testing.T) {
	color.NoColor = true

	issues := []tt.Issue{
		{
			Check:    "comma-spacing",
			Severity: tt.SeverityError,
			Filename: "x.c",
			Line:     42,
			Column:   1,
			Message:  `expected ", ", found ","`,
		},
	}

	out := GenerateFormattedIssue(issues, &internal.SourceCode{Lines: []string{"one line"}})
	require.Contains(t, out, "error: comma-spacing")
	assert.Contains(t, out, `expected ", ", found ","`)
}

func TestVisualColumn(t *testing.T) {
	assert.Equal(t, 1, visualColumn("if(x) {", 1))
	assert.Equal(t, 3, visualColumn("if(x) {", 3))
	// a leading tab expands to the next tab stop
	assert.Equal(t, 9, visualColumn("\tif(x) {", 2))
}
