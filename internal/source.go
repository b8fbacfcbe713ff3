package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a source code file, split into lines
// for snippet rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and returns it as a SourceCode struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}
