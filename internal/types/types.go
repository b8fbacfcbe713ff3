package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity represents the severity of a check.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityOff:
		return "off"
	}
	return "unknown"
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity: %q", value.Value)
	}
	return nil
}

// ConfigCheck is the per-check configuration block.
type ConfigCheck struct {
	Severity Severity `yaml:"severity"`
}

// CustomPattern declares a user-defined pattern check in the
// configuration file.
type CustomPattern struct {
	Name      string   `yaml:"name"`
	Templates []string `yaml:"templates"`
	Severity  Severity `yaml:"severity"`
}

// Issue represents a formatting violation found in the code base.
type Issue struct {
	Check    string
	Severity Severity
	Filename string
	Line     int // 1-based
	Column   int // 1-based
	Message  string
}
