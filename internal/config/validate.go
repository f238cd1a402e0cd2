package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration problem with file context.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Key      string
	Message  string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	case e.Key != "":
		return fmt.Sprintf("%s: key '%s': %s", e.FilePath, e.Key, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
}

// ValidateYAMLSyntaxFromBytes checks that data parses as YAML, reporting
// the line and column of a syntax error. Blank data is valid.
func ValidateYAMLSyntaxFromBytes(data []byte, path string) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{FilePath: path, Message: strings.Join(typeErr.Errors, "; ")}
		}
		line, column := extractLineColumn(err.Error())
		return &ValidationError{FilePath: path, Line: line, Column: column, Message: cleanYAMLError(err.Error())}
	}

	return nil
}

// validateValues requires every day parameter to be a positive integer.
func validateValues(values map[string]interface{}, source string) error {
	for key, raw := range values {
		if !strings.HasPrefix(key, "day") {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(fmt.Sprint(raw)), 10, 64)
		if err != nil {
			return &ValidationError{FilePath: source, Key: key, Message: fmt.Sprintf("%v is not an integer", raw)}
		}
		if n <= 0 {
			return &ValidationError{FilePath: source, Key: key, Message: fmt.Sprintf("must be positive, got %d", n)}
		}
	}

	return nil
}

// extractLineColumn reads "yaml: line 5: ..." style positions.
func extractLineColumn(msg string) (line, column int) {
	var l, c int
	if n, _ := fmt.Sscanf(msg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(msg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}

	return 0, 0
}

func cleanYAMLError(msg string) string {
	if idx := strings.LastIndex(msg, ": "); idx > 0 && strings.HasPrefix(msg, "yaml:") {
		return msg[idx+2:]
	}

	return msg
}
