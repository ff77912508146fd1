package blockly

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type VariableType string

const (
	Number      VariableType = "Number"
	String      VariableType = "String"
	Boolean     VariableType = "Boolean"
	Colour      VariableType = "Colour"
	ListNumber  VariableType = "List Number"
	ListString  VariableType = "List String"
	ListBoolean VariableType = "List Boolean"
	ListColour  VariableType = "List Colour"
)

var variableTypes = []VariableType{Number, String, Boolean, Colour, ListNumber, ListString, ListBoolean, ListColour}

// ParseVariableType matches a type name case-insensitively. Unknown names are
// returned as-is so callers fall through to the untyped branches.
func ParseVariableType(name string) VariableType {
	for _, t := range variableTypes {
		if strings.EqualFold(string(t), name) {
			return t
		}
	}
	return VariableType(name)
}

func (t VariableType) Known() bool {
	for _, known := range variableTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t *VariableType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("variable type: %w", err)
	}
	*t = ParseVariableType(s)
	return nil
}
