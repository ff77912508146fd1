package script

import (
	"fmt"
	"os"

	"github.com/san-kum/ardusim/internal/blockly"
	"github.com/san-kum/ardusim/internal/frames"
	"gopkg.in/yaml.v3"
)

// Script is a recorded list of executed blocks, each naming the single
// change it made to the board.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	BlockID     string          `yaml:"block_id"`
	BlockName   string          `yaml:"block_name"`
	Timeline    frames.Timeline `yaml:"timeline"`
	Explanation string          `yaml:"explanation"`
	TxLed       bool            `yaml:"tx_led"`
	BuiltInLed  bool            `yaml:"built_in_led"`
	Delay       int             `yaml:"delay"`

	Component frames.ComponentState `yaml:"-"`
	Variable  *frames.Variable      `yaml:"-"`
}

type stepYAML struct {
	BlockID     string          `yaml:"block_id"`
	BlockName   string          `yaml:"block_name"`
	Timeline    frames.Timeline `yaml:"timeline"`
	Explanation string          `yaml:"explanation"`
	TxLed       bool            `yaml:"tx_led"`
	BuiltInLed  bool            `yaml:"built_in_led"`
	Delay       int             `yaml:"delay"`
	Component   yaml.Node       `yaml:"component"`
	Variable    *variableYAML   `yaml:"variable"`
}

type variableYAML struct {
	Name  string               `yaml:"name"`
	Type  blockly.VariableType `yaml:"type"`
	Value yaml.Node            `yaml:"value"`
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var raw stepYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = Step{
		BlockID:     raw.BlockID,
		BlockName:   raw.BlockName,
		Timeline:    raw.Timeline,
		Explanation: raw.Explanation,
		TxLed:       raw.TxLed,
		BuiltInLed:  raw.BuiltInLed,
		Delay:       raw.Delay,
	}
	// An absent key leaves the node zero, with Kind 0.
	hasComponent := raw.Component.Kind != 0
	if hasComponent && raw.Variable != nil {
		return ErrAmbiguousStep
	}
	if hasComponent {
		c, err := frames.DecodeComponentYAML(&raw.Component)
		if err != nil {
			return err
		}
		s.Component = c
	}
	if raw.Variable != nil {
		v, err := raw.Variable.decode()
		if err != nil {
			return err
		}
		s.Variable = &v
	}
	return nil
}

// decode types the value by the declared variable type. A missing value
// takes the type's default.
func (v variableYAML) decode() (frames.Variable, error) {
	out := frames.Variable{Name: v.Name, Type: v.Type}
	if v.Value.Kind == 0 {
		out.Value = frames.DefaultValue(v.Type)
		return out, nil
	}

	var err error
	switch v.Type {
	case blockly.Colour:
		var c frames.Color
		err = v.Value.Decode(&c)
		out.Value = c
	case blockly.ListColour:
		var cs []frames.Color
		err = v.Value.Decode(&cs)
		out.Value = cs
	case blockly.Number:
		var n float64
		err = v.Value.Decode(&n)
		out.Value = n
	case blockly.ListNumber:
		var ns []float64
		err = v.Value.Decode(&ns)
		out.Value = ns
	case blockly.String:
		var s string
		err = v.Value.Decode(&s)
		out.Value = s
	case blockly.ListString:
		var ss []string
		err = v.Value.Decode(&ss)
		out.Value = ss
	case blockly.Boolean:
		var b bool
		err = v.Value.Decode(&b)
		out.Value = b
	case blockly.ListBoolean:
		var bs []bool
		err = v.Value.Decode(&bs)
		out.Value = bs
	default:
		var a any
		err = v.Value.Decode(&a)
		out.Value = a
	}
	if err != nil {
		return frames.Variable{}, fmt.Errorf("variable %s: %w", v.Name, err)
	}
	return out, nil
}

func Parse(data []byte) (*Script, error) {
	var raw struct {
		Name        string      `yaml:"name"`
		Description string      `yaml:"description"`
		Steps       []yaml.Node `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	s := &Script{
		Name:        raw.Name,
		Description: raw.Description,
		Steps:       make([]Step, len(raw.Steps)),
	}
	for i := range raw.Steps {
		if err := raw.Steps[i].Decode(&s.Steps[i]); err != nil {
			var head struct {
				BlockID string `yaml:"block_id"`
			}
			_ = raw.Steps[i].Decode(&head)
			return nil, &StepError{Index: i, BlockID: head.BlockID, Err: err}
		}
	}
	return s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}
