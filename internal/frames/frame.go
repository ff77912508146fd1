package frames

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/san-kum/ardusim/internal/blockly"
)

type TimelineFunction string

const (
	PreSetup TimelineFunction = "pre-setup"
	Setup    TimelineFunction = "setup"
	Loop     TimelineFunction = "loop"
)

// Timeline marks where in the sketch a frame was produced.
type Timeline struct {
	Function  TimelineFunction `json:"function" yaml:"function"`
	Iteration int              `json:"iteration" yaml:"iteration"`
}

type Color struct {
	Red   int `json:"red" yaml:"red"`
	Green int `json:"green" yaml:"green"`
	Blue  int `json:"blue" yaml:"blue"`
}

type Variable struct {
	Name  string               `json:"name" yaml:"name"`
	Type  blockly.VariableType `json:"type" yaml:"type"`
	Value any                  `json:"value" yaml:"value"`
}

func (v Variable) Clone() Variable {
	v.Value = cloneValue(v.Value)
	return v
}

// UnmarshalJSON restores typed values that encoding/json would otherwise
// leave as generic maps and slices.
func (v *Variable) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string               `json:"name"`
		Type  blockly.VariableType `json:"type"`
		Value json.RawMessage      `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name, v.Type, v.Value = raw.Name, raw.Type, nil
	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}

	var target any
	switch raw.Type {
	case blockly.Colour:
		target = &Color{}
	case blockly.ListColour:
		target = &[]Color{}
	case blockly.ListNumber:
		target = &[]float64{}
	case blockly.ListString:
		target = &[]string{}
	case blockly.ListBoolean:
		target = &[]bool{}
	default:
		return json.Unmarshal(raw.Value, &v.Value)
	}
	if err := json.Unmarshal(raw.Value, target); err != nil {
		return fmt.Errorf("variable %s: %w", raw.Name, err)
	}
	switch t := target.(type) {
	case *Color:
		v.Value = *t
	case *[]Color:
		v.Value = *t
	case *[]float64:
		v.Value = *t
	case *[]string:
		v.Value = *t
	case *[]bool:
		v.Value = *t
	}
	return nil
}

// ArduinoFrame is the simulated board state after one executed block.
type ArduinoFrame struct {
	BlockID      string              `json:"blockId"`
	BlockName    string              `json:"blockName"`
	SendMessage  string              `json:"sendMessage"`
	TimeLine     Timeline            `json:"timeLine"`
	Variables    map[string]Variable `json:"variables"`
	TxLedOn      bool                `json:"txLedOn"`
	BuiltInLedOn bool                `json:"builtInLedOn"`
	PowerLedOn   bool                `json:"powerLedOn"`
	Components   []ComponentState    `json:"-"`
	Explanation  string              `json:"explanation"`
	Delay        int                 `json:"delay"`
	FrameNumber  int                 `json:"frameNumber"`
}

// Clone returns a copy that shares no mutable state with f.
func (f ArduinoFrame) Clone() ArduinoFrame {
	f.Variables = cloneVariables(f.Variables)
	f.Components = cloneComponents(f.Components)
	return f
}

// Component returns the state registered under id, if any.
func (f ArduinoFrame) Component(id string) (ComponentState, bool) {
	for _, c := range f.Components {
		if ComponentID(c) == id {
			return c, true
		}
	}
	return nil, false
}

type frameAlias ArduinoFrame

type frameJSON struct {
	frameAlias
	Components []componentEnvelope `json:"components"`
}

func (f ArduinoFrame) MarshalJSON() ([]byte, error) {
	out := frameJSON{
		frameAlias: frameAlias(f),
		Components: make([]componentEnvelope, 0, len(f.Components)),
	}
	for _, c := range f.Components {
		env, err := wrapComponent(c)
		if err != nil {
			return nil, err
		}
		out.Components = append(out.Components, env)
	}
	return json.Marshal(out)
}

func (f *ArduinoFrame) UnmarshalJSON(data []byte) error {
	var in frameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*f = ArduinoFrame(in.frameAlias)
	if f.Variables == nil {
		f.Variables = make(map[string]Variable)
	}
	f.Components = make([]ComponentState, 0, len(in.Components))
	for i, env := range in.Components {
		c, err := env.decode()
		if err != nil {
			return fmt.Errorf("frame %d component %d: %w", f.FrameNumber, i, err)
		}
		f.Components = append(f.Components, c)
	}
	return nil
}

func cloneVariables(vars map[string]Variable) map[string]Variable {
	out := make(map[string]Variable, len(vars))
	for name, v := range vars {
		out[name] = v.Clone()
	}
	return out
}

func cloneComponents(components []ComponentState) []ComponentState {
	out := make([]ComponentState, 0, len(components))
	for _, c := range components {
		out = append(out, c.Clone())
	}
	return out
}

// cloneValue copies v all the way down through pointers, slices, arrays,
// maps and structs. Unexported struct fields are copied shallowly.
func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Elem().Type())
		out.Elem().Set(deepCopy(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if out.Field(i).CanSet() {
				out.Field(i).Set(deepCopy(v.Field(i)))
			}
		}
		return out
	default:
		return v
	}
}
