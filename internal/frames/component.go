package frames

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type ComponentType string

const (
	ComponentLed      ComponentType = "LED"
	ComponentRgbLed   ComponentType = "RGB_LED"
	ComponentServo    ComponentType = "SERVO"
	ComponentLcd      ComponentType = "LCD_SCREEN"
	ComponentNeoPixel ComponentType = "NEO_PIXEL_STRIP"
)

// ComponentState is the current state of one peripheral wired to the board.
type ComponentState interface {
	Type() ComponentType
	Pins() []string
	Clone() ComponentState
}

// ComponentID derives the identity of a component from its type and the
// pins it occupies. Two states with the same id describe the same part.
func ComponentID(c ComponentState) string {
	pins := append([]string(nil), c.Pins()...)
	sort.Strings(pins)
	return string(c.Type()) + "-" + strings.Join(pins, "-")
}

type LedState struct {
	Pin       string `json:"pin" yaml:"pin"`
	Intensity int    `json:"intensity" yaml:"intensity"`
}

func (s LedState) Type() ComponentType   { return ComponentLed }
func (s LedState) Pins() []string        { return []string{s.Pin} }
func (s LedState) Clone() ComponentState { return s }
func (s LedState) On() bool              { return s.Intensity > 0 }

type RgbLedState struct {
	RedPin   string `json:"redPin" yaml:"red_pin"`
	GreenPin string `json:"greenPin" yaml:"green_pin"`
	BluePin  string `json:"bluePin" yaml:"blue_pin"`
	Color    Color  `json:"color" yaml:"color"`
}

func (s RgbLedState) Type() ComponentType   { return ComponentRgbLed }
func (s RgbLedState) Pins() []string        { return []string{s.RedPin, s.GreenPin, s.BluePin} }
func (s RgbLedState) Clone() ComponentState { return s }

type ServoState struct {
	Pin    string `json:"pin" yaml:"pin"`
	Degree int    `json:"degree" yaml:"degree"`
}

func (s ServoState) Type() ComponentType   { return ComponentServo }
func (s ServoState) Pins() []string        { return []string{s.Pin} }
func (s ServoState) Clone() ComponentState { return s }

// LcdState is an I2C character display.
type LcdState struct {
	SdaPin    string   `json:"sdaPin" yaml:"sda_pin"`
	SclPin    string   `json:"sclPin" yaml:"scl_pin"`
	Rows      []string `json:"rows" yaml:"rows"`
	Backlight bool     `json:"backLightOn" yaml:"backlight"`
	Blink     bool     `json:"blink" yaml:"blink"`
}

func (s LcdState) Type() ComponentType { return ComponentLcd }
func (s LcdState) Pins() []string      { return []string{s.SdaPin, s.SclPin} }

func (s LcdState) Clone() ComponentState {
	s.Rows = append([]string(nil), s.Rows...)
	return s
}

type NeoPixelState struct {
	Pin    string  `json:"pin" yaml:"pin"`
	Pixels []Color `json:"pixels" yaml:"pixels"`
}

func (s NeoPixelState) Type() ComponentType { return ComponentNeoPixel }
func (s NeoPixelState) Pins() []string      { return []string{s.Pin} }

func (s NeoPixelState) Clone() ComponentState {
	s.Pixels = append([]Color(nil), s.Pixels...)
	return s
}

type componentKind struct {
	fromJSON func(json.RawMessage) (ComponentState, error)
	fromYAML func(*yaml.Node) (ComponentState, error)
}

func kindOf[T ComponentState]() componentKind {
	return componentKind{
		fromJSON: func(raw json.RawMessage) (ComponentState, error) {
			var s T
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, err
			}
			return s, nil
		},
		fromYAML: func(node *yaml.Node) (ComponentState, error) {
			var s T
			if err := node.Decode(&s); err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

var componentKinds = map[ComponentType]componentKind{
	ComponentLed:      kindOf[LedState](),
	ComponentRgbLed:   kindOf[RgbLedState](),
	ComponentServo:    kindOf[ServoState](),
	ComponentLcd:      kindOf[LcdState](),
	ComponentNeoPixel: kindOf[NeoPixelState](),
}

// ParseComponentType accepts the canonical names case-insensitively, with
// dashes or spaces in place of underscores.
func ParseComponentType(name string) (ComponentType, error) {
	norm := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(name)))
	if norm == "NEOPIXEL" {
		norm = string(ComponentNeoPixel)
	}
	if norm == "LCD" {
		norm = string(ComponentLcd)
	}
	t := ComponentType(norm)
	if _, ok := componentKinds[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return t, nil
}

// ComponentTypes lists the registered component types in sorted order.
func ComponentTypes() []ComponentType {
	types := make([]ComponentType, 0, len(componentKinds))
	for t := range componentKinds {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// DecodeComponentYAML builds a component from a mapping node carrying a
// `type` key next to the component's own fields.
func DecodeComponentYAML(node *yaml.Node) (ComponentState, error) {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, err
	}
	t, err := ParseComponentType(head.Type)
	if err != nil {
		return nil, err
	}
	return componentKinds[t].fromYAML(node)
}

type componentEnvelope struct {
	Type  ComponentType   `json:"type"`
	State json.RawMessage `json:"state"`
}

func wrapComponent(c ComponentState) (componentEnvelope, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return componentEnvelope{}, err
	}
	return componentEnvelope{Type: c.Type(), State: raw}, nil
}

func (e componentEnvelope) decode() (ComponentState, error) {
	kind, ok := componentKinds[e.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, e.Type)
	}
	return kind.fromJSON(e.State)
}
