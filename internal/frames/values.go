package frames

import (
	"fmt"
	"math"
	"reflect"

	"github.com/san-kum/ardusim/internal/blockly"
)

const zeroColorString = "(red=0,green=0,blue=0)"

// DefaultValue returns the initial value of a freshly declared variable, or
// nil when the type has no default. Numbers are float64.
func DefaultValue(t blockly.VariableType) any {
	switch t {
	case blockly.Colour:
		return Color{}
	case blockly.String:
		return ""
	case blockly.Boolean:
		return false
	case blockly.Number:
		return 0.0
	default:
		return nil
	}
}

// ValueToString renders colours as "(red=R,green=G,blue=B)" and quotes
// strings, with a missing string shown as "undefined". Values of every other
// type are returned unchanged.
//
// A falsy colour value (nil, zero, empty string, false) renders as the
// all-zero colour.
func ValueToString(value any, t blockly.VariableType) any {
	switch t {
	case blockly.Colour:
		if falsy(value) {
			return zeroColorString
		}
		c, _ := toColor(value)
		return fmt.Sprintf("(red=%d,green=%d,blue=%d)", c.Red, c.Green, c.Blue)
	case blockly.String:
		if value == nil {
			return `"undefined"`
		}
		return `"` + fmt.Sprint(value) + `"`
	default:
		return value
	}
}

// FormatValue is ValueToString flattened to text for display.
func FormatValue(value any, t blockly.VariableType) string {
	return fmt.Sprint(ValueToString(value, t))
}

func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}

func toColor(v any) (Color, bool) {
	switch c := v.(type) {
	case Color:
		return c, true
	case *Color:
		return *c, true
	case map[string]any:
		return Color{
			Red:   channel(c["red"]),
			Green: channel(c["green"]),
			Blue:  channel(c["blue"]),
		}, true
	}
	return Color{}, false
}

func channel(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
