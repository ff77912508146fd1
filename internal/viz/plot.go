package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ardusim/internal/frames"
)

// ErrNotNumeric indicates a variable with no numeric value in any frame.
var ErrNotNumeric = errors.New("viz: variable has no numeric values")

// Series extracts a variable's value per frame. Frames where the variable is
// unset or not a number repeat the previous value, starting from zero.
func Series(history []frames.ArduinoFrame, name string) ([]float64, error) {
	data := make([]float64, len(history))
	found := false
	last := 0.0
	for i, f := range history {
		if v, ok := f.Variables[name]; ok {
			if n, ok := number(v.Value); ok {
				last, found = n, true
			}
		}
		data[i] = last
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, name)
	}
	return data, nil
}

func Plot(history []frames.ArduinoFrame, name string, height, width int) (string, error) {
	data, err := Series(history, name)
	if err != nil {
		return "", err
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s by frame", name)),
	), nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
