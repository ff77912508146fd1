package metrics

import (
	"reflect"

	"github.com/san-kum/ardusim/internal/frames"
)

// VariableWrites counts frames whose variables differ from the frame before.
type VariableWrites struct {
	prev   map[string]frames.Variable
	seen   bool
	writes int
}

func NewVariableWrites() *VariableWrites {
	return &VariableWrites{}
}

func (v *VariableWrites) Name() string { return "variable_writes" }

func (v *VariableWrites) Observe(f frames.ArduinoFrame) {
	if changed(v.seen, len(f.Variables), !reflect.DeepEqual(v.prev, f.Variables)) {
		v.writes++
	}
	v.prev, v.seen = f.Variables, true
}

func (v *VariableWrites) Value() float64 { return float64(v.writes) }

func (v *VariableWrites) Reset() {
	v.prev, v.seen, v.writes = nil, false, 0
}

// ComponentUpdates counts frames whose component list differs from the frame
// before.
type ComponentUpdates struct {
	prev    []frames.ComponentState
	seen    bool
	updates int
}

func NewComponentUpdates() *ComponentUpdates {
	return &ComponentUpdates{}
}

func (c *ComponentUpdates) Name() string { return "component_updates" }

func (c *ComponentUpdates) Observe(f frames.ArduinoFrame) {
	if changed(c.seen, len(f.Components), !reflect.DeepEqual(c.prev, f.Components)) {
		c.updates++
	}
	c.prev, c.seen = f.Components, true
}

func (c *ComponentUpdates) Value() float64 { return float64(c.updates) }

func (c *ComponentUpdates) Reset() {
	c.prev, c.seen, c.updates = nil, false, 0
}

// changed treats the first frame as a change only when it carries state.
func changed(seen bool, size int, differs bool) bool {
	if !seen {
		return size > 0
	}
	return differs
}
