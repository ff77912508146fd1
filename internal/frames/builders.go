package frames

// Options carries the optional inputs shared by every frame builder. The zero
// value starts a new run: no previous frame, both LEDs off, no delay.
type Options struct {
	Previous     *ArduinoFrame
	TxLedOn      bool
	BuiltInLedOn bool
	Delay        int
}

// ByComponent records a new state for one component. Any earlier state for
// the same component is dropped and the new one goes to the end. A nil
// component leaves the components unchanged.
func ByComponent(blockID, blockName string, tl Timeline, c ComponentState, explanation string, opts Options) ArduinoFrame {
	f := next(blockID, blockName, tl, explanation, opts)
	if c == nil {
		return f
	}

	id := ComponentID(c)
	kept := f.Components[:0]
	for _, existing := range f.Components {
		if ComponentID(existing) != id {
			kept = append(kept, existing)
		}
	}
	f.Components = append(kept, c.Clone())
	return f
}

// ByExplanation advances the run without changing any state.
func ByExplanation(blockID, blockName string, tl Timeline, explanation string, opts Options) ArduinoFrame {
	return next(blockID, blockName, tl, explanation, opts)
}

// ByVariable sets (or overwrites) one variable.
func ByVariable(blockID, blockName string, tl Timeline, v Variable, explanation string, opts Options) ArduinoFrame {
	f := next(blockID, blockName, tl, explanation, opts)
	f.Variables[v.Name] = v.Clone()
	return f
}

func next(blockID, blockName string, tl Timeline, explanation string, opts Options) ArduinoFrame {
	f := ArduinoFrame{
		BlockID:      blockID,
		BlockName:    blockName,
		SendMessage:  "",
		TimeLine:     tl,
		Variables:    make(map[string]Variable),
		TxLedOn:      opts.TxLedOn,
		BuiltInLedOn: opts.BuiltInLedOn,
		PowerLedOn:   true,
		Components:   make([]ComponentState, 0),
		Explanation:  explanation,
		Delay:        opts.Delay,
		FrameNumber:  1,
	}
	if prev := opts.Previous; prev != nil {
		f.Variables = cloneVariables(prev.Variables)
		f.Components = cloneComponents(prev.Components)
		f.FrameNumber = prev.FrameNumber + 1
	}
	return f
}
