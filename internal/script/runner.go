package script

import (
	"context"

	"github.com/san-kum/ardusim/internal/frames"
)

type Metric interface {
	Name() string
	Observe(f frames.ArduinoFrame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f frames.ArduinoFrame)
}

type Result struct {
	Script  string
	Frames  []frames.ArduinoFrame
	Metrics map[string]float64
}

// Runner replays a script through the frame builders, one frame per step.
type Runner struct {
	metrics   []Metric
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run builds every frame of s. On cancellation the frames built so far are
// returned along with ctx.Err().
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if s == nil || len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	result := &Result{
		Script:  s.Name,
		Frames:  make([]frames.ArduinoFrame, 0, len(s.Steps)),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	var prev *frames.ArduinoFrame
	for i, step := range s.Steps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if step.Component != nil && step.Variable != nil {
			return result, &StepError{Index: i, BlockID: step.BlockID, Err: ErrAmbiguousStep}
		}

		f := Apply(step, prev)
		result.Frames = append(result.Frames, f)
		prev = &result.Frames[len(result.Frames)-1]

		for _, m := range r.metrics {
			m.Observe(f)
		}
		for _, obs := range r.observers {
			obs.OnFrame(f.Clone())
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Apply builds the frame for a single step on top of prev.
func Apply(step Step, prev *frames.ArduinoFrame) frames.ArduinoFrame {
	opts := frames.Options{
		Previous:     prev,
		TxLedOn:      step.TxLed,
		BuiltInLedOn: step.BuiltInLed,
		Delay:        step.Delay,
	}
	switch {
	case step.Component != nil:
		return frames.ByComponent(step.BlockID, step.BlockName, step.Timeline, step.Component, step.Explanation, opts)
	case step.Variable != nil:
		return frames.ByVariable(step.BlockID, step.BlockName, step.Timeline, *step.Variable, step.Explanation, opts)
	default:
		return frames.ByExplanation(step.BlockID, step.BlockName, step.Timeline, step.Explanation, opts)
	}
}
