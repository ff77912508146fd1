package metrics

import "github.com/san-kum/ardusim/internal/frames"

// BuiltInLedDuty is the fraction of frames with the built-in led lit.
type BuiltInLedDuty struct {
	lit    int
	frames int
}

func NewBuiltInLedDuty() *BuiltInLedDuty {
	return &BuiltInLedDuty{}
}

func (l *BuiltInLedDuty) Name() string { return "builtin_led_duty" }

func (l *BuiltInLedDuty) Observe(f frames.ArduinoFrame) {
	if f.BuiltInLedOn {
		l.lit++
	}
	l.frames++
}

func (l *BuiltInLedDuty) Value() float64 {
	if l.frames == 0 {
		return 0
	}
	return float64(l.lit) / float64(l.frames)
}

func (l *BuiltInLedDuty) Reset() {
	l.lit = 0
	l.frames = 0
}
