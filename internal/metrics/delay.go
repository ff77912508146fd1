package metrics

import "github.com/san-kum/ardusim/internal/frames"

// TotalDelay sums the delay of every frame, in milliseconds.
type TotalDelay struct {
	total int
}

func NewTotalDelay() *TotalDelay {
	return &TotalDelay{}
}

func (d *TotalDelay) Name() string { return "total_delay_ms" }

func (d *TotalDelay) Observe(f frames.ArduinoFrame) {
	d.total += f.Delay
}

func (d *TotalDelay) Value() float64 { return float64(d.total) }

func (d *TotalDelay) Reset() { d.total = 0 }
