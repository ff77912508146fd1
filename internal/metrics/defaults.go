package metrics

import "github.com/san-kum/ardusim/internal/script"

func Default() []script.Metric {
	return []script.Metric{
		NewTotalDelay(),
		NewVariableWrites(),
		NewComponentUpdates(),
		NewBuiltInLedDuty(),
	}
}
