package model

const (
	historySize     = 5
	historyLookback = 3
)

// StagnationDetector remembers the fingerprints of the last few generations
// to spot still lifes and short-period oscillators. Nothing is persisted.
type StagnationDetector struct {
	history []string
}

// Observe records hash and reports whether it repeats one of the previous
// historyLookback generations.
func (d *StagnationDetector) Observe(hash string) bool {
	repeated := false
	for i := len(d.history) - 1; i >= 0 && i >= len(d.history)-historyLookback; i-- {
		if d.history[i] == hash {
			repeated = true
			break
		}
	}

	d.history = append(d.history, hash)
	// Keep only the last historySize states
	if len(d.history) > historySize {
		d.history = d.history[1:]
	}
	return repeated
}

// Reset forgets all observed generations
func (d *StagnationDetector) Reset() {
	d.history = nil
}
