package scheduling

import "fmt"

// CanAccommodate reports whether a service of the given duration, starting
// at the given clock time, fits inside the configured operating window. With
// includeBuffer the trailing cleanup buffer must fit before closing as well.
// The check is pure and never consults existing appointments.
func (e *Engine) CanAccommodate(start string, durationMin int, includeBuffer bool) (bool, error) {
	startMin, err := ToMinutes(start)
	if err != nil {
		return false, fmt.Errorf("start: %w", err)
	}

	openMin, err := ToMinutes(e.cfg.OpenTime)
	if err != nil {
		return false, fmt.Errorf("open time: %w", err)
	}

	closeMin, err := ToMinutes(e.cfg.CloseTime)
	if err != nil {
		return false, fmt.Errorf("close time: %w", err)
	}

	requiredEnd := startMin + durationMin
	if includeBuffer {
		requiredEnd += e.cfg.BufferMinutes
	}

	return startMin >= openMin && requiredEnd <= closeMin, nil
}
