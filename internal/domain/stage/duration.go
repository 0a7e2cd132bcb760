package stage

import "time"

// Duration returns the whole number of units elapsed between start and end,
// rounded down. The order of the bounds does not matter. Returns nil when
// either bound is missing.
func Duration(start, end *time.Time, unit DurationUnit) *int64 {
	if start == nil || end == nil {
		return nil
	}
	diff := end.Unix() - start.Unix()
	if diff < 0 {
		diff = -diff
	}
	d := diff / unit.Seconds()
	return &d
}
