// Package stage holds the construction-stage entity together with the
// validation and derivation rules applied before every write.
package stage

import "time"

// Stage is a named, time-bounded construction activity.
type Stage struct {
	ID           int64
	Name         string
	StartDate    *time.Time
	EndDate      *time.Time
	Duration     *int64
	DurationUnit DurationUnit
	Color        *string
	ExternalID   *string
	Status       Status
}

// Recompute derives Duration from StartDate, EndDate and DurationUnit.
// Duration is never taken from input; every write path calls this first.
func (s *Stage) Recompute() {
	s.Duration = Duration(s.StartDate, s.EndDate, s.DurationUnit)
}

// Input carries the fields supplied when creating a stage. Nil pointers mean
// the field was not supplied.
type Input struct {
	Name         string
	StartDate    *string
	EndDate      *string
	DurationUnit string
	Color        *string
	ExternalID   *string
	Status       string
}

// Build validates the input with the same rules as a patch and returns the
// stage to insert. DurationUnit and Status are coerced to their defaults when
// unknown. Returns a *domain.ValidationError when any field is rejected.
func (in *Input) Build() (Stage, error) {
	p := Patch{
		Name:         &in.Name,
		StartDate:    in.StartDate,
		EndDate:      Nullable{Set: in.EndDate != nil, Value: in.EndDate},
		DurationUnit: &in.DurationUnit,
		Color:        Nullable{Set: in.Color != nil, Value: in.Color},
		ExternalID:   Nullable{Set: in.ExternalID != nil, Value: in.ExternalID},
		Status:       &in.Status,
	}
	return p.Apply(Stage{DurationUnit: UnitDays, Status: StatusNew})
}
