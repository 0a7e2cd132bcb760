package stage

// DurationUnit is the granularity in which a stage duration is expressed.
type DurationUnit string

const (
	UnitHours DurationUnit = "HOURS"
	UnitDays  DurationUnit = "DAYS"
	UnitWeeks DurationUnit = "WEEKS"
)

const (
	secondsPerHour = 60 * 60
	secondsPerDay  = 24 * secondsPerHour
	secondsPerWeek = 7 * secondsPerDay
)

// IsValid returns true if the unit is one of the defined constants.
func (u DurationUnit) IsValid() bool {
	switch u {
	case UnitHours, UnitDays, UnitWeeks:
		return true
	default:
		return false
	}
}

// Seconds returns the length of one unit in seconds. Unknown units count as days.
func (u DurationUnit) Seconds() int64 {
	switch u {
	case UnitHours:
		return secondsPerHour
	case UnitWeeks:
		return secondsPerWeek
	default:
		return secondsPerDay
	}
}

// String implements fmt.Stringer.
func (u DurationUnit) String() string {
	return string(u)
}

// ValidUnit maps any value onto a DurationUnit. The match is exact and
// case-sensitive; everything else becomes UnitDays.
func ValidUnit(v string) DurationUnit {
	if u := DurationUnit(v); u.IsValid() {
		return u
	}
	return UnitDays
}
