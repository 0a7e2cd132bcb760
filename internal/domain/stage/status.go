package stage

// Status is the lifecycle state of a stage.
type Status string

const (
	StatusNew     Status = "NEW"
	StatusDeleted Status = "DELETED"
	StatusPlanned Status = "PLANNED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusDeleted, StatusPlanned:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ValidStatus maps any value onto a Status. The match is exact and
// case-sensitive; everything else becomes StatusNew.
func ValidStatus(v string) Status {
	if s := Status(v); s.IsValid() {
		return s
	}
	return StatusNew
}
