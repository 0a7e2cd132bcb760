package stage

import (
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/construction-stages/internal/domain"
)

// Field names used in validation errors.
const (
	FieldName       = "name"
	FieldStartDate  = "startDate"
	FieldEndDate    = "endDate"
	FieldColor      = "color"
	FieldExternalID = "externalId"
)

// Length limits of the free-text columns.
const (
	MaxNameLength       = 255
	MaxExternalIDLength = 255
)

// Validation messages, one per rejectable field.
const (
	MsgName       = "Name must be a maximum of 255 characters"
	MsgStartDate  = "start_date is a valid date&time in iso8601 format"
	MsgEndDate    = "end_date is either `null` or a valid datetime which is later than the start_date"
	MsgColor      = "color is either `null` or a valid HEX color i.e. #FF0000"
	MsgExternalID = "externalId is `null` or any string up to 255 characters in length"
)

// Nullable is a patch field that tells an absent key apart from an explicit
// null. Set is false when the key was absent; Value is nil for null.
type Nullable struct {
	Set   bool
	Value *string
}

// Null returns a Nullable holding an explicit null.
func Null() Nullable {
	return Nullable{Set: true}
}

// Of returns a Nullable holding v.
func Of(v string) Nullable {
	return Nullable{Set: true, Value: &v}
}

// isNull treats an empty string like null.
func (n Nullable) isNull() bool {
	return n.Value == nil || *n.Value == ""
}

// Patch is a partial update. Nil pointers and unset Nullables leave the
// stored value untouched.
type Patch struct {
	Name         *string
	StartDate    *string
	EndDate      Nullable
	DurationUnit *string
	Color        Nullable
	ExternalID   Nullable
	Status       *string
}

// Apply validates every supplied field against current and returns the stage
// that should be written. All fields are checked before deciding, so the
// returned *domain.ValidationError lists every rejected field in the order
// name, startDate, endDate, color, externalId. Duration is always recomputed.
//
// endDate is compared with the patch's startDate when one is supplied and
// with the stored startDate otherwise.
func (p *Patch) Apply(current Stage) (Stage, error) {
	next := current
	verr := &domain.ValidationError{}

	if p.Name != nil {
		if utf8.RuneCountInString(*p.Name) <= MaxNameLength {
			next.Name = *p.Name
		} else {
			verr.Add(FieldName, MsgName)
		}
	}

	if p.StartDate != nil {
		if t, ok := parseValid(*p.StartDate); ok {
			next.StartDate = &t
		} else {
			next.StartDate = nil
			verr.Add(FieldStartDate, MsgStartDate)
		}
	}

	if p.EndDate.Set {
		if p.EndDate.isNull() {
			next.EndDate = nil
		} else if t, ok := parseValid(*p.EndDate.Value); ok && next.StartDate != nil && t.After(*next.StartDate) {
			next.EndDate = &t
		} else {
			next.EndDate = nil
			verr.Add(FieldEndDate, MsgEndDate)
		}
	}

	if p.DurationUnit != nil {
		next.DurationUnit = ValidUnit(*p.DurationUnit)
	}

	if p.Color.Set {
		switch {
		case p.Color.isNull():
			next.Color = nil
		case IsHexColor(*p.Color.Value):
			next.Color = p.Color.Value
		default:
			verr.Add(FieldColor, MsgColor)
		}
	}

	if p.ExternalID.Set {
		switch {
		case p.ExternalID.isNull():
			next.ExternalID = nil
		case utf8.RuneCountInString(*p.ExternalID.Value) <= MaxExternalIDLength:
			next.ExternalID = p.ExternalID.Value
		default:
			verr.Add(FieldExternalID, MsgExternalID)
		}
	}

	if p.Status != nil {
		next.Status = ValidStatus(*p.Status)
	}

	next.Recompute()

	if err := verr.ErrOrNil(); err != nil {
		return Stage{}, err
	}
	return next, nil
}

// parseValid accepts a value only when it both matches the ISO-8601 shape and
// names a real instant, since the column is typed.
func parseValid(v string) (time.Time, bool) {
	t, err := ParseTimestamp(v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
