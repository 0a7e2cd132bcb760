package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
)

// NullableString is a JSON field that distinguishes an absent key (Set is
// false) from an explicit null (Set is true, Value is nil).
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON only runs when the key is present, which is what marks the
// field as set.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n NullableString) toDomain() stage.Nullable {
	return stage.Nullable{Set: n.Set, Value: n.Value}
}

// CreateStageRequest represents the JSON body for creating a construction
// stage. Field validation happens in the domain, not here.
type CreateStageRequest struct {
	Name         string  `json:"name"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	DurationUnit string  `json:"durationUnit"`
	Color        *string `json:"color"`
	ExternalID   *string `json:"externalId"`
	Status       string  `json:"status"`
}

// ToInput converts the request to the domain create input.
func (r *CreateStageRequest) ToInput() *stage.Input {
	return &stage.Input{
		Name:         r.Name,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		DurationUnit: r.DurationUnit,
		Color:        r.Color,
		ExternalID:   r.ExternalID,
		Status:       r.Status,
	}
}

// UpdateStageRequest represents the JSON body of a partial update. Absent
// keys leave the stored value untouched; endDate, color and externalId may
// also be cleared with an explicit null.
type UpdateStageRequest struct {
	Name         *string        `json:"name"`
	StartDate    *string        `json:"startDate"`
	EndDate      NullableString `json:"endDate"`
	DurationUnit *string        `json:"durationUnit"`
	Color        NullableString `json:"color"`
	ExternalID   NullableString `json:"externalId"`
	Status       *string        `json:"status"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateStageRequest) ToPatch() *stage.Patch {
	return &stage.Patch{
		Name:         r.Name,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate.toDomain(),
		DurationUnit: r.DurationUnit,
		Color:        r.Color.toDomain(),
		ExternalID:   r.ExternalID.toDomain(),
		Status:       r.Status,
	}
}
