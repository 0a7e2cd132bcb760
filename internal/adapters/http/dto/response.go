// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/construction-stages/internal/domain/stage"
)

// StageResponse is the wire shape of a construction stage. Timestamps are
// rendered as YYYY-MM-DDTHH:MM:SSZ; absent values are null.
type StageResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Duration     *int64  `json:"duration"`
	DurationUnit string  `json:"durationUnit"`
	Color        *string `json:"color"`
	ExternalID   *string `json:"externalId"`
	Status       string  `json:"status"`
}

// ToStageResponse converts a domain Stage to its HTTP representation.
func ToStageResponse(s *stage.Stage) StageResponse {
	return StageResponse{
		ID:           s.ID,
		Name:         s.Name,
		StartDate:    formatTime(s.StartDate),
		EndDate:      formatTime(s.EndDate),
		Duration:     s.Duration,
		DurationUnit: s.DurationUnit.String(),
		Color:        s.Color,
		ExternalID:   s.ExternalID,
		Status:       s.Status.String(),
	}
}

// ToStageListResponse converts stages to a JSON array. An empty input yields
// an empty array, never null.
func ToStageListResponse(stages []stage.Stage) []StageResponse {
	items := make([]StageResponse, len(stages))
	for i := range stages {
		items[i] = ToStageResponse(&stages[i])
	}
	return items
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := stage.FormatTimestamp(*t)
	return &v
}
