package violation

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

// ViolationReportDTO is the incident payload returned to clients.
type ViolationReportDTO struct {
	ID              int64                   `json:"id"`
	ReservationID   int64                   `json:"reservation_id"`
	UserID          int64                   `json:"user_id"`
	Type            enums.ViolationType     `json:"type"`
	Severity        enums.ViolationSeverity `json:"severity"`
	Status          enums.ViolationStatus   `json:"status"`
	Description     *string                 `json:"description,omitempty"`
	ResolutionNotes *string                 `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time              `json:"resolved_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// FromModel maps a persisted report onto the client payload. Enum columns are
// decoded leniently so rows written under older token sets still load.
func FromModel(v *models.ViolationReport) ViolationReportDTO {
	return ViolationReportDTO{
		ID:              v.ID,
		ReservationID:   v.ReservationID,
		UserID:          v.UserID,
		Type:            enums.CoerceViolationType(string(v.Type)),
		Severity:        enums.CoerceViolationSeverity(string(v.Severity)),
		Status:          enums.CoerceViolationStatus(string(v.Status)),
		Description:     v.Description,
		ResolutionNotes: v.ResolutionNotes,
		ResolvedAt:      v.ResolvedAt,
		CreatedAt:       v.CreatedAt,
	}
}

// FromModels maps a slice of reports.
func FromModels(rows []models.ViolationReport) []ViolationReportDTO {
	dtos := make([]ViolationReportDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos
}

// ReportViolationInput holds the validated payload to file an incident.
// UserID identifies the reporter.
type ReportViolationInput struct {
	ReservationID int64
	UserID        int64
	Type          string
	Severity      string
	Description   string
}
