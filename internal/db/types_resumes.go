package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeRow represents a persisted resume record
type ResumeRow struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	PersonalInfo types.PersonalInfo `json:"personal_info"`
	Summary      string             `json:"summary"`
	Experience   []types.Experience `json:"experience"`
	Education    []types.Education  `json:"education"`
	Skills       []string           `json:"skills"`
	Projects     []types.Project    `json:"projects"`
	TemplateID   int                `json:"template_id"`
	IsDefault    bool               `json:"is_default"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Record reassembles the row's JSON columns into a resume record.
func (r *ResumeRow) Record() *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo: r.PersonalInfo,
		Summary:      r.Summary,
		Experience:   r.Experience,
		Education:    r.Education,
		Skills:       r.Skills,
		Projects:     r.Projects,
	}
}
