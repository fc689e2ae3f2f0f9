package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// storeAdapter adapts db.DB to the session.Store interface, keeping the
// session package free of a database dependency.
type storeAdapter struct {
	db *db.DB
}

func (a *storeAdapter) LoadLatest(ctx context.Context, userID uuid.UUID) (*session.StoredResume, error) {
	row, err := a.db.LoadLatestResume(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return &session.StoredResume{
		ID:         row.ID,
		Record:     row.Record(),
		TemplateID: row.TemplateID,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func (a *storeAdapter) Create(ctx context.Context, userID uuid.UUID, record *types.ResumeRecord, templateID int) (uuid.UUID, error) {
	return a.db.CreateResume(ctx, userID, record, templateID)
}

func (a *storeAdapter) Update(ctx context.Context, resumeID uuid.UUID, record *types.ResumeRecord, templateID int) error {
	return a.db.UpdateResume(ctx, resumeID, record, templateID)
}
