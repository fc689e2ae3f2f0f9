// Package db provides PostgreSQL persistence for resume records.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// LoadLatestResume retrieves the user's most-recently-updated resume, or nil
// when the user has none saved.
func (db *DB) LoadLatestResume(ctx context.Context, userID uuid.UUID) (*ResumeRow, error) {
	var row ResumeRow
	var personalInfo, experience, education, skills, projects []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, personal_info, summary, experience, education, skills, projects,
		        template_id, is_default, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY updated_at DESC LIMIT 1`,
		userID,
	).Scan(&row.ID, &row.UserID, &personalInfo, &row.Summary, &experience, &education,
		&skills, &projects, &row.TemplateID, &row.IsDefault, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	if err := unmarshalRecordColumns(&row, personalInfo, experience, education, skills, projects); err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateResume inserts a new resume row and returns its ID
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, record *types.ResumeRecord, templateID int) (uuid.UUID, error) {
	personalInfo, experience, education, skills, projects, err := marshalRecordColumns(record)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, personal_info, summary, experience, education, skills, projects, template_id, is_default)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		 RETURNING id`,
		userID, personalInfo, record.Summary, experience, education, skills, projects, templateID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// UpdateResume overwrites an existing resume row
func (db *DB) UpdateResume(ctx context.Context, resumeID uuid.UUID, record *types.ResumeRecord, templateID int) error {
	personalInfo, experience, education, skills, projects, err := marshalRecordColumns(record)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET personal_info = $1, summary = $2, experience = $3, education = $4,
		     skills = $5, projects = $6, template_id = $7, updated_at = NOW()
		 WHERE id = $8`,
		personalInfo, record.Summary, experience, education, skills, projects, templateID, resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

func marshalRecordColumns(record *types.ResumeRecord) (personalInfo, experience, education, skills, projects []byte, err error) {
	if personalInfo, err = json.Marshal(record.PersonalInfo); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal personal info: %w", err)
	}
	if experience, err = json.Marshal(record.Experience); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	if education, err = json.Marshal(record.Education); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	if skills, err = json.Marshal(record.Skills); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	if projects, err = json.Marshal(record.Projects); err != nil {
		return nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal projects: %w", err)
	}
	return personalInfo, experience, education, skills, projects, nil
}

func unmarshalRecordColumns(row *ResumeRow, personalInfo, experience, education, skills, projects []byte) error {
	if err := json.Unmarshal(personalInfo, &row.PersonalInfo); err != nil {
		return fmt.Errorf("failed to unmarshal personal info: %w", err)
	}
	if err := json.Unmarshal(experience, &row.Experience); err != nil {
		return fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &row.Education); err != nil {
		return fmt.Errorf("failed to unmarshal education: %w", err)
	}
	if err := json.Unmarshal(skills, &row.Skills); err != nil {
		return fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(projects, &row.Projects); err != nil {
		return fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	return nil
}
