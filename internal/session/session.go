// Package session holds the server-side editing state for a user's resume
// record and schedules its persistence.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultDebounce is the quiet period after the last mutation before a
// scheduled save fires.
const DefaultDebounce = 2 * time.Second

// saveTimeout bounds a background persistence attempt.
const saveTimeout = 10 * time.Second

// StoredResume is a persisted record row as seen by the session layer.
type StoredResume struct {
	ID         uuid.UUID
	Record     *types.ResumeRecord
	TemplateID int
	UpdatedAt  time.Time
}

// Store persists resume records. Implemented by the db package (via an
// adapter) and by recording fakes in tests.
type Store interface {
	// LoadLatest returns the most-recently-updated record for the user, or
	// nil when the user has none.
	LoadLatest(ctx context.Context, userID uuid.UUID) (*StoredResume, error)
	// Create inserts a new row and returns its identifier.
	Create(ctx context.Context, userID uuid.UUID, record *types.ResumeRecord, templateID int) (uuid.UUID, error)
	// Update overwrites an existing row. Last write wins; there is no
	// conflict detection at this layer.
	Update(ctx context.Context, resumeID uuid.UUID, record *types.ResumeRecord, templateID int) error
}

// Session is the explicit mutable container for one user's in-progress
// record. Scorer, renderer and exporter never reach into it; they receive
// snapshots, which keeps them pure and unit-testable without a live session.
type Session struct {
	mu         sync.Mutex
	userID     uuid.UUID
	record     *types.ResumeRecord
	templateID int
	resumeID   uuid.UUID // zero until the first successful save
	store      Store
	debounce   time.Duration
	timer      *time.Timer
}

// New creates a session starting from blank form defaults.
func New(userID uuid.UUID, store Store, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Session{
		userID:     userID,
		record:     types.NewRecord(),
		templateID: 1,
		store:      store,
		debounce:   debounce,
	}
}

// Hydrate replaces the blank defaults with the user's most-recently-updated
// persisted record, when one exists. Finding none is not an error.
func (s *Session) Hydrate(ctx context.Context) error {
	stored, err := s.store.LoadLatest(ctx, s.userID)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	s.mu.Lock()
	s.record = stored.Record.Clone()
	s.templateID = stored.TemplateID
	s.resumeID = stored.ID
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the current record and the selected
// template ID.
func (s *Session) Snapshot() (*types.ResumeRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone(), s.templateID
}

// SetRecord replaces the record and template selection, then schedules a
// trailing-debounced save: the pending save, if any, is cancelled and a new
// one is scheduled for one quiet period from now. Intermediate states may
// never be persisted; only the settled state is, eventually.
func (s *Session) SetRecord(record *types.ResumeRecord, templateID int) {
	s.mu.Lock()
	s.record = record.Clone()
	s.templateID = templateID
	s.scheduleSaveLocked()
	s.mu.Unlock()
}

// Save persists immediately, cancelling any pending debounced save first.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.persist(ctx)
}

// scheduleSaveLocked resets the debounce timer. Caller holds s.mu.
func (s *Session) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush runs the debounced save in the background. Persistence failures are
// logged and swallowed; the in-memory record is never touched by a failed
// save and the session stays usable.
func (s *Session) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.persist(ctx); err != nil {
		log.Printf("session: debounced save failed for user %s: %v", s.userID, err)
	}
}

// persist writes the current snapshot: an insert that remembers the new row
// ID on the first save, an update by that ID thereafter.
func (s *Session) persist(ctx context.Context) error {
	record, templateID := s.Snapshot()

	s.mu.Lock()
	resumeID := s.resumeID
	s.mu.Unlock()

	if resumeID == uuid.Nil {
		id, err := s.store.Create(ctx, s.userID, record, templateID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.resumeID = id
		s.mu.Unlock()
		return nil
	}

	return s.store.Update(ctx, resumeID, record, templateID)
}
