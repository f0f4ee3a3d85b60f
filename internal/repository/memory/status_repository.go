package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ProcessingStatus tracks where a session note is in the pipeline. It is
// transient observability state, so it lives in process memory rather than
// in the database.
type ProcessingStatus struct {
	SessionNoteID string    `json:"session_note_id"`
	Stage         string    `json:"stage"` // "generating", "parsing", "stored", "embedding", "done", "failed"
	Error         string    `json:"error,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StatusRepository struct {
	cache *cache.Cache
}

func NewStatusRepository() *StatusRepository {
	// Statuses expire after 1 hour, purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StatusRepository{
		cache: c,
	}
}

func (r *StatusRepository) Save(status *ProcessingStatus) {
	status.UpdatedAt = time.Now()
	r.cache.Set(status.SessionNoteID, status, cache.DefaultExpiration)
}

func (r *StatusRepository) Get(sessionNoteID string) (*ProcessingStatus, bool) {
	if x, found := r.cache.Get(sessionNoteID); found {
		return x.(*ProcessingStatus), true
	}
	return nil, false
}

func (r *StatusRepository) Delete(sessionNoteID string) {
	r.cache.Delete(sessionNoteID)
}
