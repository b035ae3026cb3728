// Package session provides an in-memory TTL cache for loaded profiles, jobs,
// and match results, so repeated tool invocations can reference entities by ID
// without re-parsing.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultTTL is the default entry lifetime.
const DefaultTTL = time.Hour

// entry wraps a stored value with bookkeeping metadata.
type entry struct {
	value       any
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// Metrics reports cache usage counters.
type Metrics struct {
	TotalEntries  int     `json:"total_entries"`
	ProfilesCount int     `json:"profiles_count"`
	JobsCount     int     `json:"jobs_count"`
	MatchesCount  int     `json:"matches_count"`
	TotalAccesses int     `json:"total_accesses"`
	HitCount      int     `json:"hit_count"`
	MissCount     int     `json:"miss_count"`
	HitRate       float64 `json:"hit_rate"`
	ExpiredCount  int     `json:"expired_count"`
}

// Manager is a mutex-guarded TTL store. The zero value is not usable; create
// with NewManager.
type Manager struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	profiles map[string]*entry
	jobs     map[string]*entry
	matches  map[string]*entry

	hits    int
	misses  int
	expired int
}

// NewManager creates a session manager with the given TTL; ttl <= 0 uses
// DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		ttl:      ttl,
		now:      time.Now,
		profiles: make(map[string]*entry),
		jobs:     make(map[string]*entry),
		matches:  make(map[string]*entry),
	}
}

// NewID generates a prefixed unique identifier, e.g. "profile-<uuid>".
func NewID(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return fmt.Sprintf("%s-%s", prefix, id)
}

// PutProfile stores a profile and returns its ID, generating one if absent.
func (m *Manager) PutProfile(profile *types.Profile) string {
	if profile.ProfileID == "" {
		profile.ProfileID = NewID("profile")
	}
	m.put(m.profiles, profile.ProfileID, profile)
	return profile.ProfileID
}

// GetProfile retrieves a profile by ID; expired or unknown IDs return nil.
func (m *Manager) GetProfile(id string) *types.Profile {
	if v := m.get(m.profiles, id); v != nil {
		return v.(*types.Profile)
	}
	return nil
}

// PutJob stores a job and returns its ID, generating one if absent.
func (m *Manager) PutJob(job *types.Job) string {
	if job.JobID == "" {
		job.JobID = NewID("job")
	}
	m.put(m.jobs, job.JobID, job)
	return job.JobID
}

// GetJob retrieves a job by ID; expired or unknown IDs return nil.
func (m *Manager) GetJob(id string) *types.Job {
	if v := m.get(m.jobs, id); v != nil {
		return v.(*types.Job)
	}
	return nil
}

// PutMatch stores a match result under a generated match ID and returns it.
func (m *Manager) PutMatch(result *types.MatchResult) string {
	id := NewID("match")
	m.put(m.matches, id, result)
	return id
}

// GetMatch retrieves a match result by ID; expired or unknown IDs return nil.
func (m *Manager) GetMatch(id string) *types.MatchResult {
	if v := m.get(m.matches, id); v != nil {
		return v.(*types.MatchResult)
	}
	return nil
}

// Cleanup removes all expired entries and returns how many were evicted.
func (m *Manager) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for _, store := range []map[string]*entry{m.profiles, m.jobs, m.matches} {
		for id, e := range store {
			if m.isExpiredLocked(e) {
				delete(store, id)
				evicted++
			}
		}
	}
	m.expired += evicted
	return evicted
}

// Snapshot returns current usage metrics.
func (m *Manager) Snapshot() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	accesses := 0
	for _, store := range []map[string]*entry{m.profiles, m.jobs, m.matches} {
		for _, e := range store {
			accesses += e.accessCount
		}
	}

	total := m.hits + m.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(m.hits) / float64(total)
	}

	return Metrics{
		TotalEntries:  len(m.profiles) + len(m.jobs) + len(m.matches),
		ProfilesCount: len(m.profiles),
		JobsCount:     len(m.jobs),
		MatchesCount:  len(m.matches),
		TotalAccesses: accesses,
		HitCount:      m.hits,
		MissCount:     m.misses,
		HitRate:       hitRate,
		ExpiredCount:  m.expired,
	}
}

func (m *Manager) put(store map[string]*entry, id string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	store[id] = &entry{value: value, createdAt: now, lastAccess: now}
}

func (m *Manager) get(store map[string]*entry, id string) any {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := store[id]
	if !ok {
		m.misses++
		return nil
	}

	if m.isExpiredLocked(e) {
		delete(store, id)
		m.expired++
		m.misses++
		return nil
	}

	e.lastAccess = m.now()
	e.accessCount++
	m.hits++
	return e.value
}

func (m *Manager) isExpiredLocked(e *entry) bool {
	return m.now().Sub(e.createdAt) > m.ttl
}
