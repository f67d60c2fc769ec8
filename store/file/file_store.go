// Package file implements the Record Store on flat JSON files. The in-memory
// lists are the source of truth; every mutation rewrites the entity's whole
// persisted document. All mutations funnel through a single mutex so
// concurrent submissions cannot lose each other's appends.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/Zharokiecoder/GITEX2/validation"
)

const (
	registrationsFile = "registrations.json"
	feedbacksFile     = "feedbacks.json"
)

// Store is the whole-snapshot JSON file backend.
type Store struct {
	mu            sync.Mutex
	dir           string
	registrations []*types.Registration
	feedbacks     []*types.Feedback
	lastID        int64
}

var _ store.Store = (*Store)(nil)

// Open loads any existing JSON documents from dir, creating the directory
// when absent.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{dir: dir}

	if err := loadJSON(filepath.Join(dir, registrationsFile), &s.registrations); err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}
	if err := loadJSON(filepath.Join(dir, feedbacksFile), &s.feedbacks); err != nil {
		return nil, fmt.Errorf("failed to load feedbacks: %w", err)
	}

	return s, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// persist serializes the given collection and atomically replaces the
// persisted document. Callers must hold s.mu.
func (s *Store) persist(name string, collection any) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// nextID returns a millisecond-timestamp id, bumped when two submissions
// land within the same millisecond so ids stay monotonic.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) Registrations() store.RegistrationStore { return &registrationStore{s} }
func (s *Store) Feedbacks() store.FeedbackStore         { return &feedbackStore{s} }

func (s *Store) Backend() string { return "file" }

// Ping always succeeds: the in-memory lists are authoritative once loaded.
func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close(ctx context.Context) error { return nil }

type registrationStore struct {
	s *Store
}

func (r *registrationStore) Create(ctx context.Context, reg *types.Registration) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := copyRegistration(reg)
	stored.ID = r.s.nextID()
	stored.Timestamp = time.Now().UTC()

	r.s.registrations = append(r.s.registrations, stored)
	if err := r.s.persist(registrationsFile, r.s.registrations); err != nil {
		// Roll back the append so memory and disk stay consistent
		r.s.registrations = r.s.registrations[:len(r.s.registrations)-1]
		return "", err
	}

	reg.ID = stored.ID
	reg.Timestamp = stored.Timestamp
	return stored.ID, nil
}

func (r *registrationStore) List(ctx context.Context) ([]*types.Registration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*types.Registration, 0, len(r.s.registrations))
	for _, reg := range r.s.registrations {
		out = append(out, copyRegistration(reg))
	}
	return out, nil
}

func (r *registrationStore) FindByEmail(ctx context.Context, normalizedEmail string) ([]*types.Registration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*types.Registration
	for _, reg := range r.s.registrations {
		if validation.NormalizeEmail(reg.Email) == normalizedEmail {
			out = append(out, copyRegistration(reg))
		}
	}
	return out, nil
}

func (r *registrationStore) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.registrations), nil
}

type feedbackStore struct {
	s *Store
}

func (f *feedbackStore) Create(ctx context.Context, fb *types.Feedback) (string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	stored := copyFeedback(fb)
	stored.ID = f.s.nextID()
	stored.Timestamp = time.Now().UTC()

	f.s.feedbacks = append(f.s.feedbacks, stored)
	if err := f.s.persist(feedbacksFile, f.s.feedbacks); err != nil {
		f.s.feedbacks = f.s.feedbacks[:len(f.s.feedbacks)-1]
		return "", err
	}

	fb.ID = stored.ID
	fb.Timestamp = stored.Timestamp
	return stored.ID, nil
}

func (f *feedbackStore) List(ctx context.Context) ([]*types.Feedback, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	out := make([]*types.Feedback, 0, len(f.s.feedbacks))
	for _, fb := range f.s.feedbacks {
		out = append(out, copyFeedback(fb))
	}
	return out, nil
}

func (f *feedbackStore) Count(ctx context.Context) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return len(f.s.feedbacks), nil
}

func copyRegistration(reg *types.Registration) *types.Registration {
	out := *reg
	if reg.Interests != nil {
		out.Interests = append([]string(nil), reg.Interests...)
	}
	return &out
}

func copyFeedback(fb *types.Feedback) *types.Feedback {
	out := *fb
	if fb.Rating != nil {
		rating := *fb.Rating
		out.Rating = &rating
	}
	return &out
}
