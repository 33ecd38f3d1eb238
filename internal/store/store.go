package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// StorageKey is the fixed key the portal document is persisted under.
const StorageKey = "ipt_demo_v1"

// Store owns the single portal document and its durable copy. Every mutation
// goes through Mutate, which persists the whole document before returning, so
// readers never observe a partial write.
type Store struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
	doc *Document
}

// New creates a Store over the given filesystem and data directory and loads
// the document immediately: absent or corrupt durable state is replaced by
// the seed document and persisted.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{fs: fs, dir: dir}
	s.load()
	return s, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

func (s *Store) load() {
	raw, err := afero.ReadFile(s.fs, s.path())
	if err == nil {
		var parsed Document
		if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil {
			coerce(&parsed)
			s.doc = &parsed
			return
		}
		log.Warn("stored document is corrupt, reseeding", "key", StorageKey)
	}

	s.doc = Seed()
	if err := s.persist(); err != nil {
		log.Error("failed to persist seed document", "err", err)
	}
}

// coerce replaces missing collections with empty slices so a partially
// malformed document never surfaces nil collections to callers.
func coerce(d *Document) {
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
	if d.Departments == nil {
		d.Departments = []Department{}
	}
	if d.Employees == nil {
		d.Employees = []Employee{}
	}
	if d.Requests == nil {
		d.Requests = []Request{}
	}
}

// Seed returns the first-run document: one verified admin account and two
// departments.
func Seed() *Document {
	return &Document{
		Accounts: []Account{
			{
				ID:        uuid.NewString(),
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []Department{
			{ID: uuid.NewString(), Name: "Engineering", Description: "Engineering Dept"},
			{ID: uuid.NewString(), Name: "HR", Description: "Human Resources Dept"},
		},
		Employees: []Employee{},
		Requests:  []Request{},
	}
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	// Write through a temp file and rename so a crash mid-write never leaves
	// a truncated document under the storage key.
	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Save persists the current document under the storage key.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// View calls fn with read access to the document. fn must not retain or
// mutate the document.
func (s *Store) View(fn func(d *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Mutate calls fn with write access to the document and persists the whole
// document before returning. If fn returns an error nothing is persisted.
func (s *Store) Mutate(fn func(d *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.persist()
}

// Snapshot returns a deep copy of the document for side-effect-free
// projection.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := Document{
		Accounts:    append([]Account{}, s.doc.Accounts...),
		Departments: append([]Department{}, s.doc.Departments...),
		Employees:   append([]Employee{}, s.doc.Employees...),
		Requests:    make([]Request, len(s.doc.Requests)),
	}
	for i, r := range s.doc.Requests {
		r.Items = append([]RequestItem{}, r.Items...)
		copied.Requests[i] = r
	}
	return copied
}
