package history

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/long2k5-bit/ds2026/pkg/storage"
)

// FormatVersion is written into every record. Readers accept records whose
// major version matches.
const FormatVersion = "v1.0.0"

const bucketRuns = "runs"

var (
	ErrRunNotFound         = errors.New("run not found")
	ErrIncompatibleVersion = errors.New("incompatible record version")
)

// Record summarizes one pipeline run
type Record struct {
	ID         string        `json:"id"`
	Version    string        `json:"version"`
	Workload   string        `json:"workload"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	Mappers    int           `json:"mappers"`
	Reducers   int           `json:"reducers"`
	Workers    int           `json:"workers"`
	InputFiles []string      `json:"input_files"`
	InputBytes int64         `json:"input_bytes"`
	Pairs      int           `json:"pairs"`
	Results    int           `json:"results"`
	OutputPath string        `json:"output_path"`
}

// IsCompatibleVersion reports whether a record written with recordVersion can
// be read by this build. Major versions must match exactly.
func IsCompatibleVersion(recordVersion string) (bool, error) {
	if !semver.IsValid(recordVersion) {
		return false, fmt.Errorf("invalid record version: %q", recordVersion)
	}
	return semver.Major(recordVersion) == semver.Major(FormatVersion), nil
}

// Store keeps run records in a storage.Backend
type Store struct {
	backend storage.Backend
	logger  *log.Logger
}

// Open opens a bbolt-backed store at path. A nil logger discards.
func Open(path string, logger *log.Logger) (*Store, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(backend, logger)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return store, nil
}

// NewStore wraps an existing backend. Skipped records are reported to logger.
func NewStore(backend storage.Backend, logger *log.Logger) (*Store, error) {
	if err := backend.CreateBucket(bucketRuns); err != nil {
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{backend: backend, logger: logger}, nil
}

// Close closes the underlying backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// Save stores rec, filling in ID and Version when empty
func (s *Store) Save(rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Version == "" {
		rec.Version = FormatVersion
	}

	if err := storage.PutJSON(s.backend, bucketRuns, []byte(rec.ID), rec); err != nil {
		return fmt.Errorf("save run %s: %w", rec.ID, err)
	}

	return nil
}

// Get loads one record by ID
func (s *Store) Get(id string) (Record, error) {
	var rec Record

	found, err := storage.GetJSON(s.backend, bucketRuns, []byte(id), &rec)
	if err != nil {
		return Record{}, err
	}
	if !found {
		return Record{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	ok, err := IsCompatibleVersion(rec.Version)
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, fmt.Errorf("%w: run %s has %s, want %s.x.x",
			ErrIncompatibleVersion, id, rec.Version, semver.Major(FormatVersion))
	}

	return rec, nil
}

// Delete removes one record by ID
func (s *Store) Delete(id string) error {
	value, err := s.backend.Get(bucketRuns, []byte(id))
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err := s.backend.Delete(bucketRuns, []byte(id)); err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	return nil
}

// List returns all readable records, newest first. Records that fail to decode
// or carry an incompatible version are skipped and logged.
func (s *Store) List() ([]Record, error) {
	var records []Record

	err := s.backend.ForEach(bucketRuns, func(k, v []byte) error {
		var rec Record
		if err := storage.DecodeJSON(v, &rec); err != nil {
			s.logger.Printf("[HISTORY] Skipping run %s: %v", k, err)
			return nil
		}

		if ok, err := IsCompatibleVersion(rec.Version); err != nil || !ok {
			s.logger.Printf("[HISTORY] Skipping run %s: version %q not readable by %s", k, rec.Version, FormatVersion)
			return nil
		}

		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})

	return records, nil
}
