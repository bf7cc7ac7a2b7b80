package bookings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Store is the reservation calendar. ListDates returns every booked ISO date
// in ascending order; ReserveDate marks a date as booked. Reserving a date
// that is already booked is a no-op.
type Store interface {
	ListDates() []string
	ReserveDate(iso string) error
}

type document struct {
	BookedDates []string `json:"booked_dates"`
}

// FileStore persists the booked-date set as a single JSON document. Writes
// rewrite the whole file; a mutex serializes them so concurrent reservations
// cannot lose an update.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ListDates reads the document fresh on every call. A missing file, unreadable
// file, or malformed document all count as "nothing booked yet".
func (s *FileStore) ListDates() []string {
	return s.load()
}

func (s *FileStore) ReserveDate(iso string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := s.load()
	for _, d := range dates {
		if d == iso {
			return nil
		}
	}
	dates = append(dates, iso)
	sort.Strings(dates)
	return s.save(dates)
}

func (s *FileStore) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []string{}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.BookedDates == nil {
		return []string{}
	}
	return doc.BookedDates
}

// save writes to a temp file in the same directory and renames it into place,
// so a crash mid-write never leaves a half-written document behind.
func (s *FileStore) save(dates []string) error {
	data, err := json.MarshalIndent(document{BookedDates: dates}, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".bookings-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
