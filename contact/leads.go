package contact

import (
	"encoding/csv"
	"os"
	"sync"
	"time"
)

type Lead struct {
	Timestamp time.Time
	Name      string
	Email     string
	Message   string
}

// LeadLog records contact-form submissions for manual follow-up.
type LeadLog interface {
	Append(lead Lead) error
}

// CSVLog appends leads to a flat CSV file, writing the header row the first
// time the file is created. Appends are serialized behind a mutex.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Append(lead Lead) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	firstWrite := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if firstWrite {
		if err := w.Write([]string{"timestamp", "name", "email", "message"}); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		lead.Timestamp.UTC().Format(time.RFC3339),
		lead.Name, lead.Email, lead.Message,
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
