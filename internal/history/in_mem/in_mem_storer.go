package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	records     []history.Record
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{}
}

func (s *InMemStorer) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.records = append(s.records, record)

	slog.Debug("Saved evaluation to in-memory history", "id", record.ID, "output", record.Output)
	return record.ID, nil
}

func (s *InMemStorer) List(ctx context.Context, limit int) ([]history.Record, error) {
	limit = history.ClampLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	result := make([]history.Record, 0, min(limit, len(s.records)))
	for i := len(s.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}

func (s *InMemStorer) Close() {}
