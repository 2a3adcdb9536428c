package history

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
	"github.com/google/uuid"
)

const (
	DefaultListLimit = pagination.PageDefaultSize
	MaxListLimit     = pagination.PageMaxSize
)

// Record is one successfully evaluated line.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Line      string    `json:"line"`
	Variables []string  `json:"variables"`
	Output    string    `json:"output"`
	Outputs   []bool    `json:"outputs"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRecord(line string, t *truthtable.TruthTable) Record {
	return Record{
		ID:        uuid.New(),
		Line:      line,
		Variables: t.Variables,
		Output:    t.Output,
		Outputs:   t.OutputColumn(),
		CreatedAt: time.Now().UTC(),
	}
}

type Storer interface {
	Save(ctx context.Context, record Record) (uuid.UUID, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported history storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// ClampLimit maps a requested page size onto [1, MaxListLimit].
func ClampLimit(limit int) int {
	return pagination.Clamp(limit, DefaultListLimit, MaxListLimit)
}
