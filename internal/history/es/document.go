package es

import (
	"time"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// EvaluationDocument is the indexed form of a history.Record.
type EvaluationDocument struct {
	ID        string    `json:"id"`
	Line      string    `json:"line"`
	Variables []string  `json:"variables"`
	Output    string    `json:"output"`
	Outputs   []bool    `json:"outputs"`
	CreatedAt time.Time `json:"created_at"`
}

func toDocument(r history.Record) EvaluationDocument {
	return EvaluationDocument{
		ID:        r.ID.String(),
		Line:      r.Line,
		Variables: r.Variables,
		Output:    r.Output,
		Outputs:   r.Outputs,
		CreatedAt: r.CreatedAt,
	}
}

func fromDocument(doc EvaluationDocument) (history.Record, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return history.Record{}, err
	}
	return history.Record{
		ID:        id,
		Line:      doc.Line,
		Variables: doc.Variables,
		Output:    doc.Output,
		Outputs:   doc.Outputs,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"line":       types.NewTextProperty(),
			"variables":  types.NewKeywordProperty(),
			"output":     types.NewKeywordProperty(),
			"outputs":    types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
