package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/booltable/internal/apperr"
	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

const (
	prompt = "> "
	// maxLineBytes is the longest line the REPL reads; longer lines are skipped whole.
	maxLineBytes = 1 << 20
)

type evaluator interface {
	EvaluateLine(line string) (*truthtable.TruthTable, error)
}

type repl struct {
	engine  evaluator
	history history.Storer // nil disables recording
	format  report.Format
	in      io.Reader
	out     io.Writer
}

// Run reads one equation per line until EOF, exit or quit.
// `history` prints the most recent recorded equations.
func (r *repl) Run(ctx context.Context) error {
	br := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, prompt)
		raw, tooLong, err := readLine(br, maxLineBytes)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}
		if tooLong {
			fmt.Fprintf(r.out, "line too long, limit is %d bytes\n", maxLineBytes)
			continue
		}

		line := strings.TrimSpace(raw)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "history":
			r.printHistory(ctx)
			continue
		}

		table, err := r.engine.EvaluateLine(line)
		if err != nil {
			r.printError(err)
			continue
		}

		if err := report.Write(r.out, table, r.format); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
		r.record(ctx, line, table)
	}
}

// readLine returns the next line without its terminator. A line over limit bytes is
// consumed and reported through tooLong. io.EOF is returned only when no input is left.
func readLine(br *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > limit+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
		case err != nil:
			return "", false, err
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}

func (r *repl) printError(err error) {
	var re *apperr.ResourceError
	switch {
	case errors.Is(err, apperr.ErrInvalidExpression), errors.As(err, &re):
		fmt.Fprintln(r.out, err)
	default:
		slog.Error("Unexpected evaluation error", "error", err)
		fmt.Fprintln(r.out, "evaluation failed")
	}
}

func (r *repl) record(ctx context.Context, line string, table *truthtable.TruthTable) {
	if r.history == nil {
		return
	}
	if _, err := r.history.Save(ctx, history.NewRecord(line, table)); err != nil {
		slog.Warn("Failed to record evaluation", "error", err)
	}
}

func (r *repl) printHistory(ctx context.Context) {
	if r.history == nil {
		fmt.Fprintln(r.out, "history is disabled")
		return
	}
	records, err := r.history.List(ctx, history.DefaultListLimit)
	if err != nil {
		slog.Error("Failed to list history", "error", err)
		return
	}
	for i := len(records) - 1; i >= 0; i-- {
		fmt.Fprintln(r.out, records[i].Line)
	}
}
