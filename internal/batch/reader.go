// Package batch runs matching over JSONL files of match requests, one
// request per line.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/models"
)

// InputRecord is one parsed line. A malformed line carries its Error and
// LineNumber so callers can report it without losing the rest of the file.
type InputRecord struct {
	Request    models.MatchRequest
	LineNumber int
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records until EOF or context cancellation. Blank lines are
// skipped; they still count toward line numbers.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal(line, &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			} else if record.Request.JobID == "" && record.Request.CandidateID == "" {
				record.Error = fmt.Errorf("line %d: either job_id or candidate_id is required", lineNumber)
			}

			select {
			case out <- record:
			case <-ctx.Done():
				r.logger.Warn().Int("line", lineNumber).Msg("Reader cancelled")
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("Failed to read input")
		}
	}()

	return out
}
