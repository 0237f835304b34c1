package batch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/ranker"
)

// OutputRecord pairs one input request with its response or failure.
type OutputRecord struct {
	RequestID   string                `json:"request_id"`
	JobID       string                `json:"job_id,omitempty"`
	CandidateID string                `json:"candidate_id,omitempty"`
	Response    *models.MatchResponse `json:"response,omitempty"`
	Error       string                `json:"error,omitempty"`
}

type Processor struct {
	ranker  *ranker.Ranker
	workers int
	logger  *zerolog.Logger
}

func NewProcessor(rnk *ranker.Ranker, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		ranker:  rnk,
		workers: workers,
		logger:  logger,
	}
}

// Process fans the records out over the worker pool. Records that failed to
// parse are passed through as error outputs without hitting the ranker.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan OutputRecord {
	in := make(chan InputRecord)
	out := make(chan OutputRecord)

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range in {
				out <- p.processOne(ctx, record)
			}
		}()
	}

	go func() {
		defer close(in)
		for _, record := range records {
			select {
			case in <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) OutputRecord {
	output := OutputRecord{
		RequestID:   record.Request.RequestID,
		JobID:       record.Request.JobID,
		CandidateID: record.Request.CandidateID,
	}

	if record.Error != nil {
		output.Error = record.Error.Error()
		return output
	}

	response, err := p.ranker.Match(ctx, record.Request)
	if err != nil {
		p.logger.Error().
			Err(err).
			Int("line", record.LineNumber).
			Msg("Match failed")
		output.Error = err.Error()
		return output
	}

	output.Response = &response
	return output
}
