package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/api/middleware"
	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/ranker"
	"github.com/remote-staffing/match-engine/internal/store"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	ranker *ranker.Ranker
	logger *zerolog.Logger
}

func NewHandler(ranker *ranker.Ranker, logger *zerolog.Logger) *Handler {
	return &Handler{
		ranker: ranker,
		logger: logger,
	}
}

// GET /api/v1/match?job_id=...&candidate_id=...&top_n=...
// Exactly one of job_id / candidate_id selects the direction.
func (h *Handler) Match(req *restful.Request, resp *restful.Response) {
	matchRequest := models.MatchRequest{
		JobID:       req.QueryParameter("job_id"),
		CandidateID: req.QueryParameter("candidate_id"),
	}

	if topNStr := req.QueryParameter("top_n"); topNStr != "" {
		topN, err := strconv.Atoi(topNStr)
		if err != nil || topN < 0 {
			h.logger.Warn().Str("top_n", topNStr).Msg("Invalid top_n parameter")
			middleware.HandleError(resp, errors.New("top_n must be a non-negative integer"), http.StatusBadRequest)
			return
		}
		matchRequest.TopN = &topN
	}

	logEvent := h.logger.Info().
		Str("job_id", matchRequest.JobID).
		Str("candidate_id", matchRequest.CandidateID)
	if matchRequest.TopN != nil {
		logEvent = logEvent.Int("top_n", *matchRequest.TopN)
	}
	logEvent.Msg("Start matching")

	ctx := req.Request.Context()

	result, err := h.ranker.Match(ctx, matchRequest)
	if err != nil {
		switch {
		case errors.Is(err, ranker.ErrMissingIdentifier):
			middleware.HandleError(resp, err, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			middleware.HandleError(resp, err, http.StatusNotFound)
		default:
			h.logger.Error().Err(err).Msg("Matching failed")
			middleware.HandleError(resp, err, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info().
		Str("mode", string(result.Mode)).
		Int("total_matches", result.TotalMatches).
		Int("returned", len(result.Matches)).
		Msg("Matching complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
