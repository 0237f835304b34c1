package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/remote-staffing/match-engine/internal/api"
	"github.com/remote-staffing/match-engine/internal/api/middleware"
	"github.com/remote-staffing/match-engine/internal/config"
	"github.com/remote-staffing/match-engine/internal/models"
	"github.com/remote-staffing/match-engine/internal/ranker"
	"github.com/remote-staffing/match-engine/internal/recorder"
	"github.com/remote-staffing/match-engine/internal/scoring"
	"github.com/remote-staffing/match-engine/internal/store/memory"
)

// setupTestAPI builds the full API against in-memory stores: real scorer,
// real recorder, real ranker, no external services.
func setupTestAPI(t *testing.T) (*restful.Container, *memory.Store) {
	t.Helper()

	mem := memory.New()
	mem.AddJob(models.Job{
		JobID:       "job-1",
		Title:       "Backend Engineer",
		Description: "aws docker api microservices",
		Company:     "Acme",
		ApplyLink:   "https://acme.example/apply",
	})
	mem.AddCandidate(models.Candidate{
		CandidateID: "cand-1",
		Name:        "Riley",
		Email:       "riley@example.com",
		ResumeText:  "backend engineer aws docker api microservices",
	})
	mem.AddCandidate(models.Candidate{
		CandidateID: "cand-2",
		Name:        "Quinn",
		ResumeText:  "gardening and landscape design",
	})

	logger := zerolog.Nop()
	vocab := &config.Vocabulary{
		Skills: []string{"aws", "docker", "api", "microservices", "python"},
	}
	scorer := scoring.NewScorer(vocab, scoring.DefaultWeights(), 0.15, 0.25)
	rec := recorder.New(mem, mem, mem, mem, &logger)
	rnk := ranker.New(mem, mem, scorer, rec, 10, 2, &logger)

	handler := api.NewHandler(rnk, &logger)
	container := restful.NewContainer()
	api.RegisterRoutes(container, handler)

	return container, mem
}

func TestAPI_Health(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response.Status)
	}
}

func TestAPI_Match_JobToCandidates(t *testing.T) {
	container, mem := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/match?job_id=job-1", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var response models.MatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Mode != models.ModeJobToCandidates {
		t.Errorf("Expected mode 'job_to_candidates', got '%s'", response.Mode)
	}

	// Only the matching candidate qualifies; the gardener is gated out.
	if response.TotalMatches != 1 {
		t.Fatalf("Expected 1 match, got %d", response.TotalMatches)
	}

	match := response.Matches[0]
	if match.CandidateID != "cand-1" {
		t.Errorf("Expected candidate 'cand-1', got '%s'", match.CandidateID)
	}
	if match.MatchPercent <= 0 || match.MatchPercent > 100 {
		t.Errorf("Expected match_percent in (0,100], got %f", match.MatchPercent)
	}
	if match.Confidence == "" {
		t.Error("Expected confidence to be set")
	}
	if match.Explanation.TopReason == "" {
		t.Error("Expected a top reason")
	}

	// The scored pair must have been recorded across projections.
	if _, ok := mem.Features("job-1#cand-1"); !ok {
		t.Error("Expected feature record for job-1#cand-1")
	}
	if _, ok := mem.Match("job-1#cand-1"); !ok {
		t.Error("Expected match record for job-1#cand-1")
	}
	if len(mem.History()) != 1 {
		t.Errorf("Expected 1 history record, got %d", len(mem.History()))
	}
}

func TestAPI_Match_CandidateToJobs(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/match?candidate_id=cand-1", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var response models.MatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response.Mode != models.ModeCandidateToJobs {
		t.Errorf("Expected mode 'candidate_to_jobs', got '%s'", response.Mode)
	}
	if response.TotalMatches != 1 {
		t.Fatalf("Expected 1 match, got %d", response.TotalMatches)
	}
	if response.Matches[0].JobID != "job-1" {
		t.Errorf("Expected job 'job-1', got '%s'", response.Matches[0].JobID)
	}
	if response.Matches[0].ApplyLink != "https://acme.example/apply" {
		t.Errorf("Expected apply link, got '%s'", response.Matches[0].ApplyLink)
	}
}

func TestAPI_Match_MissingIdentifier(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/match", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var response middleware.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != http.StatusBadRequest {
		t.Errorf("Expected status field 400, got %d", response.Status)
	}
}

func TestAPI_Match_UnknownJob(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/match?job_id=job-missing", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d. Body: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_Match_ExplicitZeroTopN(t *testing.T) {
	container, mem := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/match?job_id=job-1&top_n=0", nil)
	rec := httptest.NewRecorder()

	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var response models.MatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	// Nothing returned, but the qualifying pair is still counted and recorded.
	if response.TotalMatches != 1 {
		t.Errorf("Expected total_matches 1, got %d", response.TotalMatches)
	}
	if len(response.Matches) != 0 {
		t.Errorf("Expected empty matches list, got %d entries", len(response.Matches))
	}
	if _, ok := mem.Match("job-1#cand-1"); !ok {
		t.Error("Expected match record for job-1#cand-1")
	}
}

func TestAPI_Match_InvalidTopN(t *testing.T) {
	container, _ := setupTestAPI(t)

	for _, topN := range []string{"abc", "-3", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/match?job_id=job-1&top_n="+topN, nil)
		rec := httptest.NewRecorder()

		container.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("top_n=%s: expected status 400, got %d", topN, rec.Code)
		}
	}
}
