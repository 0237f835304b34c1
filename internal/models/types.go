package models

import (
	"time"
)

type Mode string

const (
	ModeJobToCandidates Mode = "job_to_candidates"
	ModeCandidateToJobs Mode = "candidate_to_jobs"
)

type Confidence string

const (
	ConfidenceStrong Confidence = "Strong Match"
	ConfidenceGood   Confidence = "Good Match"
	ConfidenceFair   Confidence = "Fair Match"
)

// Job is a posting as stored in the jobs table. Fields that historically
// appeared under different attribute names carry all variants; NormalizeJob
// collapses them.
type Job struct {
	JobID       string `json:"job_id" dynamodbav:"job_id"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	Company     string `json:"company" dynamodbav:"company"`
	Location    string `json:"location" dynamodbav:"location"`
	ApplyLink   string `json:"apply_link,omitempty" dynamodbav:"apply_link"`
	ApplyURL    string `json:"apply_url,omitempty" dynamodbav:"apply_url"`
	RedirectURL string `json:"redirect_url,omitempty" dynamodbav:"redirect_url"`
}

type Candidate struct {
	CandidateID string `json:"candidate_id" dynamodbav:"candidate_id"`
	Name        string `json:"name,omitempty" dynamodbav:"name"`
	FullName    string `json:"full_name,omitempty" dynamodbav:"full_name"`
	FirstName   string `json:"first_name,omitempty" dynamodbav:"first_name"`
	LastName    string `json:"last_name,omitempty" dynamodbav:"last_name"`
	Email       string `json:"email" dynamodbav:"email"`
	ResumeText  string `json:"resume_text" dynamodbav:"resume_text"`
}

// Input message

// MatchRequest selects the matching direction and result cap. TopN is a
// pointer so an explicit 0 (return nothing, still count and record) is
// distinguishable from an absent field (use the configured default).
type MatchRequest struct {
	RequestID   string `json:"request_id"`
	JobID       string `json:"job_id,omitempty"`
	CandidateID string `json:"candidate_id,omitempty"`
	TopN        *int   `json:"top_n,omitempty"`
}

// FeatureVector holds the intermediate scores computed for one
// job-candidate pair that survived gating.
type FeatureVector struct {
	BM25Proxy      float64 `json:"bm25_proxy"`
	SkillOverlap   float64 `json:"skill_overlap"`
	TitleMatch     float64 `json:"title_match"`
	SeniorityMatch float64 `json:"seniority_match"`
	LexicalCore    float64 `json:"lexical_core"`
	FinalScore     float64 `json:"final_score"`
}

// ScoredPair is handed to the recorder for every pair that passed all gates.
type ScoredPair struct {
	RequestID   string
	JobID       string
	CandidateID string
	Features    FeatureVector
	CreatedAt   time.Time
}

type Explanation struct {
	TopReason        string   `json:"top_reason"`
	SecondaryReasons []string `json:"secondary_reasons"`
}

// MatchResult is one entry in the response list. Candidate-facing fields are
// set in job_to_candidates mode, job-facing fields in candidate_to_jobs mode.
type MatchResult struct {
	CandidateID string `json:"candidate_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`

	JobID     string `json:"job_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
	ApplyLink string `json:"apply_link,omitempty"`

	MatchPercent float64     `json:"match_percent"`
	Confidence   Confidence  `json:"confidence"`
	Explanation  Explanation `json:"explanation"`
}

type MatchResponse struct {
	Mode         Mode          `json:"mode"`
	TotalMatches int           `json:"total_matches"`
	Matches      []MatchResult `json:"matches"`
}

// Persistence projections. Score fields are pre-formatted 4-decimal strings
// so every store writes the same exact decimal representation.

type FeatureRecord struct {
	PairKey        string
	JobID          string
	CandidateID    string
	BM25Proxy      string
	SkillOverlap   string
	TitleMatch     string
	SeniorityMatch string
	FinalScore     string
	CreatedAt      time.Time
}

type MatchRecord struct {
	PairKey     string
	JobID       string
	CandidateID string
	MatchScore  string
	CreatedAt   time.Time
}

type LiveRecord struct {
	JobID       string
	CandidateID string
	MatchScore  string
	CreatedAt   time.Time
}

type HistoryRecord struct {
	ID          string
	RequestID   string
	JobID       string
	CandidateID string
	MatchScore  string
	CreatedAt   time.Time
}
