// Package dashboard serves the read-side aggregation behind the stats
// endpoint. Everything is recomputed per request; at this data scale the
// scans are cheap and caching is not worth its staleness.
package dashboard

// StageCount pairs a pipeline stage with the number of candidates currently
// in it.
type StageCount struct {
	StageID   int64  `json:"stageId"`
	StageName string `json:"stageName"`
	Count     int64  `json:"count"`
}

type CandidateStats struct {
	Total    int64            `json:"total"`
	ByStage  []StageCount     `json:"byStage"`
	ByStatus map[string]int64 `json:"byStatus"`
}

type RequirementStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Urgent   int64 `json:"urgent"`
}

type InterviewStats struct {
	Total    int64 `json:"total"`
	Today    int64 `json:"today"`
	Upcoming int64 `json:"upcoming"`
}

type Stats struct {
	Candidates   CandidateStats   `json:"candidates"`
	Requirements RequirementStats `json:"requirements"`
	Interviews   InterviewStats   `json:"interviews"`
}

// Repository defines the aggregate queries behind the stats endpoint.
type Repository interface {
	CandidateStats() (*CandidateStats, error)
	RequirementStats() (*RequirementStats, error)
	InterviewStats() (*InterviewStats, error)
}
