package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job categories drive both category-alignment scoring and roadmap
// template selection.
const (
	CategoryDegreeBased       = "Degree-Based Career"
	CategorySkillBased        = "Skill-Based Career"
	CategoryCommunicationArts = "Communication & Arts"
	CategoryRural             = "Rural"
	CategoryUrban             = "Urban"
)

// ValidCategories returns all valid job categories
func ValidCategories() []string {
	return []string{
		CategoryDegreeBased,
		CategorySkillBased,
		CategoryCommunicationArts,
		CategoryRural,
		CategoryUrban,
	}
}

// ValidJobTypes returns all valid employment types
func ValidJobTypes() []string {
	return []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}
}

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type RuralDetails struct {
	Village       string `json:"village,omitempty"`
	Block         string `json:"block,omitempty"`
	Panchayat     string `json:"panchayat,omitempty"`
	Accessibility string `json:"accessibility,omitempty"`
}

type Job struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Company      string        `json:"company"`
	Location     string        `json:"location"`
	District     string        `json:"district,omitempty"`
	State        string        `json:"state,omitempty"`
	Type         string        `json:"type"`
	Salary       Salary        `json:"salary"`
	SalaryRange  string        `json:"salaryRange,omitempty"`
	Category     string        `json:"category"`
	Tags         []string      `json:"tags"`
	Description  string        `json:"description,omitempty"`
	Requirements []string      `json:"requirements,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	IsRural      bool          `json:"isRural"`
	RuralDetails *RuralDetails `json:"ruralDetails,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// DisplaySalary returns the human readable salary band, falling back to
// the structured salary when no preformatted range exists.
func (j *Job) DisplaySalary() string {
	if j.SalaryRange != "" {
		return j.SalaryRange
	}
	return fmt.Sprintf("₹%gL - ₹%gL", j.Salary.Min, j.Salary.Max)
}

// ScoredJob wraps a Job with the per-request scoring result. Jobs are
// never mutated in place during scoring; aliasing a cached Job across
// concurrent requests would corrupt the ranking otherwise.
type ScoredJob struct {
	Job
	MatchScore           int  `json:"matchScore"`
	IsChatbotRecommended bool `json:"isChatbotRecommended"`
	ChatbotMatchScore    *int `json:"chatbotMatchScore,omitempty"`
}

// JobMatch is the caller-visible shape: the job plus its normalized
// 80-95 match percentage.
type JobMatch struct {
	Job
	Match                int  `json:"match,omitempty"`
	IsChatbotRecommended bool `json:"isChatbotRecommended"`
}

// JobFilter narrows the public job listing.
type JobFilter struct {
	Category string
	Location string
	IsRural  *bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	CreateMany(ctx context.Context, jobs []Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchAll(ctx context.Context) ([]Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
}

type JobUsecase interface {
	GetRecommendations(ctx context.Context, email string) ([]JobMatch, error)
	GetJobDetails(ctx context.Context, id int64, email string) (*JobMatch, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	CreateJob(ctx context.Context, job *Job) error
}
