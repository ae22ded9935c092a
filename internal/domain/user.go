package domain

import (
	"context"
	"time"
)

type Location struct {
	Locality string `json:"locality,omitempty"`
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`
}

type AcademicDetails struct {
	Board10      string            `json:"board10,omitempty"`
	Year10       string            `json:"year10,omitempty"`
	Percentage10 string            `json:"percentage10,omitempty"`
	Is12Completed bool             `json:"is12Completed"`
	Stream12     string            `json:"stream12,omitempty"`
	Percentage12 string            `json:"percentage12,omitempty"`
	Subjects12   map[string]string `json:"subjects12,omitempty"`
}

type GraduationDetails struct {
	IsCompleted bool   `json:"isCompleted"`
	Field       string `json:"field,omitempty"`
	College     string `json:"college,omitempty"`
	Year        string `json:"year,omitempty"`
	CGPA        string `json:"cgpa,omitempty"`
}

type Interests struct {
	SelectedInterests []string       `json:"selectedInterests,omitempty"`
	SubjectLikes      map[string]int `json:"subjectLikes,omitempty"`
	Strengths         []string       `json:"strengths,omitempty"`
	WorkStyle         string         `json:"workStyle,omitempty"`
	OtherInterests    string         `json:"otherInterests,omitempty"`
}

// CareerSuggestion is one entry of the chatbot's ranked top-career list.
// Risk: 0=Low, 1=Medium, 2=High.
type CareerSuggestion struct {
	Name   string `json:"name"`
	Salary string `json:"salary,omitempty"`
	Risk   int    `json:"risk"`
}

type Conversation struct {
	Question   string    `json:"question,omitempty"`
	QuestionID string    `json:"questionId,omitempty"`
	Answer     string    `json:"answer,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
}

type ChatbotData struct {
	CareerPath    string             `json:"careerPath,omitempty"`
	Summary       string             `json:"summary,omitempty"`
	SessionID     string             `json:"sessionId,omitempty"`
	Insights      []string           `json:"insights,omitempty"`
	TopCareers    []CareerSuggestion `json:"topCareers,omitempty"`
	Timestamp     time.Time          `json:"timestamp,omitempty"`
	Conversations []Conversation     `json:"conversations,omitempty"`
}

// UserProfile is one user's onboarding + chatbot state, keyed by email.
// The scoring core reads it but never writes it.
type UserProfile struct {
	ID                int64             `json:"id"`
	Email             string            `json:"email"`
	ClerkID           string            `json:"clerkId,omitempty"`
	Location          Location          `json:"location"`
	AcademicDetails   AcademicDetails   `json:"academicDetails"`
	GraduationDetails GraduationDetails `json:"graduationDetails"`
	Interests         Interests         `json:"interests"`
	ChatbotData       ChatbotData       `json:"chatbotData"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// InterestStat is one slice of the dashboard interest breakdown.
type InterestStat struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type SkillGap struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
}

type Dashboard struct {
	User          *UserProfile   `json:"user"`
	InterestStats []InterestStat `json:"interestStats"`
	TopMatches    []JobMatch     `json:"topMatches"`
	SkillGaps     []SkillGap     `json:"skillGaps"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	Create(ctx context.Context, profile *UserProfile) error
	Update(ctx context.Context, profile *UserProfile) error
}

type UserUsecase interface {
	SaveOnboarding(ctx context.Context, input *UserProfile) (*UserProfile, error)
	GetProfile(ctx context.Context, email string) (*UserProfile, error)
	GetDashboard(ctx context.Context, email string) (*Dashboard, error)
}
