package domain

import (
	"context"
	"time"
)

// Roadmap step statuses
const (
	StepPending    = "Pending"
	StepInProgress = "In Progress"
	StepCompleted  = "Completed"
)

// Skill levels
const (
	LevelEssential    = "Essential"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

type StepResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // 'course', 'article', 'video', ...
}

type RoadmapStep struct {
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Status      string         `json:"status"`
	Icon        string         `json:"icon,omitempty"`
	Order       int            `json:"order"`
	Description string         `json:"description,omitempty"`
	Duration    string         `json:"duration,omitempty"`
	Resources   []StepResource `json:"resources,omitempty"`
}

type SkillEntry struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Desc     string `json:"desc,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Bg       string `json:"bg,omitempty"`
	Progress int    `json:"progress"` // 0-100
}

type RoadmapTag struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type RoadmapStat struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Icon      string `json:"icon,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

type Course struct {
	Title    string `json:"title"`
	Desc     string `json:"desc,omitempty"`
	Mentor   string `json:"mentor,omitempty"`
	Role     string `json:"role,omitempty"`
	Duration string `json:"duration,omitempty"`
	Level    string `json:"level,omitempty"`
}

// Roadmap is a milestone sequence + skills + course recommendation for a
// target job, unique per job title. Match is overwritten transiently with
// the caller's freshly computed score on every read.
type Roadmap struct {
	ID          int64         `json:"id"`
	JobTitle    string        `json:"jobTitle"`
	JobID       int64         `json:"jobId,omitempty"`
	Description string        `json:"description,omitempty"`
	Tags        []RoadmapTag  `json:"tags"`
	Match       int           `json:"match"`
	Stats       []RoadmapStat `json:"stats"`
	Steps       []RoadmapStep `json:"roadmap"`
	Skills      []SkillEntry  `json:"skills"`
	Course      Course        `json:"course"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type RoadmapRepository interface {
	GetByJobTitle(ctx context.Context, jobTitle string) (*Roadmap, error)
	// FindByTitleLike matches the title case-insensitively as a substring.
	FindByTitleLike(ctx context.Context, jobTitle string) (*Roadmap, error)
	// CreateIfAbsent inserts unless a roadmap with the same job title
	// already exists, and returns the stored document either way. This is
	// the guard against duplicate creation under concurrent first access.
	CreateIfAbsent(ctx context.Context, roadmap *Roadmap) (*Roadmap, error)
	Upsert(ctx context.Context, roadmap *Roadmap) error
}

type RoadmapUsecase interface {
	GetForJob(ctx context.Context, jobID int64, email string) (*Roadmap, error)
	GetByTitle(ctx context.Context, jobTitle string) (*Roadmap, error)
	Save(ctx context.Context, roadmap *Roadmap) error
}
