package roadmap_test

import (
	"testing"

	"go-career-backend/internal/domain"
	"go-career-backend/internal/matching"
	"go-career-backend/internal/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruralJob(title string, tags ...string) *domain.Job {
	return &domain.Job{
		ID:       1,
		Title:    title,
		Location: "Mandya",
		Type:     "Full-time",
		Category: domain.CategoryRural,
		Tags:     tags,
		Skills:   []string{"First Skill", "Second Skill", "Third Skill"},
	}
}

func TestRuralTeachingTemplate(t *testing.T) {
	rm := roadmap.Generate(ruralJob("Primary School Teacher", "Teaching", "Government"), 90)

	require.Len(t, rm.Steps, 4)
	assert.Equal(t, "Complete 12th", rm.Steps[0].Title)
	assert.Equal(t, "Get D.Ed/B.Ed", rm.Steps[1].Title)
	assert.Equal(t, "Start Teaching", rm.Steps[3].Title)

	// Teaching template carries fixed skills and its own course
	require.Len(t, rm.Skills, 3)
	assert.Equal(t, "Teaching", rm.Skills[0].Name)
	assert.Equal(t, "Teaching Fundamentals", rm.Course.Title)
	assert.Equal(t, 90, rm.Match)
}

func TestRuralHealthcareTemplate(t *testing.T) {
	rm := roadmap.Generate(ruralJob("ASHA Worker", "Healthcare"), 0)

	assert.Equal(t, "Get ANM/ASHA Training", rm.Steps[1].Title)
	assert.Equal(t, "Basic Medical Knowledge", rm.Skills[0].Name)
	// No fixed course on this template
	assert.Equal(t, "Career Fundamentals", rm.Course.Title)
}

func TestGenericRuralTemplateFillsJobTitle(t *testing.T) {
	j := ruralJob("Dairy Supervisor", "Dairy")
	rm := roadmap.Generate(j, 0)

	require.Len(t, rm.Steps, 4)
	assert.Equal(t, "Start Career", rm.Steps[3].Title)
	assert.Equal(t, "Dairy Supervisor", rm.Steps[3].Subtitle)

	// Skills derive from the job with the 30/20 ramp
	require.Len(t, rm.Skills, 3)
	assert.Equal(t, "First Skill", rm.Skills[0].Name)
	assert.Equal(t, 30, rm.Skills[0].Progress)
	assert.Equal(t, 50, rm.Skills[1].Progress)
	assert.Equal(t, 70, rm.Skills[2].Progress)
}

func TestDegreeTemplate(t *testing.T) {
	j := &domain.Job{
		ID:       2,
		Title:    "Software Engineer",
		Location: "Bangalore",
		Type:     "Full-time",
		Category: domain.CategoryDegreeBased,
		Skills:   []string{"Java", "Python", "System Design", "Extra"},
	}
	rm := roadmap.Generate(j, 95)

	require.Len(t, rm.Steps, 5)
	assert.Equal(t, "Start Full-Time Career", rm.Steps[4].Title)
	assert.Equal(t, "Software Engineer", rm.Steps[4].Subtitle)

	// Only the first three skills, with descending levels
	require.Len(t, rm.Skills, 3)
	assert.Equal(t, domain.LevelAdvanced, rm.Skills[0].Level)
	assert.Equal(t, domain.LevelIntermediate, rm.Skills[1].Level)
	assert.Equal(t, domain.LevelEssential, rm.Skills[2].Level)
	assert.Equal(t, 50, rm.Skills[0].Progress)
	assert.Equal(t, 80, rm.Skills[2].Progress)
}

func TestSkillBasedTemplate(t *testing.T) {
	j := &domain.Job{
		Title:    "Graphic Designer",
		Category: domain.CategorySkillBased,
		Skills:   []string{"Photoshop"},
	}
	rm := roadmap.Generate(j, 0)

	require.Len(t, rm.Steps, 4)
	assert.Equal(t, "Learn Fundamentals", rm.Steps[0].Title)
	assert.Equal(t, "Graphic Designer", rm.Steps[3].Subtitle)
	require.Len(t, rm.Skills, 1)
	assert.Equal(t, domain.LevelEssential, rm.Skills[0].Level)
	assert.Equal(t, 40, rm.Skills[0].Progress)
}

func TestDefaultTemplateForUnknownCategory(t *testing.T) {
	j := &domain.Job{Title: "Event Host", Category: domain.CategoryUrban}
	rm := roadmap.Generate(j, 0)

	require.Len(t, rm.Steps, 4)
	assert.Equal(t, "Get Started", rm.Steps[0].Title)
	assert.Equal(t, "Event Host", rm.Steps[3].Subtitle)
	assert.Empty(t, rm.Skills)
}

func TestDefaultMatchWhenUnscored(t *testing.T) {
	rm := roadmap.Generate(&domain.Job{Title: "Event Host"}, 0)
	assert.Equal(t, matching.DefaultMatch, rm.Match)
}

func TestStatsAndTags(t *testing.T) {
	j := &domain.Job{
		Title:       "Rural Bank Clerk",
		Location:    "Hassan",
		Type:        "Full-time",
		Category:    domain.CategoryRural,
		SalaryRange: "₹2.5L - ₹4L",
		Tags:        []string{"Banking", "Government"},
	}
	rm := roadmap.Generate(j, 0)

	require.Len(t, rm.Stats, 4)
	assert.Equal(t, "AVG SALARY", rm.Stats[0].Label)
	assert.Equal(t, "₹2.5L - ₹4L", rm.Stats[0].Value)
	assert.Equal(t, "Hassan", rm.Stats[1].Value)
	assert.Equal(t, "Full-time", rm.Stats[2].Value)
	assert.Equal(t, domain.CategoryRural, rm.Stats[3].Value)

	require.Len(t, rm.Tags, 2)
	assert.Equal(t, "Banking", rm.Tags[0].Label)

	assert.Equal(t, "Your personalized roadmap to success.", rm.Description)
}
