// Package roadmap derives a default career roadmap from a job posting
// when no curated roadmap exists for its title. Step titles, subtitles
// and icons are fixed templates; the content is data, not logic.
package roadmap

import (
	"strings"

	"go-career-backend/internal/domain"
	"go-career-backend/internal/matching"
)

var defaultCourse = domain.Course{
	Title:    "Career Fundamentals",
	Desc:     "Getting Started",
	Mentor:   "Career Coach",
	Role:     "Mentor",
	Duration: "4 weeks",
	Level:    "Beginner",
}

// template is one generation rule: matched by job category and, for rural
// jobs, by tag predicate.
type template struct {
	tagKeywords []string // any-substring match against job tags; empty = always
	steps       []domain.RoadmapStep
	skills      []domain.SkillEntry // fixed skills; nil = derive from job.skills
	course      *domain.Course
	// progress ramp for job-derived skills: base + slope*index
	progressBase, progressSlope int
	skillDesc, skillIcon        string
	skillColor, skillBg         string
	levelByIndex                bool // Advanced/Intermediate/Essential by position
}

func step(title, subtitle, icon string, order int) domain.RoadmapStep {
	return domain.RoadmapStep{Title: title, Subtitle: subtitle, Status: domain.StepPending, Icon: icon, Order: order}
}

var ruralTemplates = []template{
	{
		tagKeywords: []string{"Teaching", "Education"},
		steps: []domain.RoadmapStep{
			step("Complete 12th", "Any Stream", "🎓", 1),
			step("Get D.Ed/B.Ed", "Teaching Certificate", "📜", 2),
			step("Apply for Government Jobs", "Teacher Recruitment", "📝", 3),
			step("Start Teaching", "Primary/Secondary School", "👨‍🏫", 4),
		},
		skills: []domain.SkillEntry{
			{Name: "Teaching", Level: domain.LevelEssential, Desc: "Classroom Management", Icon: "👨‍🏫", Color: "text-blue-600", Bg: "bg-blue-50", Progress: 40},
			{Name: "Communication", Level: domain.LevelEssential, Desc: "Student Interaction", Icon: "💬", Color: "text-green-600", Bg: "bg-green-50", Progress: 50},
			{Name: "Subject Knowledge", Level: domain.LevelEssential, Desc: "Core Subjects", Icon: "📚", Color: "text-purple-600", Bg: "bg-purple-50", Progress: 45},
		},
		course: &domain.Course{
			Title:    "Teaching Fundamentals",
			Desc:     "Learn Classroom Management",
			Mentor:   "Education Expert",
			Role:     "Senior Teacher",
			Duration: "6 weeks",
			Level:    "Beginner",
		},
	},
	{
		tagKeywords: []string{"Healthcare", "Health"},
		steps: []domain.RoadmapStep{
			step("Complete 10th", "Basic Education", "🎓", 1),
			step("Get ANM/ASHA Training", "Health Worker Certificate", "🏥", 2),
			step("Apply for Health Centers", "Primary Health Center", "📋", 3),
			step("Start Health Services", "Community Health", "💊", 4),
		},
		skills: []domain.SkillEntry{
			{Name: "Basic Medical Knowledge", Level: domain.LevelEssential, Desc: "First Aid & Health", Icon: "💊", Color: "text-red-600", Bg: "bg-red-50", Progress: 35},
			{Name: "Communication", Level: domain.LevelEssential, Desc: "Patient Care", Icon: "💬", Color: "text-blue-600", Bg: "bg-blue-50", Progress: 50},
			{Name: "Record Keeping", Level: domain.LevelEssential, Desc: "Health Records", Icon: "📝", Color: "text-green-600", Bg: "bg-green-50", Progress: 40},
		},
	},
	{
		tagKeywords: []string{"Banking", "Bank"},
		steps: []domain.RoadmapStep{
			step("Complete 12th", "Any Stream", "🎓", 1),
			step("Learn Banking Basics", "Financial Literacy", "💰", 2),
			step("Apply for Bank Exams", "RRB/Clerk Exams", "📝", 3),
			step("Start Banking Career", "Rural Bank Clerk", "🏦", 4),
		},
		skills: []domain.SkillEntry{
			{Name: "Numerical Ability", Level: domain.LevelEssential, Desc: "Math & Calculations", Icon: "🔢", Color: "text-blue-600", Bg: "bg-blue-50", Progress: 45},
			{Name: "Computer Skills", Level: domain.LevelEssential, Desc: "Banking Software", Icon: "💻", Color: "text-green-600", Bg: "bg-green-50", Progress: 40},
			{Name: "Customer Service", Level: domain.LevelEssential, Desc: "Client Interaction", Icon: "👥", Color: "text-purple-600", Bg: "bg-purple-50", Progress: 50},
		},
	},
	{
		tagKeywords: []string{"Agriculture", "Extension"},
		steps: []domain.RoadmapStep{
			step("Complete 12th", "Science/Agriculture", "🎓", 1),
			step("Get Agriculture Diploma", "Agricultural Extension", "🌾", 2),
			step("Apply for Government Jobs", "Agriculture Department", "📋", 3),
			step("Start Field Work", "Farmer Support", "🚜", 4),
		},
		skills: []domain.SkillEntry{
			{Name: "Agricultural Knowledge", Level: domain.LevelEssential, Desc: "Crop & Farming", Icon: "🌾", Color: "text-green-600", Bg: "bg-green-50", Progress: 50},
			{Name: "Field Work", Level: domain.LevelEssential, Desc: "On-Ground Experience", Icon: "🚜", Color: "text-orange-600", Bg: "bg-orange-50", Progress: 40},
			{Name: "Communication", Level: domain.LevelEssential, Desc: "Farmer Interaction", Icon: "💬", Color: "text-blue-600", Bg: "bg-blue-50", Progress: 45},
		},
	},
	{
		tagKeywords: []string{"Technical", "Electrical", "Mechanical"},
		steps: []domain.RoadmapStep{
			step("Complete 10th", "Basic Education", "🎓", 1),
			step("Get ITI Certificate", "Technical Training", "🔧", 2),
			step("Gain Practical Experience", "Apprenticeship", "⚙️", 3),
			step("Start Technical Career", "Electrician/Mechanic", "🛠️", 4),
		},
		progressBase: 40, progressSlope: 15,
		skillDesc: "Technical Skill", skillIcon: "🔧",
		skillColor: "text-blue-600", skillBg: "bg-blue-50",
	},
}

// genericRural is the fallback for rural jobs matching no tag predicate.
// The final step's subtitle is the job title, filled in at generation.
var genericRural = template{
	steps: []domain.RoadmapStep{
		step("Complete Basic Education", "10th/12th Pass", "🎓", 1),
		step("Get Required Training", "Skill Development", "📚", 2),
		step("Apply for Positions", "Job Applications", "📝", 3),
		step("Start Career", "", "🚀", 4),
	},
	progressBase: 30, progressSlope: 20,
	skillDesc: "Required Skill", skillIcon: "📌",
	skillColor: "text-blue-600", skillBg: "bg-blue-50",
}

var degreeTemplate = template{
	steps: []domain.RoadmapStep{
		step("Complete 12th (Science)", "PCM/PCB Subjects", "🎓", 1),
		step("Get Bachelor Degree", "B.Tech/B.Sc/B.Com", "📚", 2),
		step("Build Skills", "Technical/Professional", "⚡", 3),
		step("Get Internship", "Practical Experience", "💼", 4),
		step("Start Full-Time Career", "", "🏆", 5),
	},
	progressBase: 50, progressSlope: 15,
	skillDesc: "Core Skill", skillIcon: "⚙️",
	skillColor: "text-blue-600", skillBg: "bg-blue-50",
	levelByIndex: true,
}

var skillTemplate = template{
	steps: []domain.RoadmapStep{
		step("Learn Fundamentals", "Basic Skills", "📖", 1),
		step("Practice & Build Projects", "Hands-on Experience", "🛠️", 2),
		step("Get Certifications", "Skill Validation", "📜", 3),
		step("Start Career", "", "🚀", 4),
	},
	progressBase: 40, progressSlope: 20,
	skillDesc: "Practical Skill", skillIcon: "🎯",
	skillColor: "text-green-600", skillBg: "bg-green-50",
}

var defaultTemplate = template{
	steps: []domain.RoadmapStep{
		step("Get Started", "Begin your journey", "🚀", 1),
		step("Learn Skills", "Build Expertise", "📚", 2),
		step("Gain Experience", "Practical Work", "💼", 3),
		step("Achieve Career", "", "🏆", 4),
	},
	progressBase: 30, progressSlope: 20,
	skillDesc: "Required Skill", skillIcon: "📌",
	skillColor: "text-blue-600", skillBg: "bg-blue-50",
}

func selectTemplate(job *domain.Job) template {
	switch job.Category {
	case domain.CategoryRural:
		for _, t := range ruralTemplates {
			if matchesAnyTag(job.Tags, t.tagKeywords) {
				return t
			}
		}
		return genericRural
	case domain.CategoryDegreeBased:
		return degreeTemplate
	case domain.CategorySkillBased:
		return skillTemplate
	default:
		return defaultTemplate
	}
}

func matchesAnyTag(tags, keywords []string) bool {
	for _, tag := range tags {
		for _, kw := range keywords {
			if strings.Contains(tag, kw) {
				return true
			}
		}
	}
	return false
}

// Generate builds the default roadmap for a job. matchScore seeds the
// stored match field; pass 0 when no score was computed and the default
// display value is used instead.
func Generate(job *domain.Job, matchScore int) *domain.Roadmap {
	if matchScore <= 0 {
		matchScore = matching.DefaultMatch
	}

	tmpl := selectTemplate(job)

	steps := make([]domain.RoadmapStep, len(tmpl.steps))
	copy(steps, tmpl.steps)
	// Templates leave the final step's subtitle blank when it should
	// carry the job title.
	if last := len(steps) - 1; last >= 0 && steps[last].Subtitle == "" {
		steps[last].Subtitle = job.Title
	}

	skills := tmpl.skills
	if skills == nil {
		skills = jobSkills(job, tmpl)
	}

	course := defaultCourse
	if tmpl.course != nil {
		course = *tmpl.course
	}

	description := job.Description
	if description == "" {
		description = "Your personalized roadmap to success."
	}

	tags := make([]domain.RoadmapTag, 0, len(job.Tags))
	for _, t := range job.Tags {
		tags = append(tags, domain.RoadmapTag{Label: t, Icon: "📌"})
	}

	return &domain.Roadmap{
		JobTitle:    job.Title,
		JobID:       job.ID,
		Description: description,
		Tags:        tags,
		Match:       matchScore,
		Stats: []domain.RoadmapStat{
			{Label: "AVG SALARY", Value: job.DisplaySalary(), Icon: "💵"},
			{Label: "LOCATION", Value: job.Location, Icon: "📍"},
			{Label: "TYPE", Value: job.Type, Icon: "⏱️"},
			{Label: "CATEGORY", Value: job.Category, Icon: "💼"},
		},
		Steps:  steps,
		Skills: skills,
		Course: course,
	}
}

// jobSkills derives up to three skill entries from the job's own skill
// list, with the template's progress ramp.
func jobSkills(job *domain.Job, tmpl template) []domain.SkillEntry {
	names := job.Skills
	if len(names) > 3 {
		names = names[:3]
	}
	skills := make([]domain.SkillEntry, 0, len(names))
	for i, name := range names {
		level := domain.LevelEssential
		if tmpl.levelByIndex {
			switch i {
			case 0:
				level = domain.LevelAdvanced
			case 1:
				level = domain.LevelIntermediate
			}
		}
		skills = append(skills, domain.SkillEntry{
			Name:     name,
			Level:    level,
			Desc:     tmpl.skillDesc,
			Icon:     tmpl.skillIcon,
			Color:    tmpl.skillColor,
			Bg:       tmpl.skillBg,
			Progress: tmpl.progressBase + i*tmpl.progressSlope,
		})
	}
	return skills
}
