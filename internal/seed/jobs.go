// Package seed holds the static job dataset used to populate an empty
// job collection: the embedded rural jobs file plus a few urban postings
// for variety.
package seed

import (
	_ "embed"
	"encoding/json"

	"go-career-backend/internal/domain"
)

//go:embed data/rural_jobs.json
var ruralJobsJSON []byte

var urbanJobs = []domain.Job{
	{
		Title:        "Software Engineer",
		Company:      "Tech Corp",
		Location:     "Bangalore",
		District:     "Bangalore Urban",
		State:        "Karnataka",
		Type:         "Full-time",
		Salary:       domain.Salary{Min: 12, Max: 18, Currency: "INR"},
		SalaryRange:  "₹12L - ₹18L",
		Category:     domain.CategoryDegreeBased,
		Tags:         []string{"Tech", "Coding", "Software"},
		Description:  "Design and develop software applications.",
		Requirements: []string{"B.Tech in CS/IT", "Programming skills"},
		Skills:       []string{"Java", "Python", "System Design"},
	},
	{
		Title:        "Data Scientist",
		Company:      "Data Analytics Inc",
		Location:     "Hyderabad",
		District:     "Hyderabad",
		State:        "Telangana",
		Type:         "Full-time",
		Salary:       domain.Salary{Min: 15, Max: 25, Currency: "INR"},
		SalaryRange:  "₹15L - ₹25L",
		Category:     domain.CategoryDegreeBased,
		Tags:         []string{"Data", "AI", "Analytics"},
		Description:  "Analyze data and build machine learning models.",
		Requirements: []string{"B.Tech/M.Sc in Data Science", "ML knowledge"},
		Skills:       []string{"Python", "SQL", "Machine Learning"},
	},
}

// Jobs returns the full seed dataset. The embedded file is trusted build
// input; a decode failure is a programming error.
func Jobs() ([]domain.Job, error) {
	var rural []domain.Job
	if err := json.Unmarshal(ruralJobsJSON, &rural); err != nil {
		return nil, err
	}
	return append(rural, urbanJobs...), nil
}
