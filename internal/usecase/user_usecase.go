package usecase

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"

	"go-career-backend/internal/domain"
	"go-career-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, validate: validate}
}

// SaveOnboarding creates the profile on first submit and merges on every
// later one. Each onboarding section replaces its stored counterpart
// wholesale when present in the input; chatbot data merges field-wise and
// conversation history is append-only.
func (u *userUsecase) SaveOnboarding(ctx context.Context, input *domain.UserProfile) (*domain.UserProfile, error) {
	if err := u.validate.Var(input.Email, "required,email"); err != nil {
		return nil, apperror.BadRequest("email is required")
	}

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if err := u.userRepo.Create(ctx, input); err != nil {
			return nil, err
		}
		return input, nil
	}

	mergeProfile(existing, input)
	if err := u.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func mergeProfile(dst, src *domain.UserProfile) {
	if src.ClerkID != "" {
		dst.ClerkID = src.ClerkID
	}
	if src.Location != (domain.Location{}) {
		dst.Location = src.Location
	}
	if !isZeroAcademic(&src.AcademicDetails) {
		dst.AcademicDetails = src.AcademicDetails
	}
	if src.GraduationDetails != (domain.GraduationDetails{}) {
		dst.GraduationDetails = src.GraduationDetails
	}
	if !isZeroInterests(&src.Interests) {
		dst.Interests = src.Interests
	}
	mergeChatbotData(&dst.ChatbotData, &src.ChatbotData)
}

func isZeroAcademic(a *domain.AcademicDetails) bool {
	return a.Board10 == "" && a.Year10 == "" && a.Percentage10 == "" &&
		!a.Is12Completed && a.Stream12 == "" && a.Percentage12 == "" && len(a.Subjects12) == 0
}

func isZeroInterests(i *domain.Interests) bool {
	return len(i.SelectedInterests) == 0 && len(i.SubjectLikes) == 0 &&
		len(i.Strengths) == 0 && i.WorkStyle == "" && i.OtherInterests == ""
}

func mergeChatbotData(dst, src *domain.ChatbotData) {
	if src.CareerPath != "" {
		dst.CareerPath = src.CareerPath
	}
	if src.Summary != "" {
		dst.Summary = src.Summary
	}
	if src.SessionID != "" {
		dst.SessionID = src.SessionID
	}
	if len(src.Insights) > 0 {
		dst.Insights = src.Insights
	}
	if len(src.TopCareers) > 0 {
		dst.TopCareers = src.TopCareers
	}
	if !src.Timestamp.IsZero() {
		dst.Timestamp = src.Timestamp
	}
	if len(src.Conversations) > 0 {
		dst.Conversations = append(dst.Conversations, src.Conversations...)
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, email string) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// GetDashboard aggregates the profile into the dashboard shape. Top
// matches stay empty here; the frontend fills them from the
// recommendations endpoint.
func (u *userUsecase) GetDashboard(ctx context.Context, email string) (*domain.Dashboard, error) {
	user, err := u.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{
		User:          user,
		InterestStats: interestStats(user),
		TopMatches:    []domain.JobMatch{},
		SkillGaps:     skillGaps(user),
	}, nil
}

// Interest buckets for the dashboard breakdown.
var interestBuckets = map[string][]string{
	"Technology": {"Coding", "Robotics", "Web Dev", "Data Science", "Gaming", "Research", "Lab Work", "Analysis", "Mathematics", "Physics", "Statistics", "Cyber Security", "AI/ML"},
	"Creative":   {"Art", "Design", "Music", "Writing", "Reading", "Photography", "Videography", "Animation", "Film Making", "Cooking"},
	"Business":   {"Finance", "Accounting", "Business", "Management", "Marketing", "Entrepreneurship", "Economics", "Stock Market", "Investing"},
	"Social":     {"History", "Politics", "Social Work", "Travel", "Public Speaking", "Teaching", "Volunteering", "HR", "Law", "Gardening", "Fitness"},
}

var bucketColors = map[string]string{
	"Technology": "#00e572",
	"Creative":   "#3b82f6",
	"Business":   "#f59e0b",
	"Social":     "#a855f7",
}

var (
	techDegreeRe     = regexp.MustCompile(`B.Tech|B.E|B.Sc|Diploma|Computer`)
	businessDegreeRe = regexp.MustCompile(`B.Com|BBA|Management`)
	artsDegreeRe     = regexp.MustCompile(`B.A|Arts`)
)

// interestStats scores the four buckets from stream, degree field and
// selected interests, then returns the top three as percentages of the
// total. An empty profile collapses to a single General slice.
func interestStats(user *domain.UserProfile) []domain.InterestStat {
	scores := map[string]int{"Technology": 0, "Creative": 0, "Business": 0, "Social": 0}

	switch user.AcademicDetails.Stream12 {
	case "Science":
		scores["Technology"] += 30
	case "Commerce":
		scores["Business"] += 30
	case "Arts":
		scores["Creative"] += 15
		scores["Social"] += 15
	}

	if degree := user.GraduationDetails.Field; degree != "" {
		if techDegreeRe.MatchString(degree) {
			scores["Technology"] += 20
		}
		if businessDegreeRe.MatchString(degree) {
			scores["Business"] += 20
		}
		if artsDegreeRe.MatchString(degree) {
			scores["Creative"] += 10
			scores["Social"] += 10
		}
	}

	for _, interest := range user.Interests.SelectedInterests {
		for bucket, members := range interestBuckets {
			for _, m := range members {
				if m == interest {
					scores[bucket] += 15
					break
				}
			}
		}
	}

	total := 0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return []domain.InterestStat{{Label: "General", Percentage: 100, Color: "#00e572"}}
	}

	stats := make([]domain.InterestStat, 0, len(scores))
	for _, label := range []string{"Technology", "Creative", "Business", "Social"} {
		if scores[label] == 0 {
			continue
		}
		pct := float64(scores[label]) / float64(total) * 100
		stats = append(stats, domain.InterestStat{
			Label:      label,
			Percentage: int(math.Round(pct)),
			Color:      bucketColors[label],
		})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Percentage > stats[j].Percentage })
	if len(stats) > 3 {
		stats = stats[:3]
	}
	return stats
}

// skillGaps lists subjects the user rated below 7 as gaps; with no weak
// subjects it falls back to three generic ones.
func skillGaps(user *domain.UserProfile) []domain.SkillGap {
	weak := make([]string, 0, len(user.Interests.SubjectLikes))
	for subject, score := range user.Interests.SubjectLikes {
		if score < 7 {
			weak = append(weak, subject)
		}
	}
	sort.Strings(weak)

	if len(weak) == 0 {
		return []domain.SkillGap{
			{Name: "Advanced Communication", Current: 60, Target: 90},
			{Name: "Technical Proficiency", Current: 40, Target: 80},
			{Name: "Project Management", Current: 30, Target: 75},
		}
	}

	gaps := make([]domain.SkillGap, 0, len(weak))
	for _, name := range weak {
		gaps = append(gaps, domain.SkillGap{Name: name, Current: 60, Target: 90})
	}
	return gaps
}
