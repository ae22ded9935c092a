package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"go-career-backend/internal/domain"
	"go-career-backend/internal/matching"
	"go-career-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) CreateMany(ctx context.Context, jobs []domain.Job) error {
	return m.Called(ctx, jobs).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockRoadmapRepo struct {
	mock.Mock
}

func (m *MockRoadmapRepo) GetByJobTitle(ctx context.Context, jobTitle string) (*domain.Roadmap, error) {
	args := m.Called(ctx, jobTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapRepo) FindByTitleLike(ctx context.Context, jobTitle string) (*domain.Roadmap, error) {
	args := m.Called(ctx, jobTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapRepo) CreateIfAbsent(ctx context.Context, roadmap *domain.Roadmap) (*domain.Roadmap, error) {
	args := m.Called(ctx, roadmap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapRepo) Upsert(ctx context.Context, roadmap *domain.Roadmap) error {
	return m.Called(ctx, roadmap).Error(0)
}

// Fixtures

func testUser() *domain.UserProfile {
	return &domain.UserProfile{
		Email:    "ravi@example.com",
		Location: domain.Location{State: "Karnataka"},
		AcademicDetails: domain.AcademicDetails{
			Stream12: "Science",
		},
		Interests: domain.Interests{
			SelectedInterests: []string{"Coding"},
		},
		ChatbotData: domain.ChatbotData{
			CareerPath: "Degree-Based Career Path",
			TopCareers: []domain.CareerSuggestion{{Name: "Software Engineer"}},
		},
	}
}

func testJobs() []domain.Job {
	return []domain.Job{
		{ID: 1, Title: "Software Developer", Company: "Tech Corp", State: "Karnataka", Category: domain.CategoryDegreeBased, Tags: []string{"Tech", "Coding", "Software"}},
		{ID: 2, Title: "Data Analyst", Company: "Data Inc", State: "Karnataka", Category: domain.CategoryDegreeBased, Tags: []string{"Data", "Analytics"}},
		{ID: 3, Title: "Primary School Teacher", Company: "Govt School", State: "Karnataka", Category: domain.CategoryRural, Tags: []string{"Teaching"}},
		{ID: 4, Title: "ASHA Worker", Company: "Health Dept", State: "Bihar", Category: domain.CategoryRural, Tags: []string{"Healthcare"}},
		{ID: 5, Title: "Bank Clerk", Company: "Gramin Bank", State: "Bihar", Category: domain.CategoryRural, Tags: []string{"Banking"}},
		{ID: 6, Title: "Village Helper", Company: "Panchayat", State: "Bihar", Category: domain.CategoryRural, Tags: []string{"Community"}},
	}
}

func TestGetRecommendationsTopFiveSequence(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(testUser(), nil)
	jobRepo.On("FetchAll", mock.Anything).Return(testJobs(), nil)

	matches, err := uc.GetRecommendations(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	require.Len(t, matches, 6)

	// The chatbot-matched job leads, then raw score order
	assert.Equal(t, int64(1), matches[0].ID)
	assert.True(t, matches[0].IsChatbotRecommended)

	want := []int{95, 92, 89, 86, 83}
	for i, expected := range want {
		assert.Equal(t, expected, matches[i].Match)
	}
	assert.GreaterOrEqual(t, matches[5].Match, 80)
	assert.LessOrEqual(t, matches[5].Match, 95)
}

func TestGetRecommendationsCapsListSize(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := make([]domain.Job, 0, 30)
	for i := 1; i <= 30; i++ {
		jobs = append(jobs, domain.Job{ID: int64(i), Title: "Clerk", Company: "Office", Tags: []string{}})
	}

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(testUser(), nil)
	jobRepo.On("FetchAll", mock.Anything).Return(jobs, nil)

	matches, err := uc.GetRecommendations(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	assert.Len(t, matches, 20)
}

func TestGetRecommendationsUnknownUser(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := uc.GetRecommendations(context.Background(), "nobody@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestGetRecommendationsSeedsEmptyCollection(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(testUser(), nil)
	jobRepo.On("FetchAll", mock.Anything).Return([]domain.Job{}, nil).Once()
	jobRepo.On("CreateMany", mock.Anything, mock.Anything).Return(nil).Once()
	jobRepo.On("FetchAll", mock.Anything).Return(testJobs(), nil).Once()

	matches, err := uc.GetRecommendations(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	assert.Len(t, matches, 6)
	jobRepo.AssertExpectations(t)
}

// The single-job endpoint must agree with the recommendations list for
// the same user and job set.
func TestJobDetailsMatchesRecommendationScore(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := testJobs()
	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(testUser(), nil)
	jobRepo.On("FetchAll", mock.Anything).Return(jobs, nil)
	for i := range jobs {
		jobRepo.On("GetByID", mock.Anything, jobs[i].ID).Return(&jobs[i], nil)
	}

	matches, err := uc.GetRecommendations(context.Background(), "ravi@example.com")
	require.NoError(t, err)

	for _, want := range matches {
		got, err := uc.GetJobDetails(context.Background(), want.ID, "ravi@example.com")
		require.NoError(t, err)
		assert.Equal(t, want.Match, got.Match, "job %d", want.ID)
		assert.Equal(t, want.IsChatbotRecommended, got.IsChatbotRecommended)
	}
}

// With more jobs than the list cap, the tail rescale must still run over
// the full ranking: the percentages for listed jobs may not shift just
// because the response is cut at 20.
func TestJobDetailsMatchRecommendationsBeyondListCap(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	// 25 jobs with strictly descending tag-overlap scores, so the tail
	// min/max differ depending on whether positions 20-24 are included.
	user := &domain.UserProfile{
		Email:     "ravi@example.com",
		Interests: domain.Interests{SelectedInterests: []string{"Craft"}},
	}
	jobs := make([]domain.Job, 0, 25)
	for i := 1; i <= 25; i++ {
		tags := make([]string, 0, 26-i)
		for j := 0; j < 26-i; j++ {
			tags = append(tags, fmt.Sprintf("Craft %d", j))
		}
		jobs = append(jobs, domain.Job{ID: int64(i), Title: "Artisan", Company: "Workshop", Tags: tags})
	}

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(user, nil)
	jobRepo.On("FetchAll", mock.Anything).Return(jobs, nil)
	for i := range jobs {
		jobRepo.On("GetByID", mock.Anything, jobs[i].ID).Return(&jobs[i], nil)
	}

	matches, err := uc.GetRecommendations(context.Background(), "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, matches, 20)

	// Raw scores run 250 down to 10; the last listed job (raw 60) lands
	// at 81 only when jobs 21-25 still anchor the rescale minimum.
	assert.Equal(t, 81, matches[19].Match)

	for _, want := range matches {
		got, err := uc.GetJobDetails(context.Background(), want.ID, "ravi@example.com")
		require.NoError(t, err)
		assert.Equal(t, want.Match, got.Match, "job %d", want.ID)
	}
}

func TestJobDetailsWithoutEmailHasNoScore(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := testJobs()
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&jobs[0], nil)

	got, err := uc.GetJobDetails(context.Background(), 1, "")

	require.NoError(t, err)
	assert.Equal(t, 0, got.Match)
	assert.False(t, got.IsChatbotRecommended)
}

func TestJobDetailsUnknownUserReturnsRawJob(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := testJobs()
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&jobs[0], nil)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	got, err := uc.GetJobDetails(context.Background(), 1, "nobody@example.com")

	require.NoError(t, err)
	assert.Equal(t, 0, got.Match)
}

func TestJobDetailsUnknownJob(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := uc.GetJobDetails(context.Background(), 99, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Job not found")
}

func TestCreateJobValidation(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewJobUsecase(jobRepo, userRepo, matching.NewDefaultScorer())

	t.Run("missing title", func(t *testing.T) {
		err := uc.CreateJob(context.Background(), &domain.Job{Category: domain.CategoryRural, Type: "Full-time"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("invalid category", func(t *testing.T) {
		err := uc.CreateJob(context.Background(), &domain.Job{Title: "X", Category: "Fancy", Type: "Full-time"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job category")
	})

	t.Run("invalid type", func(t *testing.T) {
		err := uc.CreateJob(context.Background(), &domain.Job{Title: "X", Category: domain.CategoryRural, Type: "Gig"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job type")
	})

	t.Run("valid job is stored", func(t *testing.T) {
		job := &domain.Job{Title: "X", Category: domain.CategoryRural, Type: "Full-time"}
		jobRepo.On("Create", mock.Anything, job).Return(nil).Once()
		require.NoError(t, uc.CreateJob(context.Background(), job))
		jobRepo.AssertExpectations(t)
	})
}

func TestRoadmapGeneratedOnceForJob(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	roadmapRepo := new(MockRoadmapRepo)
	uc := usecase.NewRoadmapUsecase(roadmapRepo, jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := testJobs()
	jobRepo.On("GetByID", mock.Anything, int64(3)).Return(&jobs[2], nil)

	stored := &domain.Roadmap{ID: 7, JobTitle: "Primary School Teacher", Match: 85}
	// First access: nothing stored yet, the generated default is inserted.
	roadmapRepo.On("GetByJobTitle", mock.Anything, "Primary School Teacher").Return(nil, domain.ErrNotFound).Once()
	roadmapRepo.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(stored, nil).Once()
	// Second access reads the stored document.
	roadmapRepo.On("GetByJobTitle", mock.Anything, "Primary School Teacher").Return(stored, nil).Once()

	first, err := uc.GetForJob(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.ID)

	second, err := uc.GetForJob(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), second.ID)

	roadmapRepo.AssertExpectations(t)
	roadmapRepo.AssertNumberOfCalls(t, "CreateIfAbsent", 1)
}

// The roadmap endpoint must report the same match as the
// recommendations list for the same user and job.
func TestRoadmapMatchAgreesWithRecommendations(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	roadmapRepo := new(MockRoadmapRepo)
	scorer := matching.NewDefaultScorer()
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, scorer)
	roadmapUC := usecase.NewRoadmapUsecase(roadmapRepo, jobRepo, userRepo, scorer)

	jobs := testJobs()
	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(testUser(), nil)
	jobRepo.On("FetchAll", mock.Anything).Return(jobs, nil)
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&jobs[0], nil)
	roadmapRepo.On("GetByJobTitle", mock.Anything, "Software Developer").
		Return(&domain.Roadmap{ID: 1, JobTitle: "Software Developer", Match: 85}, nil)

	matches, err := jobUC.GetRecommendations(context.Background(), "ravi@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), matches[0].ID)

	rm, err := roadmapUC.GetForJob(context.Background(), 1, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, matches[0].Match, rm.Match)
}

func TestRoadmapMatchUntouchedWithoutEmail(t *testing.T) {
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	roadmapRepo := new(MockRoadmapRepo)
	uc := usecase.NewRoadmapUsecase(roadmapRepo, jobRepo, userRepo, matching.NewDefaultScorer())

	jobs := testJobs()
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&jobs[0], nil)
	roadmapRepo.On("GetByJobTitle", mock.Anything, "Software Developer").
		Return(&domain.Roadmap{ID: 1, JobTitle: "Software Developer", Match: 85}, nil)

	rm, err := uc.GetForJob(context.Background(), 1, "")

	require.NoError(t, err)
	assert.Equal(t, 85, rm.Match)
}

func TestRoadmapSaveRequiresJobTitle(t *testing.T) {
	uc := usecase.NewRoadmapUsecase(new(MockRoadmapRepo), new(MockJobRepo), new(MockUserRepo), matching.NewDefaultScorer())

	err := uc.Save(context.Background(), &domain.Roadmap{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobTitle is required")
}

func TestSaveOnboardingCreatesNewProfile(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, validator.New())

	input := &domain.UserProfile{Email: "new@example.com"}
	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, input).Return(nil)

	profile, err := uc.SaveOnboarding(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	userRepo.AssertExpectations(t)
}

func TestSaveOnboardingMergesExistingProfile(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, validator.New())

	existing := testUser()
	existing.ChatbotData.Conversations = []domain.Conversation{{QuestionID: "q1", Answer: "a1"}}

	input := &domain.UserProfile{
		Email: "ravi@example.com",
		ChatbotData: domain.ChatbotData{
			CareerPath:    "Skill-Based Career Path",
			Conversations: []domain.Conversation{{QuestionID: "q2", Answer: "a2"}},
		},
	}

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(existing, nil)
	userRepo.On("Update", mock.Anything, existing).Return(nil)

	profile, err := uc.SaveOnboarding(context.Background(), input)

	require.NoError(t, err)
	// Chatbot fields merge; the conversation history appends.
	assert.Equal(t, "Skill-Based Career Path", profile.ChatbotData.CareerPath)
	require.Len(t, profile.ChatbotData.Conversations, 2)
	assert.Equal(t, "q1", profile.ChatbotData.Conversations[0].QuestionID)
	assert.Equal(t, "q2", profile.ChatbotData.Conversations[1].QuestionID)
	// Untouched sections survive the merge.
	assert.Equal(t, "Karnataka", profile.Location.State)
	assert.Equal(t, []domain.CareerSuggestion{{Name: "Software Engineer"}}, profile.ChatbotData.TopCareers)
}

func TestSaveOnboardingRequiresEmail(t *testing.T) {
	uc := usecase.NewUserUsecase(new(MockUserRepo), validator.New())

	_, err := uc.SaveOnboarding(context.Background(), &domain.UserProfile{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestDashboardInterestStats(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, validator.New())

	user := &domain.UserProfile{
		Email: "ravi@example.com",
		AcademicDetails: domain.AcademicDetails{
			Stream12: "Science",
		},
		Interests: domain.Interests{
			SelectedInterests: []string{"Coding", "Art"},
		},
	}
	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(user, nil)

	dash, err := uc.GetDashboard(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	// Technology 45 (stream 30 + Coding 15), Creative 15 (Art)
	require.Len(t, dash.InterestStats, 2)
	assert.Equal(t, "Technology", dash.InterestStats[0].Label)
	assert.Equal(t, 75, dash.InterestStats[0].Percentage)
	assert.Equal(t, "Creative", dash.InterestStats[1].Label)
	assert.Equal(t, 25, dash.InterestStats[1].Percentage)
	assert.Empty(t, dash.TopMatches)
}

func TestDashboardEmptyProfileFallsBackToGeneral(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, validator.New())

	userRepo.On("GetByEmail", mock.Anything, "new@example.com").
		Return(&domain.UserProfile{Email: "new@example.com"}, nil)

	dash, err := uc.GetDashboard(context.Background(), "new@example.com")

	require.NoError(t, err)
	require.Len(t, dash.InterestStats, 1)
	assert.Equal(t, "General", dash.InterestStats[0].Label)
	assert.Equal(t, 100, dash.InterestStats[0].Percentage)
	// Default skill gaps when there are no weak subjects
	require.Len(t, dash.SkillGaps, 3)
	assert.Equal(t, "Advanced Communication", dash.SkillGaps[0].Name)
}

func TestDashboardSkillGapsFromWeakSubjects(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo, validator.New())

	user := &domain.UserProfile{
		Email: "ravi@example.com",
		Interests: domain.Interests{
			SubjectLikes: map[string]int{"Maths": 4, "English": 9, "Biology": 6},
		},
	}
	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(user, nil)

	dash, err := uc.GetDashboard(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	require.Len(t, dash.SkillGaps, 2)
	assert.Equal(t, domain.SkillGap{Name: "Biology", Current: 60, Target: 90}, dash.SkillGaps[0])
	assert.Equal(t, domain.SkillGap{Name: "Maths", Current: 60, Target: 90}, dash.SkillGaps[1])
}
