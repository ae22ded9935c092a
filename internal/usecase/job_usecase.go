package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"go-career-backend/internal/domain"
	"go-career-backend/internal/matching"
	"go-career-backend/internal/seed"
	"go-career-backend/pkg/apperror"
)

const maxRecommendations = 20

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
	scorer   *matching.Scorer
}

func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository, scorer *matching.Scorer) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		scorer:   scorer,
	}
}

// GetRecommendations ranks the whole job collection against the user's
// profile and returns the top slice with display percentages.
func (u *jobUsecase) GetRecommendations(ctx context.Context, email string) ([]domain.JobMatch, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	jobs, err := u.allJobsSeeded(ctx)
	if err != nil {
		return nil, err
	}

	// Normalize against the full ranking before cutting the list, so the
	// tail rescale sees every score and the percentages agree with the
	// single-job and roadmap endpoints.
	ranked := u.scorer.Score(user, jobs)
	limit := len(ranked)
	if limit > maxRecommendations {
		limit = maxRecommendations
	}

	matches := make([]domain.JobMatch, 0, limit)
	for i := 0; i < limit; i++ {
		matches = append(matches, domain.JobMatch{
			Job:                  ranked[i].Job,
			Match:                matching.Normalize(ranked, i),
			IsChatbotRecommended: ranked[i].IsChatbotRecommended,
		})
	}
	return matches, nil
}

// GetJobDetails returns the job, with a match percentage when an email is
// given. The percentage comes from re-ranking the full collection so the
// number agrees with the recommendations list for the same user.
func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64, email string) (*domain.JobMatch, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	match := &domain.JobMatch{Job: *job}
	if email == "" {
		return match, nil
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Anonymous view, no score
			return match, nil
		}
		return nil, err
	}

	score, recommended, err := u.matchForJob(ctx, user, job)
	if err != nil {
		return nil, err
	}
	match.Match = score
	match.IsChatbotRecommended = recommended
	return match, nil
}

// matchForJob recomputes the full ranking to locate the job's position
// and normalizes from there. When the job is somehow absent from the
// ranking it falls back to scoring it in isolation.
func (u *jobUsecase) matchForJob(ctx context.Context, user *domain.UserProfile, job *domain.Job) (int, bool, error) {
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return 0, false, err
	}

	ranked := u.scorer.Score(user, jobs)
	if idx := matching.Rank(ranked, job.ID); idx >= 0 {
		return matching.Normalize(ranked, idx), ranked[idx].IsChatbotRecommended, nil
	}

	slog.Warn("job missing from recomputed ranking, using detached score", "job_id", job.ID)
	sj := u.scorer.ScoreDetached(user, *job)
	return matching.FallbackNormalize(sj), sj.IsChatbotRecommended, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx, filter)
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !slices.Contains(domain.ValidCategories(), job.Category) {
		return apperror.BadRequest("Invalid job category")
	}
	if !slices.Contains(domain.ValidJobTypes(), job.Type) {
		return apperror.BadRequest("Invalid job type")
	}
	if job.Salary.Min > job.Salary.Max {
		return apperror.BadRequest("Salary min cannot be greater than salary max")
	}
	return u.jobRepo.Create(ctx, job)
}

// allJobsSeeded fetches every job and seeds the bundled dataset first when
// the collection is empty, so a fresh database still produces
// recommendations.
func (u *jobUsecase) allJobsSeeded(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) > 0 {
		return jobs, nil
	}

	seedJobs, err := seed.Jobs()
	if err != nil {
		return nil, err
	}
	if err := u.jobRepo.CreateMany(ctx, seedJobs); err != nil {
		// Another instance may have seeded concurrently; serve whatever
		// is there now.
		slog.Error("seeding jobs failed", "error", err)
	}
	return u.jobRepo.FetchAll(ctx)
}
