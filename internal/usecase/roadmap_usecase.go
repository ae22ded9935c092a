package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go-career-backend/internal/domain"
	"go-career-backend/internal/matching"
	"go-career-backend/internal/roadmap"
	"go-career-backend/pkg/apperror"
)

type roadmapUsecase struct {
	roadmapRepo domain.RoadmapRepository
	jobRepo     domain.JobRepository
	userRepo    domain.UserRepository
	scorer      *matching.Scorer
}

func NewRoadmapUsecase(roadmapRepo domain.RoadmapRepository, jobRepo domain.JobRepository, userRepo domain.UserRepository, scorer *matching.Scorer) domain.RoadmapUsecase {
	return &roadmapUsecase{
		roadmapRepo: roadmapRepo,
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		scorer:      scorer,
	}
}

// GetForJob returns the roadmap for the given job, generating and storing
// a default one on first access. When an email is given, the returned
// match field is overwritten with the caller's freshly computed score;
// the stored match is never updated by reads.
func (u *roadmapUsecase) GetForJob(ctx context.Context, jobID int64, email string) (*domain.Roadmap, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	matchScore := 0
	if email != "" {
		if score, ok := u.scoreForUser(ctx, email, job); ok {
			matchScore = score
		}
	}

	rm, err := u.roadmapRepo.GetByJobTitle(ctx, job.Title)
	if errors.Is(err, domain.ErrNotFound) {
		rm, err = u.roadmapRepo.CreateIfAbsent(ctx, roadmap.Generate(job, matchScore))
	}
	if err != nil {
		return nil, err
	}

	if matchScore > 0 {
		rm.Match = matchScore
	}
	return rm, nil
}

// scoreForUser computes the user's display match for the job, using the
// same full-ranking path as the recommendations list. Scoring failures
// only cost the personalized match, never the roadmap itself.
func (u *roadmapUsecase) scoreForUser(ctx context.Context, email string, job *domain.Job) (int, bool) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("loading user for roadmap match failed", "error", err)
		}
		return 0, false
	}

	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		slog.Error("fetching jobs for roadmap match failed", "error", err)
		return 0, false
	}

	ranked := u.scorer.Score(user, jobs)
	if idx := matching.Rank(ranked, job.ID); idx >= 0 {
		return matching.Normalize(ranked, idx), true
	}
	return matching.FallbackNormalize(u.scorer.ScoreDetached(user, *job)), true
}

func (u *roadmapUsecase) GetByTitle(ctx context.Context, jobTitle string) (*domain.Roadmap, error) {
	rm, err := u.roadmapRepo.FindByTitleLike(ctx, jobTitle)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Roadmap not found")
		}
		return nil, err
	}
	return rm, nil
}

func (u *roadmapUsecase) Save(ctx context.Context, rm *domain.Roadmap) error {
	if rm.JobTitle == "" {
		return apperror.BadRequest("jobTitle is required")
	}
	return u.roadmapRepo.Upsert(ctx, rm)
}
