package matching

import (
	"math"

	"go-career-backend/internal/domain"
)

// Display band shown to users. Raw scores only ever decide ordering; the
// percentage a user sees always lives in [80,95].
const (
	MinDisplayScore = 80
	MaxDisplayScore = 95

	// DefaultMatch is the flat fallback when a job cannot be scored at
	// all. The source handlers disagreed (85 vs 88); 85 is canonical.
	DefaultMatch = 85

	topBandSize = 5
	topBandStep = 3
)

// Normalize maps the job at the given position of a ranked list to its
// caller-visible percentage.
//
// Positions 0-4 always get the fixed sequence 95, 92, 89, 86, 83 so the
// top five stay visually distinct regardless of raw score magnitude.
// Positions beyond that are compressed into [80,82]: chatbot-recommended
// jobs from their chatbot match score, everything else linearly rescaled
// across the tail's raw score range.
//
// Re-running scorer + sort + Normalize for the same profile and job set
// always yields the same percentage per job. That idempotence is the
// cross-endpoint consistency contract: the single-job and roadmap
// endpoints re-rank all jobs to find a job's position instead of scoring
// it in isolation.
func Normalize(ranked []domain.ScoredJob, index int) int {
	if index < topBandSize {
		return clamp(MaxDisplayScore-index*topBandStep, MinDisplayScore, MaxDisplayScore)
	}

	sj := &ranked[index]
	if sj.IsChatbotRecommended && sj.ChatbotMatchScore != nil {
		// Keep chatbot scores below the top-5 band
		return clamp(*sj.ChatbotMatchScore-1, MinDisplayScore, 82)
	}

	tail := ranked[topBandSize:]
	minScore, maxScore := tail[0].MatchScore, tail[0].MatchScore
	for i := range tail {
		if tail[i].MatchScore < minScore {
			minScore = tail[i].MatchScore
		}
		if tail[i].MatchScore > maxScore {
			maxScore = tail[i].MatchScore
		}
	}
	scoreRange := maxScore - minScore
	if scoreRange == 0 {
		scoreRange = 1
	}
	position := float64(sj.MatchScore-minScore) / float64(scoreRange)
	return clamp(int(math.Round(80+position*2)), MinDisplayScore, MaxDisplayScore)
}

// FallbackNormalize is the simplified formula for a job that could not be
// located in the recomputed ranking. Should not normally occur.
func FallbackNormalize(sj domain.ScoredJob) int {
	if sj.IsChatbotRecommended && sj.ChatbotMatchScore != nil {
		return *sj.ChatbotMatchScore
	}
	if sj.MatchScore > 0 {
		return clamp(int(math.Round(80+float64(sj.MatchScore)/150*15)), MinDisplayScore, MaxDisplayScore)
	}
	return DefaultMatch
}

// Rank returns the position of the job with the given ID in a ranked
// list, or -1 when absent.
func Rank(ranked []domain.ScoredJob, jobID int64) int {
	for i := range ranked {
		if ranked[i].ID == jobID {
			return i
		}
	}
	return -1
}
