package matching

import (
	"sort"
	"strings"

	"go-career-backend/internal/domain"
)

// Score weights, in priority order. Chatbot overlap dominates every other
// signal so recommended jobs always outrank the rest.
const (
	chatbotBoost     = 100
	categoryBonus    = 30
	ruralPathBonus   = 35
	stateBonus       = 20
	districtBonus    = 15
	tagInterestBonus = 10
	streamBonus      = 15
)

// streamTagAffinity maps the 12th-grade stream to the job tags it favours.
// Tag comparison is exact, unlike the interest overlap below.
var streamTagAffinity = map[string][]string{
	"Science":  {"Tech", "Coding", "Data", "AI"},
	"Commerce": {"Finance", "Business", "Banking"},
	"Arts":     {"Design", "Creative", "Writing"},
}

// careerRef is one entry of the ephemeral career map: a lowercased career
// name with its position in the user's top-career list. Rebuilt on every
// scoring call, never persisted.
type careerRef struct {
	name     string
	index    int
	priority int
}

// buildCareerMap keeps first-occurrence order while later duplicate names
// overwrite earlier indexes. Names are expected unique, so this only
// matters for malformed chatbot output.
func buildCareerMap(careers []domain.CareerSuggestion) []careerRef {
	refs := make([]careerRef, 0, len(careers))
	seen := make(map[string]int, len(careers))
	for i, c := range careers {
		name := strings.ToLower(c.Name)
		if pos, ok := seen[name]; ok {
			refs[pos].index = i
			refs[pos].priority = len(careers) - i
			continue
		}
		seen[name] = len(refs)
		refs = append(refs, careerRef{name: name, index: i, priority: len(careers) - i})
	}
	return refs
}

// Scorer computes raw match scores for jobs against a user profile. It is
// pure: no stored state beyond the matcher, no mutation of its inputs.
type Scorer struct {
	matcher KeywordMatcher
}

func NewScorer(matcher KeywordMatcher) *Scorer {
	return &Scorer{matcher: matcher}
}

// NewDefaultScorer returns a Scorer backed by the substring keyword matcher.
func NewDefaultScorer() *Scorer {
	return NewScorer(NewSubstringMatcher())
}

// jobSearchText builds the lowercased haystack for career matching:
// title, company and tags joined by single spaces.
func jobSearchText(job *domain.Job) string {
	parts := make([]string, 0, len(job.Tags)+2)
	parts = append(parts, strings.ToLower(job.Title), strings.ToLower(job.Company))
	for _, t := range job.Tags {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, " ")
}

// Score computes a ScoredJob for every job in a single deterministic pass
// and returns them totally ordered: chatbot-recommended jobs first, then
// by descending raw score, ties broken by input order.
//
// Missing profile fields are treated as empty values; a sparse profile
// never fails scoring.
func (s *Scorer) Score(profile *domain.UserProfile, jobs []domain.Job) []domain.ScoredJob {
	careers := profile.ChatbotData.TopCareers
	careerPath := profile.ChatbotData.CareerPath
	if careerPath == "" {
		careerPath = "General"
	}
	refs := buildCareerMap(careers)

	scored := make([]domain.ScoredJob, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		sj := domain.ScoredJob{Job: job}
		title := strings.ToLower(job.Title)
		text := jobSearchText(&job)

		// Priority 1: chatbot career overlap. First matching career wins
		// and stops the search for this job.
		for _, ref := range refs {
			if s.matcher.Matches(ref.name, title, text) {
				sj.IsChatbotRecommended = true
				cms := clamp(95-ref.index*3, 80, 95)
				sj.ChatbotMatchScore = &cms
				sj.MatchScore += chatbotBoost
				break
			}
		}

		s.applyProfileSignals(&sj, profile, careerPath)
		scored = append(scored, sj)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := &scored[i], &scored[j]
		if a.IsChatbotRecommended != b.IsChatbotRecommended {
			return a.IsChatbotRecommended
		}
		return a.MatchScore > b.MatchScore
	})

	if len(careers) > 0 && !anyRecommended(scored) {
		scored = s.reconcile(careers, scored)
	}
	return scored
}

// ScoreDetached scores a single job outside a full ranking. Only used when
// a job cannot be located in the recomputed sorted list; unlike Score it
// checks every career without stopping at the first match, so the last
// matching career determines the chatbot match score.
func (s *Scorer) ScoreDetached(profile *domain.UserProfile, job domain.Job) domain.ScoredJob {
	careerPath := profile.ChatbotData.CareerPath
	if careerPath == "" {
		careerPath = "General"
	}
	sj := domain.ScoredJob{Job: job}
	title := strings.ToLower(job.Title)
	text := jobSearchText(&job)

	for i, career := range profile.ChatbotData.TopCareers {
		name := strings.ToLower(career.Name)
		if s.matcher.Matches(name, title, text) {
			sj.IsChatbotRecommended = true
			cms := clamp(95-i*3, 80, 95)
			sj.ChatbotMatchScore = &cms
			sj.MatchScore += chatbotBoost
		}
	}

	s.applyProfileSignals(&sj, profile, careerPath)
	return sj
}

// applyProfileSignals adds the priority 2-5 signals: category alignment,
// location, tag/interest overlap and stream affinity.
func (s *Scorer) applyProfileSignals(sj *domain.ScoredJob, profile *domain.UserProfile, careerPath string) {
	job := &sj.Job

	// Priority 2: career path category alignment. Independent predicates;
	// a path string naming several tracks stacks their bonuses.
	if strings.Contains(careerPath, "Degree") && job.Category == domain.CategoryDegreeBased {
		sj.MatchScore += categoryBonus
	}
	if strings.Contains(careerPath, "Arts") && job.Category == domain.CategoryCommunicationArts {
		sj.MatchScore += categoryBonus
	}
	if strings.Contains(careerPath, "Skill") && job.Category == domain.CategorySkillBased {
		sj.MatchScore += categoryBonus
	}
	if strings.Contains(careerPath, "Rural") && job.IsRural {
		sj.MatchScore += ruralPathBonus
	}

	// Priority 3: location
	if profile.Location.State != "" && job.State == profile.Location.State {
		sj.MatchScore += stateBonus
	}
	if profile.Location.District != "" && job.District == profile.Location.District {
		sj.MatchScore += districtBonus
	}

	// Priority 4: tag/interest overlap, bidirectional substring test,
	// counted once per qualifying tag.
	for _, tag := range job.Tags {
		if tagMatchesAnyInterest(tag, profile.Interests.SelectedInterests) {
			sj.MatchScore += tagInterestBonus
		}
	}

	// Priority 5: stream affinity
	if affinity, ok := streamTagAffinity[profile.AcademicDetails.Stream12]; ok {
		if hasAnyExactTag(job.Tags, affinity) {
			sj.MatchScore += streamBonus
		}
	}
}

// relevancePairs are the fixed keyword-pair bonuses of the fallback
// reconciliation: career name substring on the left, job tag substring on
// the right.
var relevancePairs = [...]struct{ career, tag string }{
	{"teacher", "teaching"},
	{"bank", "banking"},
	{"health", "health"},
	{"agriculture", "agriculture"},
	{"government", "government"},
}

// reconcile handles the case where the chatbot suggested careers but no
// job keyword-matched any of them: each career, in list order, greedily
// claims the single most relevant still-unclaimed job. A job can only be
// claimed once (first career wins) and a career may stay unassigned when
// nothing scores above zero. No backtracking.
func (s *Scorer) reconcile(careers []domain.CareerSuggestion, scored []domain.ScoredJob) []domain.ScoredJob {
	claimed := make(map[int]bool)

	for ci, career := range careers {
		name := strings.ToLower(career.Name)
		keywords := s.matcher.Keywords(name)

		best, bestScore := -1, 0
		for i := range scored {
			if claimed[i] {
				continue
			}
			job := &scored[i].Job
			title := strings.ToLower(job.Title)
			text := fallbackSearchText(job)

			relevance := 0
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					relevance += 10
				}
				if strings.Contains(title, kw) {
					// Higher weight for title matches
					relevance += 15
				}
			}
			for _, pair := range relevancePairs {
				if strings.Contains(name, pair.career) && anyTagContains(job.Tags, pair.tag) {
					relevance += 20
				}
			}
			if strings.Contains(name, "rural") && job.IsRural {
				relevance += 15
			}

			if relevance > bestScore {
				bestScore, best = relevance, i
			}
		}

		if best >= 0 && bestScore > 0 {
			claimed[best] = true
			scored[best].IsChatbotRecommended = true
			cms := 95 - ci*3
			if cms < 80 {
				cms = 80
			}
			scored[best].ChatbotMatchScore = &cms
		}
	}

	recommended := make([]domain.ScoredJob, 0, len(claimed))
	rest := make([]domain.ScoredJob, 0, len(scored)-len(claimed))
	for i := range scored {
		if claimed[i] {
			recommended = append(recommended, scored[i])
		} else {
			rest = append(rest, scored[i])
		}
	}
	sort.SliceStable(recommended, func(i, j int) bool {
		return derefScore(recommended[i].ChatbotMatchScore) > derefScore(recommended[j].ChatbotMatchScore)
	})
	return append(recommended, rest...)
}

// fallbackSearchText omits the company name; reconciliation only looks at
// title and tags.
func fallbackSearchText(job *domain.Job) string {
	parts := make([]string, 0, len(job.Tags)+1)
	parts = append(parts, strings.ToLower(job.Title))
	for _, t := range job.Tags {
		parts = append(parts, strings.ToLower(t))
	}
	return strings.Join(parts, " ")
}

func tagMatchesAnyInterest(tag string, interests []string) bool {
	tagLower := strings.ToLower(tag)
	for _, interest := range interests {
		interestLower := strings.ToLower(interest)
		if strings.Contains(interestLower, tagLower) || strings.Contains(tagLower, interestLower) {
			return true
		}
	}
	return false
}

func hasAnyExactTag(tags, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}

func anyTagContains(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func anyRecommended(scored []domain.ScoredJob) bool {
	for i := range scored {
		if scored[i].IsChatbotRecommended {
			return true
		}
	}
	return false
}

func derefScore(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
