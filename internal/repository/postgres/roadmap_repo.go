package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-career-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roadmapRepo struct {
	db *pgxpool.Pool
}

func NewRoadmapRepository(db *pgxpool.Pool) domain.RoadmapRepository {
	return &roadmapRepo{db: db}
}

const roadmapColumns = `id, job_title, COALESCE(job_id, 0), COALESCE(description, ''), tags, match, stats, steps, skills, course, created_at, updated_at`

func scanRoadmap(row rowScanner) (*domain.Roadmap, error) {
	var rm domain.Roadmap
	var tagsJSON, statsJSON, stepsJSON, skillsJSON, courseJSON []byte

	err := row.Scan(
		&rm.ID, &rm.JobTitle, &rm.JobID, &rm.Description,
		&tagsJSON, &rm.Match, &statsJSON, &stepsJSON, &skillsJSON, &courseJSON,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sections := []struct {
		raw  []byte
		dest any
	}{
		{tagsJSON, &rm.Tags},
		{statsJSON, &rm.Stats},
		{stepsJSON, &rm.Steps},
		{skillsJSON, &rm.Skills},
		{courseJSON, &rm.Course},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dest); err != nil {
			return nil, fmt.Errorf("decode roadmap section: %w", err)
		}
	}
	return &rm, nil
}

func (r *roadmapRepo) GetByJobTitle(ctx context.Context, jobTitle string) (*domain.Roadmap, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmaps WHERE job_title = $1`
	rm, err := scanRoadmap(r.db.QueryRow(ctx, query, jobTitle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (r *roadmapRepo) FindByTitleLike(ctx context.Context, jobTitle string) (*domain.Roadmap, error) {
	query := `SELECT ` + roadmapColumns + ` FROM roadmaps WHERE job_title ILIKE $1 ORDER BY id LIMIT 1`
	rm, err := scanRoadmap(r.db.QueryRow(ctx, query, "%"+jobTitle+"%"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rm, nil
}

// CreateIfAbsent relies on the unique index on job_title: concurrent
// first requests for the same title race on the insert, the loser's
// insert becomes a no-op and both read back the same stored document.
func (r *roadmapRepo) CreateIfAbsent(ctx context.Context, roadmap *domain.Roadmap) (*domain.Roadmap, error) {
	tagsJSON, statsJSON, stepsJSON, skillsJSON, courseJSON, err := marshalRoadmap(roadmap)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	query := `INSERT INTO roadmaps (job_title, job_id, description, tags, match, stats, steps, skills, course, created_at, updated_at)
	          VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, $8, $9, $10, $10)
	          ON CONFLICT (job_title) DO NOTHING`
	if _, err := r.db.Exec(ctx, query,
		roadmap.JobTitle, roadmap.JobID, roadmap.Description,
		tagsJSON, roadmap.Match, statsJSON, stepsJSON, skillsJSON, courseJSON,
		now,
	); err != nil {
		return nil, err
	}

	return r.GetByJobTitle(ctx, roadmap.JobTitle)
}

func (r *roadmapRepo) Upsert(ctx context.Context, roadmap *domain.Roadmap) error {
	tagsJSON, statsJSON, stepsJSON, skillsJSON, courseJSON, err := marshalRoadmap(roadmap)
	if err != nil {
		return err
	}

	now := time.Now()
	query := `INSERT INTO roadmaps (job_title, job_id, description, tags, match, stats, steps, skills, course, created_at, updated_at)
	          VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, $8, $9, $10, $10)
	          ON CONFLICT (job_title) DO UPDATE SET
	              job_id = EXCLUDED.job_id,
	              description = EXCLUDED.description,
	              tags = EXCLUDED.tags,
	              match = EXCLUDED.match,
	              stats = EXCLUDED.stats,
	              steps = EXCLUDED.steps,
	              skills = EXCLUDED.skills,
	              course = EXCLUDED.course,
	              updated_at = EXCLUDED.updated_at
	          RETURNING id`
	return r.db.QueryRow(ctx, query,
		roadmap.JobTitle, roadmap.JobID, roadmap.Description,
		tagsJSON, roadmap.Match, statsJSON, stepsJSON, skillsJSON, courseJSON,
		now,
	).Scan(&roadmap.ID)
}

func marshalRoadmap(rm *domain.Roadmap) (tags, stats, steps, skills, course []byte, err error) {
	if tags, err = json.Marshal(rm.Tags); err != nil {
		return
	}
	if stats, err = json.Marshal(rm.Stats); err != nil {
		return
	}
	if steps, err = json.Marshal(rm.Steps); err != nil {
		return
	}
	if skills, err = json.Marshal(rm.Skills); err != nil {
		return
	}
	course, err = json.Marshal(rm.Course)
	return
}
