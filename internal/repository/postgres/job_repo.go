package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-career-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, location, COALESCE(district, ''), COALESCE(state, ''), type, salary, COALESCE(salary_range, ''), category, tags, COALESCE(description, ''), requirements, skills, is_rural, rural_details, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var salaryJSON, ruralJSON []byte
	var tags, requirements, skills []string

	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.District, &job.State, &job.Type,
		&salaryJSON, &job.SalaryRange, &job.Category,
		pq.Array(&tags), &job.Description, pq.Array(&requirements), pq.Array(&skills),
		&job.IsRural, &ruralJSON, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(salaryJSON) > 0 {
		if err := json.Unmarshal(salaryJSON, &job.Salary); err != nil {
			return nil, fmt.Errorf("decode salary: %w", err)
		}
	}
	if len(ruralJSON) > 0 {
		var details domain.RuralDetails
		if err := json.Unmarshal(ruralJSON, &details); err != nil {
			return nil, fmt.Errorf("decode rural details: %w", err)
		}
		job.RuralDetails = &details
	}

	// Tags are never nil, scoring iterates them unconditionally
	if tags == nil {
		tags = []string{}
	}
	job.Tags = tags
	job.Requirements = requirements
	job.Skills = skills
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	salaryJSON, err := json.Marshal(job.Salary)
	if err != nil {
		return err
	}
	var ruralJSON []byte
	if job.RuralDetails != nil {
		if ruralJSON, err = json.Marshal(job.RuralDetails); err != nil {
			return err
		}
	}

	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	query := `INSERT INTO jobs (title, company, location, district, state, type, salary, salary_range, category, tags, description, requirements, skills, is_rural, rural_details, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.District, job.State, job.Type,
		salaryJSON, job.SalaryRange, job.Category,
		pq.Array(job.Tags), job.Description, pq.Array(job.Requirements), pq.Array(job.Skills),
		job.IsRural, ruralJSON, job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) CreateMany(ctx context.Context, jobs []domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range jobs {
		job := &jobs[i]
		salaryJSON, err := json.Marshal(job.Salary)
		if err != nil {
			return err
		}
		var ruralJSON []byte
		if job.RuralDetails != nil {
			if ruralJSON, err = json.Marshal(job.RuralDetails); err != nil {
				return err
			}
		}
		if job.CreatedAt.IsZero() {
			job.CreatedAt = time.Now()
		}

		query := `INSERT INTO jobs (title, company, location, district, state, type, salary, salary_range, category, tags, description, requirements, skills, is_rural, rural_details, created_at)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
		if err := tx.QueryRow(ctx, query,
			job.Title, job.Company, job.Location, job.District, job.State, job.Type,
			salaryJSON, job.SalaryRange, job.Category,
			pq.Array(job.Tags), job.Description, pq.Array(job.Requirements), pq.Array(job.Skills),
			job.IsRural, ruralJSON, job.CreatedAt,
		).Scan(&job.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// FetchAll returns every job in insertion order. Scoring ranks the whole
// collection on each call, and a stable input order keeps the ranking
// deterministic.
func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var conds []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.IsRural != nil {
		args = append(args, *filter.IsRural)
		conds = append(conds, fmt.Sprintf("is_rural = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
