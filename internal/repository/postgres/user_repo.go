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

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Onboarding sections are stored as jsonb documents; each wizard step
// replaces its own section wholesale.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	query := `SELECT id, email, COALESCE(clerk_id, ''), location, academic_details, graduation_details, interests, chatbot_data, created_at, updated_at
	          FROM user_profiles WHERE email = $1`

	var p domain.UserProfile
	var locationJSON, academicJSON, graduationJSON, interestsJSON, chatbotJSON []byte

	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.ID, &p.Email, &p.ClerkID,
		&locationJSON, &academicJSON, &graduationJSON, &interestsJSON, &chatbotJSON,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	sections := []struct {
		raw  []byte
		dest any
	}{
		{locationJSON, &p.Location},
		{academicJSON, &p.AcademicDetails},
		{graduationJSON, &p.GraduationDetails},
		{interestsJSON, &p.Interests},
		{chatbotJSON, &p.ChatbotData},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dest); err != nil {
			return nil, fmt.Errorf("decode profile section: %w", err)
		}
	}
	return &p, nil
}

func (r *userRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	locationJSON, academicJSON, graduationJSON, interestsJSON, chatbotJSON, err := marshalSections(profile)
	if err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `INSERT INTO user_profiles (email, clerk_id, location, academic_details, graduation_details, interests, chatbot_data, created_at, updated_at)
	          VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.Email, profile.ClerkID,
		locationJSON, academicJSON, graduationJSON, interestsJSON, chatbotJSON,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *userRepo) Update(ctx context.Context, profile *domain.UserProfile) error {
	locationJSON, academicJSON, graduationJSON, interestsJSON, chatbotJSON, err := marshalSections(profile)
	if err != nil {
		return err
	}

	profile.UpdatedAt = time.Now()

	query := `UPDATE user_profiles SET
		clerk_id = NULLIF($2, ''),
		location = $3,
		academic_details = $4,
		graduation_details = $5,
		interests = $6,
		chatbot_data = $7,
		updated_at = $8
	WHERE email = $1`
	result, err := r.db.Exec(ctx, query,
		profile.Email, profile.ClerkID,
		locationJSON, academicJSON, graduationJSON, interestsJSON, chatbotJSON,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalSections(profile *domain.UserProfile) (location, academic, graduation, interests, chatbot []byte, err error) {
	if location, err = json.Marshal(profile.Location); err != nil {
		return
	}
	if academic, err = json.Marshal(profile.AcademicDetails); err != nil {
		return
	}
	if graduation, err = json.Marshal(profile.GraduationDetails); err != nil {
		return
	}
	if interests, err = json.Marshal(profile.Interests); err != nil {
		return
	}
	chatbot, err = json.Marshal(profile.ChatbotData)
	return
}
