package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go-talent-intake/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	phoneUniqueConstraint = "candidates_phone_number_key"
)

const candidateColumns = `
	id, full_name, age, phone_number, gender, city,
	job_category, job_role, years_experience, experience_range,
	current_salary, status, created_at, updated_at`

// Listing order; id breaks ties between rows inserted in the same instant.
const candidateOrder = `ORDER BY created_at DESC, id DESC`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	// created_at and updated_at both take the transaction timestamp, so they
	// are equal on a fresh row.
	query := `
		INSERT INTO candidates (
			full_name, age, phone_number, gender, city,
			job_category, job_role, years_experience, experience_range,
			current_salary, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'active', NOW(), NOW())
		RETURNING id, status, created_at, updated_at`

	var status string
	err := r.db.QueryRow(ctx, query,
		c.FullName, c.Age, c.PhoneNumber, c.Gender, c.City,
		c.JobCategory, c.JobRole, c.YearsExperience, c.ExperienceRange,
		c.CurrentSalary,
	).Scan(&c.ID, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == "" || pgErr.ConstraintName == phoneUniqueConstraint {
				return domain.ErrDuplicatePhoneNumber
			}
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	c.Status = domain.Status(status)
	return nil
}

func (r *candidateRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE phone_number = $1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check phone number: %w", err)
	}
	return exists, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return c, nil
}

// Search returns one page of candidates matching filter, newest first.
func (r *candidateRepository) Search(ctx context.Context, filter domain.CandidateFilter, limit, offset int) ([]domain.Candidate, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("search candidates: invalid window limit=%d offset=%d", limit, offset)
	}

	where, args := Where(nil, CandidatePredicates(filter)...)

	query := `SELECT ` + candidateColumns + ` FROM candidates ` + where + ` ` + candidateOrder
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return candidates, nil
}

// Count uses the same predicates as Search so totals always agree with pages.
func (r *candidateRepository) Count(ctx context.Context, filter domain.CandidateFilter) (int64, error) {
	where, args := Where(nil, CandidatePredicates(filter)...)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return total, nil
}

// UpdateStatus always moves updated_at forward, even when two writes land
// within the same clock tick.
func (r *candidateRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (int64, error) {
	query := `
		UPDATE candidates
		SET status = $1,
		    updated_at = GREATEST(clock_timestamp(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, string(status), id)
	if err != nil {
		return 0, fmt.Errorf("update candidate status: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *candidateRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete candidate: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *candidateRepository) GetStats(ctx context.Context) (*domain.CandidateStats, error) {
	stats := &domain.CandidateStats{
		MostCommonExperience: domain.NotAvailable,
		MostCommonCategory:   domain.NotAvailable,
	}

	countsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at::date = CURRENT_DATE),
			COUNT(*) FILTER (WHERE status = 'active')
		FROM candidates`
	if err := r.db.QueryRow(ctx, countsQuery).Scan(
		&stats.TotalCandidates, &stats.TodayRegistrations, &stats.ActiveCandidates,
	); err != nil {
		return nil, fmt.Errorf("candidate counts: %w", err)
	}

	var err error
	if stats.MostCommonExperience, err = r.mostCommon(ctx, ColExperienceRange); err != nil {
		return nil, err
	}
	if stats.MostCommonCategory, err = r.mostCommon(ctx, ColJobCategory); err != nil {
		return nil, err
	}
	return stats, nil
}

// mostCommon returns the modal value of column, ties broken alphabetically.
func (r *candidateRepository) mostCommon(ctx context.Context, column Column) (string, error) {
	col := column.quoted()
	query := `SELECT ` + col + ` FROM candidates WHERE ` + col + ` <> ''
		GROUP BY ` + col + ` ORDER BY COUNT(*) DESC, ` + col + ` ASC LIMIT 1`

	var value string
	err := r.db.QueryRow(ctx, query).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotAvailable, nil
		}
		return "", fmt.Errorf("most common %s: %w", column, err)
	}
	return value, nil
}

func (r *candidateRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT job_category FROM candidates ORDER BY job_category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var status string
	err := row.Scan(
		&c.ID, &c.FullName, &c.Age, &c.PhoneNumber, &c.Gender, &c.City,
		&c.JobCategory, &c.JobRole, &c.YearsExperience, &c.ExperienceRange,
		&c.CurrentSalary, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.Status(status)
	return &c, nil
}
