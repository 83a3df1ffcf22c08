package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lead-intake-service/internal/domain"
)

// pgLeadRepository persists leads in Postgres. Selected when a DSN is
// configured; otherwise the service runs on the in-memory store.
type pgLeadRepository struct {
	pool *pgxpool.Pool
}

// NewPgLeadRepository instantiates the Postgres-backed repository.
func NewPgLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &pgLeadRepository{pool: pool}
}

func (r *pgLeadRepository) Append(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (id, first_name, last_name, email, linkedin_profile, visas_of_interest,
            additional_info, status, created_at, resume_file_name, resume_size, resume_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.LinkedinProfile,
		lead.VisasOfInterest,
		lead.AdditionalInfo,
		lead.Status,
		lead.CreatedAt,
		lead.ResumeFileName,
		lead.ResumeSize,
		lead.ResumeType,
	)
	return err
}

func (r *pgLeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	const query = `
        SELECT id, first_name, last_name, email, linkedin_profile, visas_of_interest,
               additional_info, status, created_at, resume_file_name, resume_size, resume_type
        FROM leads ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.LinkedinProfile,
			&lead.VisasOfInterest,
			&lead.AdditionalInfo,
			&lead.Status,
			&lead.CreatedAt,
			&lead.ResumeFileName,
			&lead.ResumeSize,
			&lead.ResumeType,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *pgLeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error) {
	const query = `
        UPDATE leads SET status=$1 WHERE id=$2
        RETURNING id, first_name, last_name, email, linkedin_profile, visas_of_interest,
                  additional_info, status, created_at, resume_file_name, resume_size, resume_type`
	var lead domain.Lead
	err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.LinkedinProfile,
		&lead.VisasOfInterest,
		&lead.AdditionalInfo,
		&lead.Status,
		&lead.CreatedAt,
		&lead.ResumeFileName,
		&lead.ResumeSize,
		&lead.ResumeType,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
