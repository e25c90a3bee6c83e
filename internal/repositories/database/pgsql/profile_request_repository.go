package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/mapping"
)

const requestColumns = `request_id, tenant_id, new_full_name, new_email, new_phone_number, reason, status, reviewed_at, reviewed_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxProfileRequestRepository struct {
	BaseRepository
}

// newPgxProfileRequestRepository creates a new repository for profile
// change request data.
func newPgxProfileRequestRepository(pool *pgxpool.Pool) portsrepo.ProfileChangeRequestRepository {
	return &PgxProfileRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileRequestRepository implements the port
var _ portsrepo.ProfileChangeRequestRepository = (*PgxProfileRequestRepository)(nil)

func scanProfileRequest(row pgx.Row) (models.ProfileChangeRequest, error) {
	var m models.ProfileChangeRequest
	err := row.Scan(
		&m.RequestID,
		&m.TenantID,
		&m.NewFullName,
		&m.NewEmail,
		&m.NewPhoneNumber,
		&m.Reason,
		&m.Status,
		&m.ReviewedAt,
		&m.ReviewedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRequest inserts a new profile change request.
func (r *PgxProfileRequestRepository) SaveRequest(ctx context.Context, req domain.ProfileChangeRequest) error {
	m := mapping.ToModelProfileChangeRequest(req)

	query := `
		INSERT INTO profile_change_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.TenantID,
		m.NewFullName,
		m.NewEmail,
		m.NewPhoneNumber,
		m.Reason,
		m.Status,
		m.ReviewedAt,
		m.ReviewedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: request with ID %s already exists", apperrors.ErrDuplicate, m.RequestID)
		}
		return fmt.Errorf("failed to save profile change request %s: %w", m.RequestID, err)
	}
	return nil
}

// FindRequestByID retrieves a profile change request by its ID.
func (r *PgxProfileRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.ProfileChangeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM profile_change_requests WHERE request_id = $1;`

	m, err := scanProfileRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile change request by ID %s: %w", requestID, err)
	}

	d := mapping.ToDomainProfileChangeRequest(m)
	return &d, nil
}

// ListRequests retrieves requests newest first, optionally filtered by
// status.
func (r *PgxProfileRequestRepository) ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + requestColumns + ` FROM profile_change_requests`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile change requests: %w", err)
	}
	defer rows.Close()

	requests := []models.ProfileChangeRequest{}
	for rows.Next() {
		m, err := scanProfileRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile change request row: %w", err)
		}
		requests = append(requests, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile change request rows: %w", err)
	}

	return mapping.ToDomainProfileChangeRequestSlice(requests), nil
}

// ApplyReview persists the outcome of a review. On approval the tenant's
// updated profile is written in the same transaction, so the request can
// never be marked approved without the profile change landing.
func (r *PgxProfileRequestRepository) ApplyReview(ctx context.Context, req domain.ProfileChangeRequest, updatedTenant *domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	m := mapping.ToModelProfileChangeRequest(req)
	query := `
		UPDATE profile_change_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE request_id = $1 AND status = 'pending';
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.RequestID,
		m.Status,
		m.ReviewedAt,
		m.ReviewedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile change request %s: %w", m.RequestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The request was reviewed concurrently or never existed.
		return fmt.Errorf("%w: request %s is not pending", apperrors.ErrConflict, m.RequestID)
	}

	if updatedTenant != nil {
		mu := mapping.ToModelUser(*updatedTenant)
		userQuery := `
			UPDATE users
			SET full_name = $2, email = $3, phone_number = $4, last_updated_at = $5, last_updated_by = $6
			WHERE user_id = $1 AND deleted_at IS NULL;
		`
		userTag, err := tx.Exec(ctx, userQuery,
			mu.UserID,
			mu.FullName,
			mu.Email,
			mu.PhoneNumber,
			mu.LastUpdatedAt,
			mu.LastUpdatedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, mu.Email)
			}
			return fmt.Errorf("failed to apply approved changes to user %s: %w", mu.UserID, err)
		}
		if userTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: tenant %s not found while applying approved changes", apperrors.ErrNotFound, mu.UserID)
		}
	}

	return r.Commit(ctx, tx)
}
