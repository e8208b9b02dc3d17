package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	"github.com/sjrent/sjrent_backend/internal/models"
	"github.com/sjrent/sjrent_backend/internal/utils/mapping"
	"github.com/sjrent/sjrent_backend/internal/utils/pagination"
)

const motorcycleColumns = `motorcycle_id, brand, model, year, color, plate_number, engine_size, condition, daily_rate, status,
       created_at, created_by, last_updated_at, last_updated_by`

type PgxMotorcycleRepository struct {
	BaseRepository
}

// newPgxMotorcycleRepository creates a new repository for fleet data.
func newPgxMotorcycleRepository(pool *pgxpool.Pool) portsrepo.MotorcycleRepositoryWithTx {
	return &PgxMotorcycleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MotorcycleRepositoryWithTx = (*PgxMotorcycleRepository)(nil)

func scanMotorcycle(row pgx.Row) (*models.Motorcycle, error) {
	var m models.Motorcycle
	err := row.Scan(
		&m.MotorcycleID,
		&m.Brand,
		&m.Model,
		&m.Year,
		&m.Color,
		&m.PlateNumber,
		&m.EngineSize,
		&m.Condition,
		&m.DailyRate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMotorcycle persists a new motorcycle.
func (r *PgxMotorcycleRepository) SaveMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error {
	m := mapping.ToModelMotorcycle(motorcycle)
	query := `
		INSERT INTO motorcycles (motorcycle_id, brand, model, year, color, plate_number, engine_size, condition, daily_rate, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MotorcycleID, m.Brand, m.Model, m.Year, m.Color, m.PlateNumber, m.EngineSize, m.Condition, m.DailyRate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: motorcycle with plate number %s already exists", apperrors.ErrDuplicate, m.PlateNumber)
		}
		return apperrors.NewAppError(500, "failed to insert motorcycle "+m.MotorcycleID, err)
	}
	return nil
}

// FindMotorcycleByID retrieves a motorcycle by its ID.
func (r *PgxMotorcycleRepository) FindMotorcycleByID(ctx context.Context, motorcycleID string) (*domain.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE motorcycle_id = $1;`
	m, err := scanMotorcycle(r.Pool.QueryRow(ctx, query, motorcycleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("motorcycle " + motorcycleID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query motorcycle "+motorcycleID, err)
	}
	motorcycle := mapping.ToDomainMotorcycle(*m)
	return &motorcycle, nil
}

// ListMotorcycles retrieves a paginated list of motorcycles using token-based
// pagination, ordered by creation time descending.
func (r *PgxMotorcycleRepository) ListMotorcycles(ctx context.Context, limit int, nextToken *string, status *domain.MotorcycleStatus) ([]domain.Motorcycle, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles`
	args := []interface{}{}
	conditions := ""

	addCondition := func(cond string) {
		if conditions == "" {
			conditions = " WHERE " + cond
		} else {
			conditions += " AND " + cond
		}
	}

	if status != nil {
		args = append(args, string(*status))
		addCondition("status = $" + strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		addCondition("created_at < $" + strconv.Itoa(len(args)))
	}

	args = append(args, fetchLimit)
	query += conditions + " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query motorcycles", err)
	}
	defer rows.Close()

	modelMotorcycles := make([]models.Motorcycle, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanMotorcycle(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan motorcycle row", scanErr)
		}
		modelMotorcycles = append(modelMotorcycles, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating motorcycle rows", err)
	}

	var nextTokenVal *string
	results := modelMotorcycles
	if len(modelMotorcycles) > limit {
		last := modelMotorcycles[limit-1]
		token := pagination.EncodeDateBasedToken(last.CreatedAt)
		nextTokenVal = &token
		results = modelMotorcycles[:limit]
	}

	return mapping.ToDomainMotorcycleSlice(results), nextTokenVal, nil
}

// CountMotorcyclesByStatus returns the number of motorcycles in the given status.
func (r *PgxMotorcycleRepository) CountMotorcyclesByStatus(ctx context.Context, status domain.MotorcycleStatus) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM motorcycles WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count motorcycles by status", err)
	}
	return count, nil
}

// UpdateMotorcycle updates the details of an existing motorcycle.
func (r *PgxMotorcycleRepository) UpdateMotorcycle(ctx context.Context, motorcycle domain.Motorcycle) error {
	m := mapping.ToModelMotorcycle(motorcycle)
	query := `
		UPDATE motorcycles
		SET brand = $2, model = $3, year = $4, color = $5, plate_number = $6, engine_size = $7, condition = $8, daily_rate = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE motorcycle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.MotorcycleID, m.Brand, m.Model, m.Year, m.Color, m.PlateNumber, m.EngineSize, m.Condition, m.DailyRate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: motorcycle with plate number %s already exists", apperrors.ErrDuplicate, m.PlateNumber)
		}
		return apperrors.NewAppError(500, "failed to update motorcycle "+m.MotorcycleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("motorcycle " + m.MotorcycleID + " not found")
	}
	return nil
}

// UpdateMotorcycleStatus transitions a motorcycle to the given status.
func (r *PgxMotorcycleRepository) UpdateMotorcycleStatus(ctx context.Context, motorcycleID string, status domain.MotorcycleStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE motorcycles
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE motorcycle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, motorcycleID, string(status), updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of motorcycle "+motorcycleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("motorcycle " + motorcycleID + " not found")
	}
	return nil
}

// DeleteMotorcycle removes a motorcycle. Foreign keys restrict deletion while
// rentals or expenses still reference it.
func (r *PgxMotorcycleRepository) DeleteMotorcycle(ctx context.Context, motorcycleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM motorcycles WHERE motorcycle_id = $1;`, motorcycleID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: motorcycle %s is still referenced by other records", apperrors.ErrConflict, motorcycleID)
		}
		return apperrors.NewAppError(500, "failed to delete motorcycle "+motorcycleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("motorcycle " + motorcycleID + " not found")
	}
	return nil
}
