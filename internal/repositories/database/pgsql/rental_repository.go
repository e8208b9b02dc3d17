package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portsrepo "github.com/sjrent/sjrent_backend/internal/core/ports/repositories"
	"github.com/sjrent/sjrent_backend/internal/models"
	"github.com/sjrent/sjrent_backend/internal/utils/mapping"
	"github.com/sjrent/sjrent_backend/internal/utils/pagination"
)

// rentalJoinedColumns selects the rental row plus the motorcycle and customer
// summary columns every read path returns.
const rentalJoinedColumns = `r.rental_id, r.motorcycle_id, r.customer_id, r.start_date, r.planned_end_date, r.end_date,
       r.daily_rate, r.deposit, r.total_amount, r.status, r.notes,
       r.created_at, r.created_by, r.last_updated_at, r.last_updated_by,
       m.brand, m.model, m.plate_number, c.name, c.phone`

const rentalJoinedFrom = ` FROM rentals r
       JOIN motorcycles m ON m.motorcycle_id = r.motorcycle_id
       JOIN customers c ON c.customer_id = r.customer_id`

type PgxRentalRepository struct {
	BaseRepository
}

// newPgxRentalRepository creates a new repository for rental data.
func newPgxRentalRepository(pool *pgxpool.Pool) portsrepo.RentalRepositoryWithTx {
	return &PgxRentalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RentalRepositoryWithTx = (*PgxRentalRepository)(nil)

func scanJoinedRental(row pgx.Row) (*models.Rental, error) {
	var m models.Rental
	err := row.Scan(
		&m.RentalID,
		&m.MotorcycleID,
		&m.CustomerID,
		&m.StartDate,
		&m.PlannedEndDate,
		&m.EndDate,
		&m.DailyRate,
		&m.Deposit,
		&m.TotalAmount,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.MotorcycleBrand,
		&m.MotorcycleModel,
		&m.PlateNumber,
		&m.CustomerName,
		&m.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// insertIncomeInTx writes a ledger entry as part of a rental transaction.
func insertIncomeInTx(ctx context.Context, tx pgx.Tx, entry domain.Income) error {
	m := mapping.ToModelIncome(entry)
	query := `
		INSERT INTO income (income_id, description, amount, category, source, date, rental_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.IncomeID, m.Description, m.Amount, m.Category, m.Source, m.Date, m.RentalID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert income entry "+m.IncomeID, err)
	}
	return nil
}

// SaveRental opens a rental inside one transaction: the motorcycle row is
// locked, re-checked for availability, flipped to RENTED, and the deposit
// entry lands in the ledger together with the rental row.
func (r *PgxRentalRepository) SaveRental(ctx context.Context, rental domain.Rental, depositEntry *domain.Income) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM motorcycles WHERE motorcycle_id = $1 FOR UPDATE;`, rental.MotorcycleID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("motorcycle " + rental.MotorcycleID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock motorcycle "+rental.MotorcycleID, err)
	}
	if models.MotorcycleStatus(status) != models.MotorcycleAvailable {
		return fmt.Errorf("%w: motorcycle %s is %s", apperrors.ErrConflict, rental.MotorcycleID, status)
	}

	m := mapping.ToModelRental(rental)
	rentalQuery := `
		INSERT INTO rentals (rental_id, motorcycle_id, customer_id, start_date, planned_end_date, end_date,
			daily_rate, deposit, total_amount, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, rentalQuery,
		m.RentalID, m.MotorcycleID, m.CustomerID, m.StartDate, m.PlannedEndDate, m.EndDate,
		m.DailyRate, m.Deposit, m.TotalAmount, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert rental "+m.RentalID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE motorcycles SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE motorcycle_id = $1;`,
		rental.MotorcycleID, string(models.MotorcycleRented), rental.CreatedAt, rental.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark motorcycle "+rental.MotorcycleID+" as rented", err)
	}

	if depositEntry != nil {
		if err := insertIncomeInTx(ctx, tx, *depositEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// lockOpenRental locks the rental row and verifies it is still open.
func lockOpenRental(ctx context.Context, tx pgx.Tx, rentalID string) (*models.Rental, error) {
	var m models.Rental
	err := tx.QueryRow(ctx,
		`SELECT rental_id, motorcycle_id, status FROM rentals WHERE rental_id = $1 FOR UPDATE;`, rentalID,
	).Scan(&m.RentalID, &m.MotorcycleID, &m.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("rental " + rentalID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock rental "+rentalID, err)
	}
	if m.Status != models.RentalActive && m.Status != models.RentalOverdue {
		return nil, fmt.Errorf("%w: rental %s is already %s", apperrors.ErrConflict, rentalID, m.Status)
	}
	return &m, nil
}

// CompleteRental closes a rental in one transaction: the rental row is locked
// and re-checked, marked COMPLETED with the agreed total, the motorcycle goes
// back to AVAILABLE and the remaining payment, if any, lands in the ledger.
func (r *PgxRentalRepository) CompleteRental(ctx context.Context, rentalID string, endDate time.Time, totalAmount decimal.Decimal, finalPaymentEntry *domain.Income, updatedByUserID string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockOpenRental(ctx, tx, rentalID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE rentals
		SET status = $2, end_date = $3, total_amount = $4, last_updated_at = $5, last_updated_by = $6
		WHERE rental_id = $1;`,
		rentalID, string(models.RentalCompleted), endDate, totalAmount, updatedAt, updatedByUserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to complete rental "+rentalID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE motorcycles SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE motorcycle_id = $1;`,
		locked.MotorcycleID, string(models.MotorcycleAvailable), updatedAt, updatedByUserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to release motorcycle "+locked.MotorcycleID, err)
	}

	if finalPaymentEntry != nil {
		if err := insertIncomeInTx(ctx, tx, *finalPaymentEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// CancelRental cancels a rental in one transaction and frees the motorcycle.
// Ledger entries recorded at creation are left untouched.
func (r *PgxRentalRepository) CancelRental(ctx context.Context, rentalID string, updatedByUserID string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockOpenRental(ctx, tx, rentalID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE rentals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE rental_id = $1;`,
		rentalID, string(models.RentalCancelled), updatedAt, updatedByUserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to cancel rental "+rentalID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE motorcycles SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE motorcycle_id = $1;`,
		locked.MotorcycleID, string(models.MotorcycleAvailable), updatedAt, updatedByUserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to release motorcycle "+locked.MotorcycleID, err)
	}

	return r.Commit(ctx, tx)
}

// MarkOverdueRentals flips every ACTIVE rental past its planned end date to
// OVERDUE. The guarded WHERE clause makes concurrent sweeps idempotent and
// leaves rentals completed mid-sweep alone.
func (r *PgxRentalRepository) MarkOverdueRentals(ctx context.Context, asOf time.Time, updatedByUserID string, updatedAt time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE rentals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE status = $1 AND planned_end_date < $5;`,
		string(models.RentalActive), string(models.RentalOverdue), updatedAt, updatedByUserID, asOf,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark overdue rentals", err)
	}
	return tag.RowsAffected(), nil
}

// FindRentalByID retrieves a rental with its motorcycle and customer summaries.
func (r *PgxRentalRepository) FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalJoinedColumns + rentalJoinedFrom + ` WHERE r.rental_id = $1;`
	m, err := scanJoinedRental(r.Pool.QueryRow(ctx, query, rentalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("rental " + rentalID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query rental "+rentalID, err)
	}
	rental := mapping.ToDomainRental(*m)
	return &rental, nil
}

// ListRentals retrieves a paginated list of rentals ordered by start date
// descending with creation time as the tie-breaker.
func (r *PgxRentalRepository) ListRentals(ctx context.Context, limit int, nextToken *string, status *domain.RentalStatus) ([]domain.Rental, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + rentalJoinedColumns + rentalJoinedFrom
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
		addCondition("r.status = $" + strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastStartDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastStartDate, lastCreatedAt)
		addCondition("(r.start_date, r.created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")")
	}

	args = append(args, fetchLimit)
	query += conditions + " ORDER BY r.start_date DESC, r.created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query rentals", err)
	}
	defer rows.Close()

	modelRentals := make([]models.Rental, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJoinedRental(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan rental row", scanErr)
		}
		modelRentals = append(modelRentals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating rental rows", err)
	}

	var nextTokenVal *string
	results := modelRentals
	if len(modelRentals) > limit {
		last := modelRentals[limit-1]
		token := pagination.EncodeToken(last.StartDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelRentals[:limit]
	}

	return mapping.ToDomainRentalSlice(results), nextTokenVal, nil
}

// ListOpenRentalsByMotorcycle retrieves the ACTIVE and OVERDUE rentals for a motorcycle.
func (r *PgxRentalRepository) ListOpenRentalsByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalJoinedColumns + rentalJoinedFrom + `
		WHERE r.motorcycle_id = $1 AND r.status IN ($2, $3)
		ORDER BY r.start_date DESC;`
	rows, err := r.Pool.Query(ctx, query, motorcycleID, string(models.RentalActive), string(models.RentalOverdue))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open rentals for motorcycle "+motorcycleID, err)
	}
	defer rows.Close()

	var modelRentals []models.Rental
	for rows.Next() {
		m, scanErr := scanJoinedRental(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rental row", scanErr)
		}
		modelRentals = append(modelRentals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rental rows", err)
	}

	return mapping.ToDomainRentalSlice(modelRentals), nil
}

// ListOverdueRentals retrieves every rental currently in OVERDUE, the ones
// most overdue first.
func (r *PgxRentalRepository) ListOverdueRentals(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalJoinedColumns + rentalJoinedFrom + `
		WHERE r.status = $1
		ORDER BY r.planned_end_date ASC;`
	rows, err := r.Pool.Query(ctx, query, string(models.RentalOverdue))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query overdue rentals", err)
	}
	defer rows.Close()

	var modelRentals []models.Rental
	for rows.Next() {
		m, scanErr := scanJoinedRental(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rental row", scanErr)
		}
		modelRentals = append(modelRentals, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rental rows", err)
	}

	return mapping.ToDomainRentalSlice(modelRentals), nil
}

// CountRentalsByStatus returns the number of rentals in the given status.
func (r *PgxRentalRepository) CountRentalsByStatus(ctx context.Context, status domain.RentalStatus) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM rentals WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count rentals by status", err)
	}
	return count, nil
}
