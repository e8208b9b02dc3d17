package pgsql

import (
	"context"
	"errors"
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

// incomeJoinedColumns selects an income row plus the customer and motorcycle
// context when the entry is tied to a rental.
const incomeJoinedColumns = `i.income_id, i.description, i.amount, i.category, i.source, i.date, i.rental_id, i.user_id, i.created_at,
       c.name, m.plate_number`

const incomeJoinedFrom = ` FROM income i
       LEFT JOIN rentals r ON r.rental_id = i.rental_id
       LEFT JOIN customers c ON c.customer_id = r.customer_id
       LEFT JOIN motorcycles m ON m.motorcycle_id = r.motorcycle_id`

const expenseJoinedColumns = `e.expense_id, e.description, e.amount, e.category, e.date, e.motorcycle_id, e.receipt, e.vendor, e.user_id, e.created_at,
       m.brand, m.model, m.plate_number`

const expenseJoinedFrom = ` FROM expenses e
       LEFT JOIN motorcycles m ON m.motorcycle_id = e.motorcycle_id`

const assetColumns = `asset_id, name, description, category, value, purchase_date, condition, location, user_id,
       created_at, created_by, last_updated_at, last_updated_by`

type PgxFinanceRepository struct {
	BaseRepository
}

// newPgxFinanceRepository creates a new repository for the financial journal.
func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepositoryFacade {
	return &PgxFinanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FinanceRepositoryFacade = (*PgxFinanceRepository)(nil)

func scanJoinedIncome(row pgx.Row) (*models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.IncomeID,
		&m.Description,
		&m.Amount,
		&m.Category,
		&m.Source,
		&m.Date,
		&m.RentalID,
		&m.UserID,
		&m.CreatedAt,
		&m.CustomerName,
		&m.PlateNumber,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanJoinedExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Description,
		&m.Amount,
		&m.Category,
		&m.Date,
		&m.MotorcycleID,
		&m.Receipt,
		&m.Vendor,
		&m.UserID,
		&m.CreatedAt,
		&m.MotorcycleBrand,
		&m.MotorcycleModel,
		&m.PlateNumber,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.Value,
		&m.PurchaseDate,
		&m.Condition,
		&m.Location,
		&m.UserID,
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

// SaveIncome persists a new income entry.
func (r *PgxFinanceRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := mapping.ToModelIncome(income)
	query := `
		INSERT INTO income (income_id, description, amount, category, source, date, rental_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.IncomeID, m.Description, m.Amount, m.Category, m.Source, m.Date, m.RentalID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert income entry "+m.IncomeID, err)
	}
	return nil
}

// FindIncomeByID retrieves an income entry by its ID.
func (r *PgxFinanceRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	query := `SELECT ` + incomeJoinedColumns + incomeJoinedFrom + ` WHERE i.income_id = $1;`
	m, err := scanJoinedIncome(r.Pool.QueryRow(ctx, query, incomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("income entry " + incomeID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query income entry "+incomeID, err)
	}
	income := mapping.ToDomainIncome(*m)
	return &income, nil
}

// ListIncomes retrieves a paginated list of income entries ordered by entry
// date descending with creation time as the tie-breaker.
func (r *PgxFinanceRepository) ListIncomes(ctx context.Context, limit int, nextToken *string, category *domain.IncomeCategory) ([]domain.Income, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + incomeJoinedColumns + incomeJoinedFrom
	args := []interface{}{}
	conditions := ""

	addCondition := func(cond string) {
		if conditions == "" {
			conditions = " WHERE " + cond
		} else {
			conditions += " AND " + cond
		}
	}

	if category != nil {
		args = append(args, string(*category))
		addCondition("i.category = $" + strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		addCondition("(i.date, i.created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")")
	}

	args = append(args, fetchLimit)
	query += conditions + " ORDER BY i.date DESC, i.created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query income entries", err)
	}
	defer rows.Close()

	modelIncomes := make([]models.Income, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJoinedIncome(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan income row", scanErr)
		}
		modelIncomes = append(modelIncomes, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating income rows", err)
	}

	var nextTokenVal *string
	results := modelIncomes
	if len(modelIncomes) > limit {
		last := modelIncomes[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		results = modelIncomes[:limit]
	}

	return mapping.ToDomainIncomeSlice(results), nextTokenVal, nil
}

// SumIncome returns the total income amount, optionally bounded by [from, to).
func (r *PgxFinanceRepository) SumIncome(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, "income", from, to)
}

// SumExpenses returns the total expense amount, optionally bounded by [from, to).
func (r *PgxFinanceRepository) SumExpenses(ctx context.Context, from *time.Time, to *time.Time) (decimal.Decimal, error) {
	return r.sumAmounts(ctx, "expenses", from, to)
}

func (r *PgxFinanceRepository) sumAmounts(ctx context.Context, table string, from *time.Time, to *time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ` + table
	args := []interface{}{}
	conditions := ""
	if from != nil {
		args = append(args, *from)
		conditions = " WHERE date >= $" + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		if conditions == "" {
			conditions = " WHERE date < $" + strconv.Itoa(len(args))
		} else {
			conditions += " AND date < $" + strconv.Itoa(len(args))
		}
	}
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query+conditions+";", args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum "+table, err)
	}
	return total, nil
}

// DeleteIncome removes an income entry.
func (r *PgxFinanceRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM income WHERE income_id = $1;`, incomeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete income entry "+incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("income entry " + incomeID + " not found")
	}
	return nil
}

// SaveExpense persists a new expense entry.
func (r *PgxFinanceRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, description, amount, category, date, motorcycle_id, receipt, vendor, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.Description, m.Amount, m.Category, m.Date, m.MotorcycleID, m.Receipt, m.Vendor, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense entry "+m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense entry by its ID.
func (r *PgxFinanceRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseJoinedColumns + expenseJoinedFrom + ` WHERE e.expense_id = $1;`
	m, err := scanJoinedExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("expense entry " + expenseID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query expense entry "+expenseID, err)
	}
	expense := mapping.ToDomainExpense(*m)
	return &expense, nil
}

// ListExpenses retrieves a paginated list of expense entries ordered by entry
// date descending with creation time as the tie-breaker.
func (r *PgxFinanceRepository) ListExpenses(ctx context.Context, limit int, nextToken *string, category *domain.ExpenseCategory) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + expenseJoinedColumns + expenseJoinedFrom
	args := []interface{}{}
	conditions := ""

	addCondition := func(cond string) {
		if conditions == "" {
			conditions = " WHERE " + cond
		} else {
			conditions += " AND " + cond
		}
	}

	if category != nil {
		args = append(args, string(*category))
		addCondition("e.category = $" + strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		addCondition("(e.date, e.created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")")
	}

	args = append(args, fetchLimit)
	query += conditions + " ORDER BY e.date DESC, e.created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expense entries", err)
	}
	defer rows.Close()

	modelExpenses := make([]models.Expense, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJoinedExpense(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row", scanErr)
		}
		modelExpenses = append(modelExpenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows", err)
	}

	var nextTokenVal *string
	results := modelExpenses
	if len(modelExpenses) > limit {
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		results = modelExpenses[:limit]
	}

	return mapping.ToDomainExpenseSlice(results), nextTokenVal, nil
}

// DeleteExpense removes an expense entry.
func (r *PgxFinanceRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense entry "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense entry " + expenseID + " not found")
	}
	return nil
}

// SaveAsset persists a new asset.
func (r *PgxFinanceRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		INSERT INTO assets (asset_id, name, description, category, value, purchase_date, condition, location, user_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.Name, m.Description, m.Category, m.Value, m.PurchaseDate, m.Condition, m.Location, m.UserID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert asset "+m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxFinanceRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query asset "+assetID, err)
	}
	asset := mapping.ToDomainAsset(*m)
	return &asset, nil
}

// ListAssets retrieves a paginated list of assets ordered by purchase date descending.
func (r *PgxFinanceRepository) ListAssets(ctx context.Context, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + assetColumns + ` FROM assets`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastPurchaseDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastPurchaseDate, lastCreatedAt)
		query += " WHERE (purchase_date, created_at) < ($1, $2)"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY purchase_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query assets", err)
	}
	defer rows.Close()

	modelAssets := make([]models.Asset, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanAsset(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan asset row", scanErr)
		}
		modelAssets = append(modelAssets, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating asset rows", err)
	}

	var nextTokenVal *string
	results := modelAssets
	if len(modelAssets) > limit {
		last := modelAssets[limit-1]
		token := pagination.EncodeToken(last.PurchaseDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelAssets[:limit]
	}

	domainAssets := make([]domain.Asset, len(results))
	for i, m := range results {
		domainAssets[i] = mapping.ToDomainAsset(m)
	}
	return domainAssets, nextTokenVal, nil
}

// SumAssetValue returns the combined value of all assets.
func (r *PgxFinanceRepository) SumAssetValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(value), 0) FROM assets;`).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum asset values", err)
	}
	return total, nil
}

// UpdateAsset updates the details of an existing asset.
func (r *PgxFinanceRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		UPDATE assets
		SET name = $2, description = $3, category = $4, value = $5, condition = $6, location = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AssetID, m.Name, m.Description, m.Category, m.Value, m.Condition, m.Location,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update asset "+m.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("asset " + m.AssetID + " not found")
	}
	return nil
}

// DeleteAsset removes an asset.
func (r *PgxFinanceRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete asset "+assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("asset " + assetID + " not found")
	}
	return nil
}
