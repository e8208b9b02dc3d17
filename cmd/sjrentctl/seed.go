package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
	"github.com/sjrent/sjrent_backend/internal/platform/config"
	"github.com/sjrent/sjrent_backend/internal/repositories/database/pgsql"
	"github.com/sjrent/sjrent_backend/pkg/database"
)

func newSeedCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo users, fleet, customers and journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			ctx = middleware.ContextWithLogger(ctx, logger)

			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer dbPool.Close()

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			return runSeed(ctx, container, logger)
		},
	}
}

// runSeed creates demo data through the service layer so every business rule
// (availability locking, deposit journals, status flips) applies to the seed too.
func runSeed(ctx context.Context, container *portssvc.ServiceContainer, logger *slog.Logger) error {
	logger.Info("Seeding database...")

	owner, err := container.User.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Ahmad Rental Owner",
		Email:    "owner@sjrent.com",
		Password: "password",
		Role:     "OWNER",
	})
	if err != nil {
		return fmt.Errorf("seeding owner: %w", err)
	}
	if _, err := container.User.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Sarah Manager",
		Email:    "manager@sjrent.com",
		Password: "password",
		Role:     "MANAGER",
	}); err != nil {
		return fmt.Errorf("seeding manager: %w", err)
	}
	actor := owner.UserID

	customerReqs := []dto.CreateCustomerRequest{
		{Name: "Budi Santoso", Email: "budi@email.com", Phone: "081234567890", Address: "Jl. Merdeka No. 123, Jakarta", LicenseNumber: "LIC001234567"},
		{Name: "Siti Rahayu", Email: "siti@email.com", Phone: "082345678901", Address: "Jl. Sudirman No. 456, Bandung", LicenseNumber: "LIC002345678"},
		{Name: "Rudi Hermawan", Email: "rudi@email.com", Phone: "083456789012", Address: "Jl. Gatot Subroto No. 789, Surabaya", LicenseNumber: "LIC003456789"},
		{Name: "Maya Sari", Email: "maya@email.com", Phone: "084567890123", Address: "Jl. Ahmad Yani No. 321, Yogyakarta", LicenseNumber: "LIC004567890"},
		{Name: "Andi Pratama", Email: "andi@email.com", Phone: "085678901234", Address: "Jl. Diponegoro No. 654, Medan", LicenseNumber: "LIC005678901"},
	}
	customers := make([]*domain.Customer, 0, len(customerReqs))
	for _, req := range customerReqs {
		cust, err := container.Customer.CreateCustomer(ctx, req, actor)
		if err != nil {
			return fmt.Errorf("seeding customer %s: %w", req.Name, err)
		}
		customers = append(customers, cust)
	}

	motorcycleReqs := []dto.CreateMotorcycleRequest{
		{Brand: "Honda", Model: "Beat Street", Year: 2023, Color: "White", PlateNumber: "B1234AB", EngineSize: 110, Condition: "Excellent condition, regularly serviced", DailyRate: decimal.NewFromInt(45000)},
		{Brand: "Yamaha", Model: "Nmax 155", Year: 2022, Color: "Blue", PlateNumber: "B5678CD", EngineSize: 155, Condition: "Good condition, minor scratches", DailyRate: decimal.NewFromInt(75000)},
		{Brand: "Honda", Model: "Vario 160", Year: 2023, Color: "Red", PlateNumber: "B9012EF", EngineSize: 160, Condition: "Like new, premium package", DailyRate: decimal.NewFromInt(80000)},
		{Brand: "Suzuki", Model: "Address 110", Year: 2021, Color: "Black", PlateNumber: "B3456GH", EngineSize: 110, Condition: "Under maintenance - brake service", DailyRate: decimal.NewFromInt(50000)},
		{Brand: "Kawasaki", Model: "Ninja 250", Year: 2022, Color: "Green", PlateNumber: "B7890IJ", EngineSize: 250, Condition: "Sport bike, perfect for touring", DailyRate: decimal.NewFromInt(120000)},
		{Brand: "Honda", Model: "PCX 160", Year: 2023, Color: "Silver", PlateNumber: "B2468KL", EngineSize: 160, Condition: "Premium scooter, top condition", DailyRate: decimal.NewFromInt(90000)},
		{Brand: "Yamaha", Model: "Aerox 155", Year: 2022, Color: "Orange", PlateNumber: "B1357MN", EngineSize: 155, Condition: "Sporty design, great performance", DailyRate: decimal.NewFromInt(70000)},
		{Brand: "Honda", Model: "Scoopy 110", Year: 2021, Color: "Pink", PlateNumber: "B8642OP", EngineSize: 110, Condition: "Engine overhaul needed", DailyRate: decimal.NewFromInt(40000)},
	}
	motorcycles := make([]*domain.Motorcycle, 0, len(motorcycleReqs))
	for _, req := range motorcycleReqs {
		moto, err := container.Motorcycle.CreateMotorcycle(ctx, req, actor)
		if err != nil {
			return fmt.Errorf("seeding motorcycle %s: %w", req.PlateNumber, err)
		}
		motorcycles = append(motorcycles, moto)
	}

	// Bikes that are not on the road right now
	if _, err := container.Motorcycle.SetMotorcycleStatus(ctx, motorcycles[3].MotorcycleID, domain.MotorcycleMaintenance, actor); err != nil {
		return fmt.Errorf("parking motorcycle for maintenance: %w", err)
	}
	if _, err := container.Motorcycle.SetMotorcycleStatus(ctx, motorcycles[7].MotorcycleID, domain.MotorcycleOutOfService, actor); err != nil {
		return fmt.Errorf("retiring motorcycle: %w", err)
	}

	// Completed rentals: opened and then closed with the agreed amount, so the
	// journal ends up with both the deposit and the final payment.
	completed := []struct {
		motorcycle  *domain.Motorcycle
		customer    *domain.Customer
		start, end  time.Time
		deposit     int64
		totalAmount int64
		notes       string
	}{
		{motorcycles[0], customers[2], date(2024, 9, 20), date(2024, 9, 23), 150000, 135000, "Returned on time, no issues"},
		{motorcycles[2], customers[3], date(2024, 9, 15), date(2024, 9, 18), 200000, 240000, "Customer very satisfied"},
	}
	for _, seed := range completed {
		rental, err := container.Rental.CreateRental(ctx, dto.CreateRentalRequest{
			MotorcycleID:   seed.motorcycle.MotorcycleID,
			CustomerID:     seed.customer.CustomerID,
			StartDate:      seed.start,
			PlannedEndDate: seed.end,
			Deposit:        decimal.NewFromInt(seed.deposit),
			Notes:          seed.notes,
		}, actor)
		if err != nil {
			return fmt.Errorf("seeding completed rental on %s: %w", seed.motorcycle.PlateNumber, err)
		}
		if _, err := container.Rental.CompleteRental(ctx, rental.RentalID, dto.CompleteRentalRequest{
			TotalAmount: decimal.NewFromInt(seed.totalAmount),
		}, actor); err != nil {
			return fmt.Errorf("completing seeded rental on %s: %w", seed.motorcycle.PlateNumber, err)
		}
	}

	// Open rentals keep their motorcycles in RENTED state.
	active := []struct {
		motorcycle *domain.Motorcycle
		customer   *domain.Customer
		start, end time.Time
		deposit    int64
		notes      string
	}{
		{motorcycles[1], customers[0], date(2024, 10, 1), date(2024, 10, 5), 200000, "Customer requested helmet and rain coat"},
		{motorcycles[5], customers[1], date(2024, 10, 2), date(2024, 10, 6), 250000, "Tourist rental for city tour"},
	}
	for _, seed := range active {
		if _, err := container.Rental.CreateRental(ctx, dto.CreateRentalRequest{
			MotorcycleID:   seed.motorcycle.MotorcycleID,
			CustomerID:     seed.customer.CustomerID,
			StartDate:      seed.start,
			PlannedEndDate: seed.end,
			Deposit:        decimal.NewFromInt(seed.deposit),
			Notes:          seed.notes,
		}, actor); err != nil {
			return fmt.Errorf("seeding active rental on %s: %w", seed.motorcycle.PlateNumber, err)
		}
	}

	if _, err := container.Finance.CreateIncome(ctx, dto.CreateIncomeRequest{
		Description: "Late return fee - Previous customer",
		Amount:      decimal.NewFromInt(50000),
		Category:    "LATE_FEE",
		Source:      "Penalty fee for 1 day late return",
		Date:        date(2024, 9, 25),
	}, actor); err != nil {
		return fmt.Errorf("seeding late fee income: %w", err)
	}

	expenseReqs := []dto.CreateExpenseRequest{
		{Description: "Fuel for Honda Beat (B1234AB)", Amount: decimal.NewFromInt(50000), Category: "FUEL", Date: date(2024, 9, 28), MotorcycleID: &motorcycles[0].MotorcycleID, Vendor: "Shell Gas Station"},
		{Description: "Monthly insurance premium - All motorcycles", Amount: decimal.NewFromInt(800000), Category: "INSURANCE", Date: date(2024, 10, 1), Vendor: "Asuransi Jasa Raharja"},
		{Description: "Brake service for Suzuki Address (B3456GH)", Amount: decimal.NewFromInt(150000), Category: "MAINTENANCE", Date: date(2024, 9, 30), MotorcycleID: &motorcycles[3].MotorcycleID, Vendor: "Honda Authorized Service"},
		{Description: "Oil change for Yamaha Nmax (B5678CD)", Amount: decimal.NewFromInt(75000), Category: "MAINTENANCE", Date: date(2024, 9, 26), MotorcycleID: &motorcycles[1].MotorcycleID, Vendor: "Yamaha Service Center"},
		{Description: "Spare parts - brake pads and filters", Amount: decimal.NewFromInt(200000), Category: "SPARE_PARTS", Date: date(2024, 9, 20), Vendor: "Motor Parts Shop"},
		{Description: "Office rent - October 2024", Amount: decimal.NewFromInt(2000000), Category: "OFFICE", Date: date(2024, 10, 1), Vendor: "Property Management"},
		{Description: "Cleaning supplies and equipment", Amount: decimal.NewFromInt(125000), Category: "CLEANING", Date: date(2024, 9, 22), Vendor: "Cleaning Supply Store"},
		{Description: "Social media advertising", Amount: decimal.NewFromInt(300000), Category: "MARKETING", Date: date(2024, 9, 15), Vendor: "Facebook Ads"},
	}
	for _, req := range expenseReqs {
		if _, err := container.Finance.CreateExpense(ctx, req, actor); err != nil {
			return fmt.Errorf("seeding expense %q: %w", req.Description, err)
		}
	}

	assetReqs := []dto.CreateAssetRequest{
		{Name: "Workshop Equipment Set", Description: "Complete motorcycle maintenance tools and equipment", Category: "TOOLS", Value: decimal.NewFromInt(15000000), PurchaseDate: date(2023, 1, 15), Condition: "Good", Location: "Main Workshop"},
		{Name: "Office Furniture", Description: "Desk, chairs, filing cabinets for office", Category: "FURNITURE", Value: decimal.NewFromInt(8000000), PurchaseDate: date(2023, 2, 1), Condition: "Excellent", Location: "Office Building"},
		{Name: "CCTV Security System", Description: "8-camera security system with DVR", Category: "ELECTRONICS", Value: decimal.NewFromInt(5000000), PurchaseDate: date(2023, 3, 10), Condition: "Excellent", Location: "Entire Facility"},
		{Name: "Helmet Collection", Description: "20 safety helmets for customer rental", Category: "EQUIPMENT", Value: decimal.NewFromInt(3000000), PurchaseDate: date(2023, 4, 1), Condition: "Good", Location: "Storage Room"},
	}
	for _, req := range assetReqs {
		if _, err := container.Finance.CreateAsset(ctx, req, actor); err != nil {
			return fmt.Errorf("seeding asset %q: %w", req.Name, err)
		}
	}

	logger.Info("Database seeding completed",
		slog.Int("customers", len(customerReqs)),
		slog.Int("motorcycles", len(motorcycleReqs)),
		slog.Int("rentals", len(completed)+len(active)),
		slog.Int("expenses", len(expenseReqs)),
		slog.Int("assets", len(assetReqs)),
		slog.String("login_email", "owner@sjrent.com"))
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
