package export

import (
	"context"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/donation"
	"go-temple/internal/features/expense"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RunResult reports how many rows one export run mirrored.
type RunResult struct {
	Donations int `json:"donations"`
	Expenses  int `json:"expenses"`
}

type ExportService interface {
	Run(ctx context.Context, templeID primitive.ObjectID) (*RunResult, error)
}

type ExportServiceImpl struct {
	Warehouse    *Warehouse
	DonationRepo donation.DonationRepository
	ExpenseRepo  expense.ExpenseRepository
	Logger       *zap.Logger
}

func NewExportService(
	warehouse *Warehouse,
	donationRepo donation.DonationRepository,
	expenseRepo expense.ExpenseRepository,
	logger *zap.Logger,
) ExportService {
	return &ExportServiceImpl{
		Warehouse:    warehouse,
		DonationRepo: donationRepo,
		ExpenseRepo:  expenseRepo,
		Logger:       logger,
	}
}

// Run mirrors one temple's donations and expenses into the warehouse.
func (s *ExportServiceImpl) Run(ctx context.Context, templeID primitive.ObjectID) (*RunResult, error) {
	if !s.Warehouse.Enabled() {
		return nil, apperr.Validation("Reporting warehouse is not configured.")
	}

	donations, err := s.DonationRepo.FindByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}
	if err := s.Warehouse.UpsertDonations(ctx, donations); err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.FindByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}
	if err := s.Warehouse.UpsertExpenses(ctx, expenses); err != nil {
		return nil, err
	}

	s.Logger.Info("warehouse export complete",
		zap.String("templeId", templeID.Hex()),
		zap.Int("donations", len(donations)),
		zap.Int("expenses", len(expenses)))

	return &RunResult{
		Donations: len(donations),
		Expenses:  len(expenses),
	}, nil
}
