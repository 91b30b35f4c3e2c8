package export

import (
	"context"
	"database/sql"
	"fmt"

	"go-temple/internal/config"
	"go-temple/internal/features/donation"
	"go-temple/internal/features/expense"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Warehouse mirrors donation and expense documents into a Postgres
// reporting database. When no REPORTING_DB_URL is configured the
// warehouse is disabled and Run fails fast.
type Warehouse struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewWarehouse(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*Warehouse, error) {
	w := &Warehouse{logger: logger}

	if cfg.ReportingDBURL == "" {
		logger.Info("reporting warehouse disabled, REPORTING_DB_URL not set")
		return w, nil
	}

	db, err := sql.Open("postgres", cfg.ReportingDBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open reporting database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	w.db = db

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return fmt.Errorf("failed to ping reporting database: %w", err)
			}
			return w.ensureSchema(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return w, nil
}

// Enabled reports whether a reporting database is configured.
func (w *Warehouse) Enabled() bool {
	return w.db != nil
}

func (w *Warehouse) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS donations (
			id TEXT PRIMARY KEY,
			temple_id TEXT NOT NULL,
			donor_name TEXT NOT NULL,
			seva_name TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			village TEXT,
			tehsil TEXT,
			district TEXT,
			state TEXT,
			country TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			temple_id TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			spent_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS donations_temple_idx ON donations (temple_id)`,
		`CREATE INDEX IF NOT EXISTS expenses_temple_idx ON expenses (temple_id)`,
	}

	for _, stmt := range statements {
		if _, err := w.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure reporting schema: %w", err)
		}
	}
	return nil
}

// UpsertDonations writes the donations into the warehouse, replacing rows
// that were exported before.
func (w *Warehouse) UpsertDonations(ctx context.Context, donations []donation.Donation) error {
	const query = `
		INSERT INTO donations
			(id, temple_id, donor_name, seva_name, payment_method, amount,
			 village, tehsil, district, state, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			donor_name = EXCLUDED.donor_name,
			seva_name = EXCLUDED.seva_name,
			payment_method = EXCLUDED.payment_method,
			amount = EXCLUDED.amount,
			village = EXCLUDED.village,
			tehsil = EXCLUDED.tehsil,
			district = EXCLUDED.district,
			state = EXCLUDED.state,
			country = EXCLUDED.country,
			updated_at = EXCLUDED.updated_at
	`

	for _, d := range donations {
		_, err := w.db.ExecContext(ctx, query,
			d.ID.Hex(), d.TempleID.Hex(), d.DonorName, d.SevaName,
			d.PaymentMethod, d.DonationAmount,
			d.Village, d.Tehsil, d.District, d.State, d.Country,
			d.CreatedAt, d.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert donation %s: %w", d.ID.Hex(), err)
		}
	}
	return nil
}

// UpsertExpenses writes the expenses into the warehouse.
func (w *Warehouse) UpsertExpenses(ctx context.Context, expenses []expense.Expense) error {
	const query = `
		INSERT INTO expenses
			(id, temple_id, title, category, status, amount, spent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			spent_at = EXCLUDED.spent_at,
			updated_at = EXCLUDED.updated_at
	`

	for _, e := range expenses {
		_, err := w.db.ExecContext(ctx, query,
			e.ID.Hex(), e.TempleID.Hex(), e.Title, e.Category, e.Status,
			e.Amount, e.Date, e.CreatedAt, e.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert expense %s: %w", e.ID.Hex(), err)
		}
	}
	return nil
}
