// Package db - Lead records
package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/internal/errors"
)

// Lead is a submitted quote request
type Lead struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
	Brand string `json:"brand"`

	CycleMonths  int64           `json:"cycle_months"`
	OneTimeTotal decimal.Decimal `json:"one_time_total"`
	InfraAnnual  decimal.Decimal `json:"infra_annual"`
	ServiceTotal decimal.Decimal `json:"service_total"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	MediaBudget  decimal.Decimal `json:"media_budget"`
	Summary      string          `json:"summary"`
}

// LeadStore persists leads
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore creates a lead store over an open database
func NewLeadStore(conn *sql.DB) *LeadStore {
	return &LeadStore{db: conn}
}

// Insert stores a lead and returns its id
func (s *LeadStore) Insert(ctx context.Context, l Lead) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (
			name, email, phone, note, brand,
			cycle_months, one_time_total, infra_annual,
			service_total, grand_total, media_budget, summary
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Name, l.Email, l.Phone, l.Note, l.Brand,
		l.CycleMonths, l.OneTimeTotal.String(), l.InfraAnnual.String(),
		l.ServiceTotal.String(), l.GrandTotal.String(), l.MediaBudget.String(), l.Summary,
	)
	if err != nil {
		return 0, errors.Database("insert lead", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Database("read lead id", err)
	}
	return id, nil
}

// List returns the newest leads, most recent first
func (s *LeadStore) List(ctx context.Context, limit int) ([]Lead, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, name, email, phone, note, brand,
		       cycle_months, one_time_total, infra_annual,
		       service_total, grand_total, media_budget, summary
		FROM leads
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Database("query leads", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var (
			l                                                      Lead
			createdAt                                              string
			oneTime, infraAnnual, serviceTotal, grand, mediaBudget string
		)
		if err := rows.Scan(
			&l.ID, &createdAt, &l.Name, &l.Email, &l.Phone, &l.Note, &l.Brand,
			&l.CycleMonths, &oneTime, &infraAnnual,
			&serviceTotal, &grand, &mediaBudget, &l.Summary,
		); err != nil {
			return nil, errors.Database("scan lead", err)
		}

		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		l.OneTimeTotal = mustDecimal(oneTime)
		l.InfraAnnual = mustDecimal(infraAnnual)
		l.ServiceTotal = mustDecimal(serviceTotal)
		l.GrandTotal = mustDecimal(grand)
		l.MediaBudget = mustDecimal(mediaBudget)
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Database("iterate leads", err)
	}
	return leads, nil
}

// mustDecimal parses stored amounts; stored values are written by us,
// so a parse failure degrades to zero rather than failing the read
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
