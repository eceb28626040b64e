// Package db_test - Lead store round trips
package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/db"
)

func openStore(t *testing.T) *db.LeadStore {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "leads.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db.NewLeadStore(conn)
}

func TestInsertAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	lead := db.Lead{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        "0530",
		Note:         "acele",
		Brand:        "Acme",
		CycleMonths:  6,
		OneTimeTotal: decimal.NewFromInt(90000),
		InfraAnnual:  decimal.NewFromInt(8400),
		ServiceTotal: decimal.NewFromInt(72000),
		GrandTotal:   decimal.NewFromInt(170400),
		MediaBudget:  decimal.NewFromInt(50000),
		Summary:      "• Ölçek: Kurumsal Web",
	}

	id, err := store.Insert(ctx, lead)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == 0 {
		t.Fatal("insert returned zero id")
	}

	leads, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("len(leads) = %d, want 1", len(leads))
	}

	got := leads[0]
	if got.Name != lead.Name || got.Email != lead.Email || got.Brand != lead.Brand {
		t.Errorf("contact fields mangled: %+v", got)
	}
	if got.CycleMonths != 6 {
		t.Errorf("cycle = %d, want 6", got.CycleMonths)
	}
	if !got.GrandTotal.Equal(lead.GrandTotal) {
		t.Errorf("grand total = %s, want %s", got.GrandTotal, lead.GrandTotal)
	}
	if !got.MediaBudget.Equal(lead.MediaBudget) {
		t.Errorf("media budget = %s, want %s", got.MediaBudget, lead.MediaBudget)
	}
	if got.Summary != lead.Summary {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.Insert(ctx, db.Lead{Name: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	leads, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("len(leads) = %d, want 2", len(leads))
	}
	if leads[0].Name != "third" || leads[1].Name != "second" {
		t.Errorf("order = %s, %s; want third, second", leads[0].Name, leads[1].Name)
	}
}
