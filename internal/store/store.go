// Package store persists user price overrides and the rolling price cache
// in a local SQLite database. It is the storage side of the pricing
// resolvers: the aggregator only ever sees it through the interfaces in
// internal/pricing.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/piwi3910/BuildQuote/internal/model"
	"github.com/piwi3910/BuildQuote/internal/pricing"
)

// PriceStore is a SQLite-backed implementation of the pricing storage
// interfaces. Concurrent aggregations read and write it independently;
// last write wins, which is fine for advisory price hints.
type PriceStore struct {
	db *sql.DB
}

var (
	_ pricing.OverrideStore = (*PriceStore)(nil)
	_ pricing.CacheStore    = (*PriceStore)(nil)
	_ pricing.Recorder      = (*PriceStore)(nil)
)

// Open opens (creating if needed) the price database at path, sets
// recommended pragmas, and runs pending migrations.
func Open(path string) (*PriceStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open price database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping price database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &PriceStore{db: db}, nil
}

// Close closes the underlying database.
func (s *PriceStore) Close() error {
	return s.db.Close()
}

// Override returns the user's stored price for a material in a market, or
// nil when none exists.
func (s *PriceStore) Override(ctx context.Context, materialName, zipCode string) (*model.PriceSource, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT price, supplier_name, updated_at
		FROM user_prices
		WHERE material_name = ? AND zip_code = ?`,
		materialName, zipCode)

	var price float64
	var supplier, updatedAt string
	if err := row.Scan(&price, &supplier, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user price: %w", err)
	}

	return &model.PriceSource{
		Source:       model.SourceUserCustom,
		Price:        price,
		Confidence:   model.ConfidenceHigh,
		LastUpdated:  parseTime(updatedAt),
		Available:    true,
		SupplierName: supplier,
	}, nil
}

// SetOverride stores or replaces the user's price for a material.
func (s *PriceStore) SetOverride(ctx context.Context, materialName, zipCode string, price float64, supplierName string) error {
	if price <= 0 {
		return fmt.Errorf("override price must be positive, got %.2f", price)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_prices (material_name, zip_code, price, supplier_name, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (material_name, zip_code) DO UPDATE SET
			price = excluded.price,
			supplier_name = excluded.supplier_name,
			updated_at = excluded.updated_at`,
		materialName, zipCode, price, supplierName, formatTime(time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("store user price: %w", err)
	}
	return nil
}

// RecentPrices returns cached prices recorded since the given time, newest
// first, bounded by limit.
func (s *PriceStore) RecentPrices(ctx context.Context, materialName, zipCode string, since time.Time, limit int) ([]model.PriceSource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT price, confidence, supplier_name, notes, recorded_at
		FROM price_records
		WHERE material_name = ? AND zip_code = ? AND recorded_at >= ?
		ORDER BY recorded_at DESC
		LIMIT ?`,
		materialName, zipCode, formatTime(since), limit)
	if err != nil {
		return nil, fmt.Errorf("read price records: %w", err)
	}
	defer rows.Close()

	var sources []model.PriceSource
	for rows.Next() {
		var price float64
		var confidence, supplier, notes, recordedAt string
		if err := rows.Scan(&price, &confidence, &supplier, &notes, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan price record: %w", err)
		}
		sources = append(sources, model.PriceSource{
			// Replayed records always resolve as cached regardless of
			// what source originally produced them.
			Source:       model.SourceCached,
			Price:        price,
			Confidence:   model.ParseConfidence(confidence),
			LastUpdated:  parseTime(recordedAt),
			Available:    true,
			Notes:        notes,
			SupplierName: supplier,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price records: %w", err)
	}
	return sources, nil
}

// RecordPrice appends one resolved price to the cache.
func (s *PriceStore) RecordPrice(ctx context.Context, q pricing.Query, src model.PriceSource) error {
	if src.Price <= 0 {
		return fmt.Errorf("recorded price must be positive, got %.2f", src.Price)
	}
	recordedAt := src.LastUpdated
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO price_records (material_name, category, unit, zip_code, price, confidence, source, supplier_name, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.MaterialName, q.Category, q.Unit, q.ZipCode,
		src.Price, string(src.Confidence), string(src.Source), src.SupplierName, src.Notes,
		formatTime(recordedAt))
	if err != nil {
		return fmt.Errorf("record price: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
