package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salesboard/internal/core"

	_ "modernc.org/sqlite"
)

// isoDate is the structured shape text dates are rewritten to.
const isoDate = "2006-01-02"

// legacyDate is the MM-DD-YY text shape found in unmigrated rows.
const legacyDate = "01-02-06"

// SQLiteRepository holds the order collection. Columns are TEXT on
// purpose: the store carries documents as they arrived, including dates
// still in the legacy text shape; typing happens in the normalizer.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// FetchOrders implements source.OrderSource: a one-shot batch read of the
// whole collection.
func (r *SQLiteRepository) FetchOrders(ctx context.Context) ([]core.RawOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id,
		       COALESCE(order_date, ''),
		       COALESCE(amount, ''),
		       COALESCE(qty, ''),
		       COALESCE(is_b2b, ''),
		       COALESCE(category, ''),
		       COALESCE(ship_state, ''),
		       COALESCE(ship_city, '')
		FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []core.RawOrder
	for rows.Next() {
		var o core.RawOrder
		if err := rows.Scan(&o.OrderID, &o.Date, &o.Amount, &o.Qty,
			&o.B2B, &o.Category, &o.ShipState, &o.ShipCity); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// InsertOrders appends raw order documents in one transaction. Used by the
// import command; steady-state reads never write.
func (r *SQLiteRepository) InsertOrders(ctx context.Context, orders []core.RawOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO orders (order_id, order_date, amount, qty, is_b2b, category, ship_state, ship_city)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		if _, err := stmt.ExecContext(ctx, o.OrderID, o.Date, o.Amount,
			o.Qty, o.B2B, o.Category, o.ShipState, o.ShipCity); err != nil {
			return fmt.Errorf("insert order %s: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}

	slog.InfoContext(ctx, "Orders inserted", "rows", len(orders))
	return nil
}

// CountOrders returns the number of stored line rows.
func (r *SQLiteRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// RewriteTextDates implements source.DateRewriter: every date still in the
// legacy MM-DD-YY text shape is rewritten to ISO, keyed by row id. Rows
// already in ISO shape are left untouched, so re-running is a no-op.
func (r *SQLiteRepository) RewriteTextDates(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_date FROM orders WHERE order_date IS NOT NULL AND order_date != ''`)
	if err != nil {
		return 0, fmt.Errorf("query dates: %w", err)
	}

	type rewrite struct {
		id  int64
		iso string
	}
	var pending []rewrite
	for rows.Next() {
		var id int64
		var date string
		if err := rows.Scan(&id, &date); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan date row: %w", err)
		}
		if _, err := time.Parse(isoDate, date); err == nil {
			continue // already structured
		}
		t, err := time.Parse(legacyDate, date)
		if err != nil {
			continue // unparseable, left for the normalizer to mark absent
		}
		pending = append(pending, rewrite{id: id, iso: t.Format(isoDate)})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate dates: %w", err)
	}
	rows.Close()

	if len(pending) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin date rewrite: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE orders SET order_date = ? WHERE id = ?`)
	if err != nil {
		return 0, fmt.Errorf("prepare date rewrite: %w", err)
	}
	defer stmt.Close()

	for _, p := range pending {
		if _, err := stmt.ExecContext(ctx, p.iso, p.id); err != nil {
			return 0, fmt.Errorf("rewrite date for row %d: %w", p.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit date rewrite: %w", err)
	}

	slog.InfoContext(ctx, "Text dates rewritten to ISO", "rows", len(pending))
	return len(pending), nil
}
