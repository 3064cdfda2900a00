package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

// MySQLJournal records submitted vouchers for end-of-day review. Schema lives
// in schema.sql at the repository root.
type MySQLJournal struct {
	db *sql.DB
}

func NewMySQLJournal(db *sql.DB) *MySQLJournal {
	return &MySQLJournal{db: db}
}

func (j *MySQLJournal) Record(ctx context.Context, s domain.Sale) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO sale_journal (voucher_id, voucher_type, nro_document, subtotal, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, string(s.Type), s.DocumentNumber,
		s.Subtotal.StringFixed(2), s.Total.StringFixed(2), createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	journalID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sale journal id: %w", err)
	}

	for _, l := range s.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sale_journal_line (journal_id, product_id, quantity, unit_price)
			VALUES (?, ?, ?, ?)`,
			journalID, l.ProductID, l.Quantity, l.UnitPrice.StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}

	return tx.Commit()
}

func (j *MySQLJournal) ListByDay(ctx context.Context, day time.Time) ([]domain.Sale, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, voucher_id, voucher_type, nro_document, subtotal, total, created_at
		FROM sale_journal
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at`,
		start, start.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	var journalIDs []int64
	for rows.Next() {
		var (
			journalID          int64
			s                  domain.Sale
			voucherType        string
			subtotalStr, total string
		)
		if err := rows.Scan(&journalID, &s.ID, &voucherType, &s.DocumentNumber, &subtotalStr, &total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Type = domain.VoucherType(voucherType)
		if s.Subtotal, err = decimal.NewFromString(subtotalStr); err != nil {
			return nil, fmt.Errorf("parse subtotal: %w", err)
		}
		if s.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parse total: %w", err)
		}
		sales = append(sales, s)
		journalIDs = append(journalIDs, journalID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	for i, journalID := range journalIDs {
		lines, err := j.listLines(ctx, journalID)
		if err != nil {
			return nil, err
		}
		sales[i].Lines = lines
	}
	return sales, nil
}

func (j *MySQLJournal) listLines(ctx context.Context, journalID int64) ([]domain.SaleLine, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT product_id, quantity, unit_price
		FROM sale_journal_line
		WHERE journal_id = ?
		ORDER BY id`,
		journalID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sale lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.SaleLine
	for rows.Next() {
		var (
			l        domain.SaleLine
			priceStr string
		)
		if err := rows.Scan(&l.ProductID, &l.Quantity, &priceStr); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		if l.UnitPrice, err = decimal.NewFromString(priceStr); err != nil {
			return nil, fmt.Errorf("parse unit price: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
