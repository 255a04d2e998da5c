// Package sqlite implements the escrow record store on SQLite.
//
// The store relies on SQLite's single-writer serialization for record
// atomicity: slot claims are single conditional UPDATE statements whose
// affected-row count tells the caller whether the precondition held.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/middletrust/escrow-api/internal/adapters/storage/sqlite/migrations"
	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
)

// escrowColumns is the canonical column list used by every SELECT so that
// scanEscrow stays in lockstep with the queries.
const escrowColumns = `id, creator_id, role, invited_role, buyer_id, seller_id,
	invitation_status, trade_status, amount, currency, product_name, category,
	logistics, description, photo_url, color, receiver_email, source,
	created_at, updated_at`

// Store is a SQLite-backed implementation of ports.EscrowStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path, applies
// pragmas suited to a concurrent web service, and runs pending migrations.
func Open(path string) (*Store, error) {
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// modernc.org/sqlite serializes writes per connection; a single
	// connection avoids SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate escrow store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "escrow-store"
}

// HealthCheck pings the database, satisfying ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("escrow-store: %w", err)
	}
	return nil
}

// Create persists a new escrow record. Timestamps are set to now (UTC) when
// unset so callers may omit them.
func (s *Store) Create(ctx context.Context, e *escrow.Escrow) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO escrows (
	id, creator_id, role, invited_role, buyer_id, seller_id,
	invitation_status, trade_status, amount, currency, product_name, category,
	logistics, description, photo_url, color, receiver_email, source,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatorID, string(e.Role), string(e.InvitedRole), e.BuyerID, e.SellerID,
		string(e.InvitationStatus), string(e.TradeStatus), e.Amount, string(e.Currency),
		e.ProductName, e.Category, string(e.Logistics), e.Description, e.PhotoURL,
		e.Color, e.ReceiverEmail, string(e.Source),
		e.CreatedAt.UnixMilli(), e.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert escrow %s: %w", e.ID, err)
	}

	return nil
}

// Get returns the escrow with the given id, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*escrow.Escrow, error) {
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM escrows WHERE id = ?", escrowColumns), id)

	e, err := scanEscrow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("escrow %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get escrow %s: %w", id, err)
	}

	return e, nil
}

// ClaimSlot fills the given slot with userID and marks the invitation
// accepted, but only if the slot is still open. The conditional UPDATE
// executes as one statement, so concurrent claimants cannot both observe
// the slot open; exactly one wins and the rest see false.
func (s *Store) ClaimSlot(ctx context.Context, id string, slot escrow.Slot, userID string) (bool, error) {
	var column string
	switch slot {
	case escrow.SlotBuyer:
		column = "buyer_id"
	case escrow.SlotSeller:
		column = "seller_id"
	default:
		return false, fmt.Errorf("claim slot on escrow %s: no open slot", id)
	}

	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
UPDATE escrows
SET %s = ?, invitation_status = ?, updated_at = ?
WHERE id = ? AND %s IS NULL`, column, column),
		userID, string(escrow.InvitationAccepted), time.Now().UTC().UnixMilli(), id,
	)
	if err != nil {
		return false, fmt.Errorf("claim %s slot on escrow %s: %w", slot, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim %s slot on escrow %s: %w", slot, id, err)
	}
	if affected > 0 {
		return true, nil
	}

	// Distinguish a lost race from a missing record.
	if _, err := s.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// SetInvitationStatus updates only the invitation status.
func (s *Store) SetInvitationStatus(ctx context.Context, id string, status escrow.InvitationStatus) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE escrows SET invitation_status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("set invitation status on escrow %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set invitation status on escrow %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("escrow %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByParticipant returns up to limit escrows where userID occupies any
// party slot, newest first with id as tiebreak. A non-empty cursor resumes
// strictly after the record with that id.
func (s *Store) ListByParticipant(ctx context.Context, userID string, limit int, cursor string) ([]escrow.Escrow, error) {
	query := fmt.Sprintf(`
SELECT %s FROM escrows
WHERE (creator_id = ? OR buyer_id = ? OR seller_id = ?)`, escrowColumns)
	args := []any{userID, userID, userID}

	if cursor != "" {
		var cursorCreatedAt int64
		row := s.db.QueryRowContext(ctx, "SELECT created_at FROM escrows WHERE id = ?", cursor)
		if err := row.Scan(&cursorCreatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, &domain.ValidationError{Fields: map[string]string{"cursor": "unknown cursor"}}
			}
			return nil, fmt.Errorf("resolve cursor %s: %w", cursor, err)
		}

		query += " AND (created_at, id) < (?, ?)"
		args = append(args, cursorCreatedAt, cursor)
	}

	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list escrows for %s: %w", userID, err)
	}
	defer rows.Close()

	var items []escrow.Escrow
	for rows.Next() {
		e, err := scanEscrow(rows)
		if err != nil {
			return nil, fmt.Errorf("list escrows for %s: %w", userID, err)
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list escrows for %s: %w", userID, err)
	}

	return items, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEscrow(row rowScanner) (*escrow.Escrow, error) {
	var (
		e                    escrow.Escrow
		role, invited        string
		invStatus, trdStatus string
		currency, logistics  string
		source               string
		createdAt, updatedAt int64
	)

	err := row.Scan(
		&e.ID, &e.CreatorID, &role, &invited, &e.BuyerID, &e.SellerID,
		&invStatus, &trdStatus, &e.Amount, &currency, &e.ProductName, &e.Category,
		&logistics, &e.Description, &e.PhotoURL, &e.Color, &e.ReceiverEmail, &source,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Role = escrow.Role(role)
	e.InvitedRole = escrow.Role(invited)
	e.InvitationStatus = escrow.InvitationStatus(invStatus)
	e.TradeStatus = escrow.TradeStatus(trdStatus)
	e.Currency = escrow.Currency(currency)
	e.Logistics = escrow.Logistics(logistics)
	e.Source = escrow.Source(source)
	e.CreatedAt = time.UnixMilli(createdAt).UTC()
	e.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &e, nil
}
