package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripdesk/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultSlot is the slot name used by the API server. Tests may use other
// slots to keep fixtures apart.
const DefaultSlot = "trips"

// Postgres is the durable TripStore: one jsonb row per slot in trip_store.
// A single-statement upsert replaces the document, so individual Store calls
// are atomic even without the service-layer mutex.
type Postgres struct {
	db   db
	slot string
}

// NewPostgres constructs a Postgres store on the default slot.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db, slot: DefaultSlot}
}

// NewPostgresSlot constructs a Postgres store on a named slot.
func NewPostgresSlot(db db, slot string) *Postgres {
	return &Postgres{db: db, slot: slot}
}

// Load reads the slot's JSON document. A missing row or a SQL NULL document
// both read as an empty list.
func (p *Postgres) Load(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT data FROM trip_store WHERE slot = @slot`

	var raw []byte
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"slot": p.slot}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Trip{}, nil
		}
		return nil, fmt.Errorf("store.Postgres.Load: %w", err)
	}
	if len(raw) == 0 {
		return []domain.Trip{}, nil
	}

	var trips []domain.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("store.Postgres.Load: unmarshal slot %q: %w", p.slot, err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Store upserts the slot's document in one statement.
func (p *Postgres) Store(ctx context.Context, trips []domain.Trip) error {
	const q = `
		INSERT INTO trip_store (slot, data, updated_at)
		VALUES (@slot, @data, now())
		ON CONFLICT (slot) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()`

	if trips == nil {
		trips = []domain.Trip{}
	}
	raw, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("store.Postgres.Store: marshal: %w", err)
	}

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"slot": p.slot, "data": raw}); err != nil {
		return fmt.Errorf("store.Postgres.Store: %w", err)
	}
	return nil
}
