package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/pkg/config"
)

// The persistence contract is a single structured document, so Postgres is
// used as a document store: one row carrying the aggregate JSON and the
// session reference.
const snapshotRowID = 1

const createTableStmt = `
CREATE TABLE IF NOT EXISTS campus_snapshots (
    id INT PRIMARY KEY,
    document JSONB,
    session_account TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps the aggregate document in a single database row.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore opens a connection pool and prepares the schema.
func NewPostgresStore(cfg config.PostgresConfig) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStoreWithDB wraps an existing connection, used in tests.
func NewPostgresStoreWithDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("create snapshot table: %w", err)
	}
	return nil
}

// Load fetches and decodes the aggregate document.
func (s *PostgresStore) Load(ctx context.Context) (*models.Snapshot, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw,
		`SELECT document FROM campus_snapshots WHERE id = $1`, snapshotRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select snapshot row: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot document: %w", err)
	}
	return &snap, nil
}

// Save upserts the aggregate document.
func (s *PostgresStore) Save(ctx context.Context, snap *models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO campus_snapshots (id, document, updated_at)
         VALUES ($1, $2, now())
         ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`,
		snapshotRowID, raw)
	if err != nil {
		return fmt.Errorf("upsert snapshot row: %w", err)
	}
	return nil
}

// LoadSession fetches the persisted session reference.
func (s *PostgresStore) LoadSession(ctx context.Context) (string, error) {
	var accountID string
	err := s.db.GetContext(ctx, &accountID,
		`SELECT session_account FROM campus_snapshots WHERE id = $1`, snapshotRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("select session: %w", err)
	}
	if accountID == "" {
		return "", ErrNotFound
	}
	return accountID, nil
}

// SaveSession upserts the session reference. An empty id clears it.
func (s *PostgresStore) SaveSession(ctx context.Context, accountID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO campus_snapshots (id, session_account, updated_at)
         VALUES ($1, $2, now())
         ON CONFLICT (id) DO UPDATE SET session_account = EXCLUDED.session_account, updated_at = now()`,
		snapshotRowID, accountID)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
