// Package history persists mood check-ins and derives baseline mood
// state from recent entries.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")
)

// CheckIn is one recorded mood observation.
type CheckIn struct {
	ID        uuid.UUID
	UserID    string
	Mood      string
	Score     float64
	Energy    float64
	Note      string
	CreatedAt time.Time
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new store backed by a connection pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Insert records a check-in, assigning an ID when unset. The timestamp
// always comes from the database clock.
func (s *Store) Insert(ctx context.Context, c *CheckIn) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := `
		INSERT INTO check_ins (id, user_id, mood, score, energy, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err := s.pool.QueryRow(ctx, query,
		c.ID,
		c.UserID,
		c.Mood,
		c.Score,
		c.Energy,
		c.Note,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting check-in: %w", err)
	}
	return nil
}

// Recent returns the user's newest check-ins, newest first.
func (s *Store) Recent(ctx context.Context, userID string, limit int) ([]CheckIn, error) {
	query := `
		SELECT id, user_id, mood, score, energy, note, created_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Mood, &c.Score, &c.Energy, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning check-in: %w", err)
		}
		checkIns = append(checkIns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}

	return checkIns, nil
}

// Get returns one check-in by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*CheckIn, error) {
	query := `
		SELECT id, user_id, mood, score, energy, note, created_at
		FROM check_ins
		WHERE id = $1
	`
	var c CheckIn
	err := s.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Mood, &c.Score, &c.Energy, &c.Note, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting check-in: %w", err)
	}
	return &c, nil
}
