package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository reads and writes work session records.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Record adds one completed session to the user's record for date, creating
// the record on the first completion of the day. It returns the record id.
func (r *Repository) Record(ctx context.Context, userID, date string) (string, error) {
	var id string

	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO work_sessions (id, user_id, date, sessions_count, created_at)
		 VALUES (?, ?, ?, 1, ?)
		 ON CONFLICT (user_id, date)
		 DO UPDATE SET sessions_count = sessions_count + 1
		 RETURNING id`,
		uuid.NewString(),
		userID,
		date,
		r.now().UTC().Format(time.RFC3339Nano),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("record work session: %w", err)
	}

	return id, nil
}

// Range returns the user's records dated between start and end inclusive.
func (r *Repository) Range(ctx context.Context, userID, start, end string) ([]Record, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, date, sessions_count, created_at
		 FROM work_sessions
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date`,
		userID,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("query work sessions: %w", err)
	}

	return scanRecords(rows)
}

// All returns every record of the user.
func (r *Repository) All(ctx context.Context, userID string) ([]Record, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, date, sessions_count, created_at
		 FROM work_sessions
		 WHERE user_id = ?
		 ORDER BY date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query work sessions: %w", err)
	}

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	records := make([]Record, 0)

	for rows.Next() {
		var (
			rec       Record
			createdAt string
		)

		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Date,
			&rec.SessionsCount,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan work session: %w", err)
		}

		t, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		rec.CreatedAt = t
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work sessions: %w", err)
	}

	return records, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t.UTC(), nil
	}

	t, err = time.Parse(time.RFC3339, raw)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, err
}
