package postgres

import (
	"context"
	"fmt"

	"github.com/lucasreis/escala-bot/pkg/audit"
)

// Append inserts one confirmation outcome into confirmation_log. Records are
// write-once; there is no update or delete path.
func (db *DB) Append(ctx context.Context, rec audit.Record) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO confirmation_log
			(id, recorded_at, outcome, worker_number, worker_name, location, date_label, time_label)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		rec.ID,
		rec.Timestamp,
		string(rec.Outcome),
		rec.WorkerNumber,
		rec.WorkerName,
		rec.Location,
		rec.DateLabel,
		rec.TimeLabel,
	)
	if err != nil {
		return fmt.Errorf("failed to insert confirmation record: %w", err)
	}

	return nil
}

// GetConfirmations returns all recorded outcomes, oldest first. Used by
// operators to review past confirmations.
func (db *DB) GetConfirmations(ctx context.Context) ([]audit.Record, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, recorded_at, outcome, worker_number, worker_name, location, date_label, time_label
		FROM confirmation_log
		ORDER BY recorded_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query confirmation records: %w", err)
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var rec audit.Record
		var outcome string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &outcome, &rec.WorkerNumber, &rec.WorkerName, &rec.Location, &rec.DateLabel, &rec.TimeLabel); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation record: %w", err)
		}
		rec.Outcome = audit.Outcome(outcome)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confirmation records: %w", err)
	}

	return records, nil
}
