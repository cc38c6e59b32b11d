package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/calendrio/calendar-backend/internal/domain"
	"github.com/calendrio/calendar-backend/pkg/dbmetrics"
	"github.com/calendrio/calendar-backend/pkg/psqlbuilder"
)

// Repository persists booked events.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booked event. When the context carries an open
// transaction the insert runs inside it, which is how the booking use case
// keeps the availability check and the write atomic.
func (r *Repository) Create(ctx context.Context, ev *domain.BookedEvent) (*domain.BookedEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"id",
			"start_time",
			"end_time",
			"duration_minutes",
		).
		Values(
			ev.ID,
			ev.StartTime,
			ev.EndTime,
			ev.DurationMinutes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ev.CreatedAt = createdAt.Time

	return ev, nil
}

// GetStartingInRange returns events whose start_time falls in [from, to),
// ordered ascending by start_time. Inside a transaction the selected rows
// are locked FOR UPDATE so concurrent bookings against the same window
// serialize instead of both observing the slot as free.
func (r *Repository) GetStartingInRange(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"duration_minutes",
		"created_at",
	).
		From("events").
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStartingInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStartingInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.BookedEvent, error) {
	events := make([]*domain.BookedEvent, 0)

	for rows.Next() {
		var ev domain.BookedEvent
		var createdAt sql.NullTime

		if err := rows.Scan(
			&ev.ID,
			&ev.StartTime,
			&ev.EndTime,
			&ev.DurationMinutes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		ev.CreatedAt = createdAt.Time
		events = append(events, &ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
