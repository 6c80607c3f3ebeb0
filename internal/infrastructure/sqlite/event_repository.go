package sqlite

import (
	"context"
	"fmt"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository creates a new SQLite hydration event repository.
func NewEventRepository(store *Store) repository.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Record(ctx context.Context, containerTypeID string, volume int32, now time.Time) (*entity.HydrationEvent, error) {
	if r.store.db == nil {
		return nil, nil
	}

	event := &entity.HydrationEvent{
		ContainerTypeID: containerTypeID,
		Volume:          volume,
		Timestamp:       now,
		Date:            entity.DayOf(now),
	}

	result, err := r.store.db.ExecContext(ctx,
		`INSERT INTO hydration_events (container_type_id, volume, timestamp, date) VALUES (?, ?, ?, ?)`,
		event.ContainerTypeID,
		event.Volume,
		event.Timestamp.Format(time.RFC3339Nano),
		event.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read event id: %w", err)
	}
	event.ID = id

	return event, nil
}

func (r *eventRepository) EventsOnDate(ctx context.Context, date string) ([]*entity.HydrationEvent, error) {
	if r.store.db == nil {
		return nil, nil
	}

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, container_type_id, volume, timestamp, date
		 FROM hydration_events
		 WHERE date = ?
		 ORDER BY id DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []*entity.HydrationEvent
	for rows.Next() {
		event := &entity.HydrationEvent{}
		var timestamp string
		if err := rows.Scan(&event.ID, &event.ContainerTypeID, &event.Volume, &timestamp, &event.Date); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event timestamp: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) TotalOnDate(ctx context.Context, date string) (int32, error) {
	if r.store.db == nil {
		return 0, nil
	}

	var total int32
	err := r.store.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(volume), 0) FROM hydration_events WHERE date = ?`,
		date,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum volume: %w", err)
	}

	return total, nil
}

func (r *eventRepository) DailyTotals(ctx context.Context, startDate, endDate string) (map[string]int32, error) {
	if r.store.db == nil {
		return map[string]int32{}, nil
	}

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT date, SUM(volume)
		 FROM hydration_events
		 WHERE date BETWEEN ? AND ?
		 GROUP BY date`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int32)
	for rows.Next() {
		var date string
		var total int32
		if err := rows.Scan(&date, &total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals[date] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily totals: %w", err)
	}

	return totals, nil
}

func (r *eventRepository) DailyTotalsAtOrAbove(ctx context.Context, threshold int32) ([]repository.DailyTotal, error) {
	if r.store.db == nil {
		return nil, nil
	}

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT date, SUM(volume) AS total
		 FROM hydration_events
		 GROUP BY date
		 HAVING total >= ?
		 ORDER BY date DESC`,
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get qualifying days: %w", err)
	}
	defer rows.Close()

	var totals []repository.DailyTotal
	for rows.Next() {
		var dt repository.DailyTotal
		if err := rows.Scan(&dt.Date, &dt.Total); err != nil {
			return nil, fmt.Errorf("failed to scan qualifying day: %w", err)
		}
		totals = append(totals, dt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate qualifying days: %w", err)
	}

	return totals, nil
}

func (r *eventRepository) CountDaysAtOrAbove(ctx context.Context, threshold int32) (int32, error) {
	if r.store.db == nil {
		return 0, nil
	}

	var count int32
	err := r.store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM (
			SELECT date FROM hydration_events GROUP BY date HAVING SUM(volume) >= ?
		 )`,
		threshold,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count qualifying days: %w", err)
	}

	return count, nil
}
