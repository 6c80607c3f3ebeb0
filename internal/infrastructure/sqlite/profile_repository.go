package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"
)

type profileRepository struct {
	store *Store
}

// NewProfileRepository creates a new SQLite profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Create(ctx context.Context, name string, age, dailyGoal int32, now time.Time) (*entity.Profile, error) {
	if r.store.db == nil {
		return nil, nil
	}
	return insertProfile(ctx, r.store.db, name, age, dailyGoal, now)
}

func (r *profileRepository) GetLatest(ctx context.Context) (*entity.Profile, error) {
	if r.store.db == nil {
		return nil, nil
	}

	profile := &entity.Profile{}
	var createdAt string
	err := r.store.db.QueryRowContext(ctx,
		`SELECT id, name, age, daily_goal, created_at
		 FROM user_profile
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(&profile.ID, &profile.Name, &profile.Age, &profile.DailyGoal, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile created_at: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) UpdateLatest(ctx context.Context, name string, age, dailyGoal int32) (*entity.Profile, error) {
	if r.store.db == nil {
		return nil, nil
	}

	// Update always targets the most recently created row; the profile is
	// a singleton by convention even though storage permits several rows.
	result, err := r.store.db.ExecContext(ctx,
		`UPDATE user_profile
		 SET name = ?, age = ?, daily_goal = ?
		 WHERE id = (SELECT MAX(id) FROM user_profile)`,
		name, age, dailyGoal,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetLatest(ctx)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertProfile(ctx context.Context, db execer, name string, age, dailyGoal int32, now time.Time) (*entity.Profile, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO user_profile (name, age, daily_goal, created_at) VALUES (?, ?, ?, ?)`,
		name, age, dailyGoal, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile id: %w", err)
	}

	return &entity.Profile{
		ID:        id,
		Name:      name,
		Age:       age,
		DailyGoal: dailyGoal,
		CreatedAt: now,
	}, nil
}
