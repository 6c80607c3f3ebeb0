package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hydration-service/internal/domain/entity"
	"hydration-service/internal/domain/repository"

	"github.com/google/uuid"
)

type containerTypeRepository struct {
	store *Store
}

// NewContainerTypeRepository creates a new SQLite container type repository.
func NewContainerTypeRepository(store *Store) repository.ContainerTypeRepository {
	return &containerTypeRepository{store: store}
}

func (r *containerTypeRepository) Create(ctx context.Context, containerType *entity.ContainerType) error {
	if r.store.db == nil {
		return nil
	}
	return insertContainerType(ctx, r.store.db, containerType)
}

func (r *containerTypeRepository) List(ctx context.Context) ([]*entity.ContainerType, error) {
	if r.store.db == nil {
		return nil, nil
	}

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, name, volume FROM container_types ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list container types: %w", err)
	}
	defer rows.Close()

	var containerTypes []*entity.ContainerType
	for rows.Next() {
		containerType := &entity.ContainerType{}
		var id string
		if err := rows.Scan(&id, &containerType.Name, &containerType.Volume); err != nil {
			return nil, fmt.Errorf("failed to scan container type: %w", err)
		}
		containerType.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse container type id: %w", err)
		}
		containerTypes = append(containerTypes, containerType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate container types: %w", err)
	}

	return containerTypes, nil
}

func (r *containerTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContainerType, error) {
	if r.store.db == nil {
		return nil, nil
	}

	containerType := &entity.ContainerType{ID: id}
	err := r.store.db.QueryRowContext(ctx,
		`SELECT name, volume FROM container_types WHERE id = ?`,
		id.String(),
	).Scan(&containerType.Name, &containerType.Volume)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get container type: %w", err)
	}

	return containerType, nil
}

func (r *containerTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.store.db == nil {
		return nil
	}

	// No cascade: events referencing this id keep their copied volume.
	if _, err := r.store.db.ExecContext(ctx,
		`DELETE FROM container_types WHERE id = ?`,
		id.String(),
	); err != nil {
		return fmt.Errorf("failed to delete container type: %w", err)
	}

	return nil
}

func insertContainerType(ctx context.Context, db execer, containerType *entity.ContainerType) error {
	if _, err := db.ExecContext(ctx,
		`INSERT INTO container_types (id, name, volume) VALUES (?, ?, ?)`,
		containerType.ID.String(), containerType.Name, containerType.Volume,
	); err != nil {
		return fmt.Errorf("failed to create container type: %w", err)
	}
	return nil
}
