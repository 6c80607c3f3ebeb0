package repository

import (
	"context"
	"hydration-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ContainerTypeRepository defines the interface for container type
// reference data.
type ContainerTypeRepository interface {
	// Create inserts a new container type.
	Create(ctx context.Context, containerType *entity.ContainerType) error

	// List retrieves all container types.
	List(ctx context.Context) ([]*entity.ContainerType, error)

	// GetByID retrieves one container type, nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContainerType, error)

	// Delete removes a container type. Existing events keep their dangling
	// reference; no cascade, no reference check.
	Delete(ctx context.Context, id uuid.UUID) error
}
