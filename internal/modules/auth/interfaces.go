package auth

import (
	"context"

	"hotelms/internal/domain"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Profile, error)
}
