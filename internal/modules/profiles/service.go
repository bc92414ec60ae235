package profiles

import (
	"context"
	"errors"
	"strings"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"gorm.io/gorm"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

type Service struct {
	profiles *repository.ProfileRepository
}

func NewService(profiles *repository.ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) List(ctx context.Context, role *domain.Role) ([]domain.Profile, error) {
	return s.profiles.List(ctx, role)
}

// ListStaff returns everyone with a back-office role.
func (s *Service) ListStaff(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListByRoles(ctx, domain.StaffRoles)
}

// ListClients returns guest profiles.
func (s *Service) ListClients(ctx context.Context) ([]domain.Profile, error) {
	role := domain.RoleUser
	return s.profiles.List(ctx, &role)
}

type CreateProfileInput struct {
	FullName string
	Email    string
	Phone    string
	Role     domain.Role
}

func (s *Service) Create(ctx context.Context, in CreateProfileInput) (*domain.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	p := &domain.Profile{
		Role:     role,
		FullName: in.FullName,
		Email:    email,
	}
	if in.Phone != "" {
		phone := in.Phone
		p.Phone = &phone
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
