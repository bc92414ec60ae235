package auth

import (
	"context"
	"errors"
	"strings"

	"hotelms/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

type Service struct {
	profiles ProfileRepository
	jwt      jwtService
}

func NewService(profiles ProfileRepository, jwt jwtService) *Service {
	return &Service{profiles: profiles, jwt: jwt}
}

// Register creates a guest (USER) profile with credentials and issues a
// session token. A profile previously created through the public booking
// funnel (no password yet) is claimed by the registration instead of
// rejected as a duplicate.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Profile, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.profiles.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if existing != nil && existing.PasswordHash != "" {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	var profile *domain.Profile
	if existing != nil {
		updates := map[string]interface{}{
			"full_name":     req.FullName,
			"password_hash": string(hash),
		}
		if req.Phone != "" {
			updates["phone"] = req.Phone
		}
		profile, err = s.profiles.Update(ctx, existing.ID, updates)
		if err != nil {
			return nil, "", err
		}
	} else {
		profile = &domain.Profile{
			Role:         domain.RoleUser,
			FullName:     req.FullName,
			Email:        email,
			PasswordHash: string(hash),
		}
		if req.Phone != "" {
			phone := req.Phone
			profile.Phone = &phone
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, "", err
		}
	}

	token, err := s.jwt.GenerateToken(profile.ID.String(), string(profile.Role))
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Profile, string, error) {
	profile, err := s.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if profile.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(profile.ID.String(), string(profile.Role))
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}
