package auth

import (
	"context"
	"fmt"
	"testing"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID string, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

func setupService(t *testing.T) (*Service, *repository.ProfileRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Profile{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	profiles := repository.NewProfileRepository(db)
	return NewService(profiles, fakeJWT{}), profiles
}

func TestRegisterCreatesGuestProfile(t *testing.T) {
	svc, profiles := setupService(t)

	profile, token, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Ousmane Fall",
		Email:    "Ousmane@Example.com",
		Password: "secret99",
		Phone:    "+221771234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, profile.Role)
	assert.Equal(t, "ousmane@example.com", profile.Email)
	assert.NotEmpty(t, token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("secret99")))

	stored, err := profiles.GetByEmail(context.Background(), "ousmane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, profile.ID, stored.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "First", Email: "dup@example.com", Password: "secret99",
	})
	assert.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterRequest{
		FullName: "Second", Email: "dup@example.com", Password: "other999",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterClaimsFunnelProfile(t *testing.T) {
	svc, profiles := setupService(t)

	// created by the public booking funnel, no credentials yet
	funnel := &domain.Profile{Role: domain.RoleUser, FullName: "Walk In", Email: "walkin@example.com"}
	if err := profiles.Create(context.Background(), funnel); err != nil {
		t.Fatalf("failed to seed funnel profile: %v", err)
	}

	profile, _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Walk In Proper",
		Email:    "walkin@example.com",
		Password: "secret99",
	})

	assert.NoError(t, err)
	assert.Equal(t, funnel.ID, profile.ID, "registration should claim the existing profile, not create a second one")
	assert.Equal(t, "Walk In Proper", profile.FullName)
	assert.NotEmpty(t, profile.PasswordHash)

	all, err := profiles.List(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLogin(t *testing.T) {
	svc, _ := setupService(t)

	registered, _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Login User", Email: "login@example.com", Password: "secret99",
	})
	assert.NoError(t, err)

	profile, token, err := svc.Login(context.Background(), LoginRequest{
		Email: "login@example.com", Password: "secret99",
	})
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, profile.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email: "login@example.com", Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email: "nobody@example.com", Password: "secret99",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsPasswordlessProfile(t *testing.T) {
	svc, profiles := setupService(t)

	funnel := &domain.Profile{Role: domain.RoleUser, FullName: "Walk In", Email: "walkin@example.com"}
	if err := profiles.Create(context.Background(), funnel); err != nil {
		t.Fatalf("failed to seed funnel profile: %v", err)
	}

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email: "walkin@example.com", Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
