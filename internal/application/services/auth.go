package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"sales-manager-api/internal/application/ports"
	domain "sales-manager-api/internal/domain/user"
	"sales-manager-api/internal/infrastructure/jwt"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a caller cannot probe which usernames exist.
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const tokenTTL = time.Hour

type AuthService struct {
	userRepository domain.Repository
	jwtService     *jwt.Service
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository domain.Repository,
	jwtService *jwt.Service,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mCounter:       mCounter,
	}
}

// Register stores the username with a salted bcrypt hash. Uniqueness is
// enforced by the store's constraint, so a concurrent duplicate loses with
// ErrUsernameTaken rather than overwriting.
func (as *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	h := string(hash)
	if _, err = as.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: &h,
	}); err != nil {
		return err
	}

	as.mCounter.WithLabelValues("user_registered_total").Inc()

	return nil
}

func (as *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	as.mCounter.WithLabelValues("user_login_total").Inc()

	return token, nil
}
