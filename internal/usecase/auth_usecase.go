package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string, tokenTTLHours int) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenTTLHours) * time.Hour,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password, accountType string) (*domain.User, error) {
	if accountType != domain.RoleJobSeeker && accountType != domain.RoleEmployer {
		return nil, apperror.BadRequest("Account type must be job_seeker or employer")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("An account with this email already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if _, err := u.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, apperror.Conflict("This username is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         accountType,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a bad password so probes cannot enumerate accounts
			return nil, nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	pair, err := u.issueToken(user)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, pair, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Account no longer exists")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// issueToken signs an HS256 access token. Role is a convenience claim only;
// the auth middleware re-reads the role from the store on every request.
func (u *authUsecase) issueToken(user *domain.User) (*domain.TokenPair, error) {
	expiresAt := time.Now().Add(u.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: signed, ExpiresAt: expiresAt}, nil
}
