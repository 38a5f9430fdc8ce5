package usecase

import (
	"context"
	"errors"
	"strings"

	"surgitrack/internal/converter"
	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/domain/entity"
	"surgitrack/internal/domain/repository"
	"surgitrack/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUsecase interface {
	// Signup registers an account and mints a session token for it.
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, string, error)
	// Login verifies credentials and mints a fresh session token. Unknown
	// email and wrong password both come back as ErrInvalidCredentials.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	// Verify decodes a session token. It returns nil for any invalid,
	// tampered or expired token; nil means unauthenticated, not an error.
	Verify(token string) *dto.UserResponse
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	accountRepo  repository.AccountRepository
	tokenService *jwt.TokenService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	tokenService *jwt.TokenService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		accountRepo:  accountRepo,
		tokenService: tokenService,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, "", err
	}

	account := &entity.Account{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.accountRepo.Create(ctx, tx, account); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, "", ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, "", err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, "", err
	}

	token, err := u.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, "", err
	}

	return converter.AccountToUserResponse(account), token, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	account, err := u.accountRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, "", err
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokenService.Generate(account.ID, account.Email)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, "", err
	}

	return converter.AccountToUserResponse(account), token, nil
}

func (u *authUsecase) Verify(token string) *dto.UserResponse {
	claims, err := u.tokenService.Validate(token)
	if err != nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    claims.AccountID,
		Email: claims.Email,
	}
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation
// on the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
