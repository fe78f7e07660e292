package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
	appErrors "github.com/noah-isme/campus-erp-api/pkg/errors"
)

// AuthConfig defines configuration for session token issuance.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService authenticates credentials against the directory, creates
// accounts and tracks the single active session. Credentials are opaque
// secrets compared for equality only.
type AuthService struct {
	directory *store.Directory
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(directory *store.Directory, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = 12 * time.Hour
	}
	return &AuthService{directory: directory, validator: validate, logger: logger, config: config}
}

// Login authenticates the credential pair, establishes the session and
// issues an access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	snap := s.directory.Snapshot()
	account := snap.AccountByEmail(req.Email)
	if account == nil || account.Credential != req.Credential {
		return nil, appErrors.ErrInvalidCredentials
	}

	s.directory.SetSession(account.ID)
	return s.sessionResponse(*account)
}

// Register creates a new account and, for students, the companion student
// record in the same transition. The new account becomes the active
// session.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	name := req.Name
	if name == "" {
		name = "New User"
	}
	prefix := "adm"
	if req.Role == models.RoleStudent {
		prefix = "stu"
	}
	account := models.Account{
		ID:         prefix + "-" + uuid.NewString(),
		Name:       name,
		Email:      models.NormalizeEmail(req.Email),
		Credential: req.Credential,
		Role:       req.Role,
	}

	err := s.directory.Update(func(snap *models.Snapshot) error {
		if snap.AccountByEmail(req.Email) != nil {
			return appErrors.ErrEmailExists
		}
		snap.Accounts = append(snap.Accounts, account)
		if req.Role == models.RoleStudent {
			snap.Students = append(snap.Students, models.StudentRecord{
				ID:       account.ID,
				Program:  req.Program,
				Year:     req.Year,
				FeesDue:  0,
				Courses:  []string{},
				Payments: []models.PaymentEntry{},
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.directory.SetSession(account.ID)
	s.logger.Info("account registered",
		zap.String("account_id", account.ID),
		zap.String("role", string(account.Role)))
	return s.sessionResponse(account)
}

// EndSession clears the active session unconditionally. Idempotent.
func (s *AuthService) EndSession(ctx context.Context) {
	s.directory.ClearSession()
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) sessionResponse(account models.Account) (*models.SessionResponse, error) {
	now := time.Now().UTC()
	claims := &models.JWTClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign access token")
	}

	return &models.SessionResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.config.TokenExpiry.Seconds()),
		Account:     account.Info(),
	}, nil
}
