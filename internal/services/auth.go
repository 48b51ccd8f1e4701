package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/data/repos"
	"github.com/handylink/handylink-backend/internal/data/storeerr"
	"github.com/handylink/handylink-backend/internal/data/txn"
	"github.com/handylink/handylink-backend/internal/domain"
	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/pkg/dbctx"
	"github.com/handylink/handylink-backend/internal/pkg/logger"
	"github.com/handylink/handylink-backend/internal/requestdata"
	"github.com/handylink/handylink-backend/internal/utils"
)

// invalidCredentials is shared by every login failure path so responses do
// not reveal whether the email is registered.
const invalidCredentials = "invalid email or password"

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Session is an issued access token plus the authenticated user.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// SetContextFromToken verifies a bearer token and attaches the caller
	// identity to the returned context.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	tx           txn.TxRunner
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	log *logger.Logger,
	tx txn.TxRunner,
	userRepo repos.UserRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		tx:           tx,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	const op = "auth.register"

	email := strings.ToLower(strings.TrimSpace(input.Email))
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fault.New(fault.CodeValidation, op, "a valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, fault.New(fault.CodeValidation, op, "password must be at least 8 characters")
	}
	if firstName == "" || lastName == "" {
		return nil, fault.New(fault.CodeValidation, op, "first and last name are required")
	}

	// friendly pre-check; the unique index is the backstop under races
	exists, eErr := as.userRepo.EmailExists(ctx, nil, email)
	if eErr != nil {
		return nil, storeerr.Map(op, eErr)
	}
	if exists {
		return nil, fault.Conflict(fault.KindEmailTaken, op, "user with this email already exists")
	}

	hashed, hErr := utils.HashPassword(input.Password)
	if hErr != nil {
		return nil, fault.Wrap(fault.CodeInternal, op, hErr)
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := as.tx.InTx(ctx, func(dbc dbctx.Context) error {
		_, cErr := as.userRepo.Create(dbc.Ctx, dbc.Tx, []*domain.User{user})
		return cErr
	}); err != nil {
		return nil, storeerr.Map(op, err)
	}

	as.log.Info("user registered", "user_id", user.ID)
	return as.issueSession(op, user)
}

func (as *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	const op = "auth.login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fault.New(fault.CodeUnauthenticated, op, invalidCredentials)
	}

	users, gErr := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if gErr != nil {
		return nil, storeerr.Map(op, gErr)
	}
	if len(users) == 0 {
		return nil, fault.New(fault.CodeUnauthenticated, op, invalidCredentials)
	}

	user := users[0]
	if !utils.CheckPassword(user.Password, password) {
		return nil, fault.New(fault.CodeUnauthenticated, op, invalidCredentials)
	}

	return as.issueSession(op, user)
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	const op = "auth.verify"

	claims := &jwt.RegisteredClaims{}
	token, pErr := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fault.New(fault.CodeUnauthenticated, op, "unexpected signing method")
		}
		return []byte(as.jwtSecretKey), nil
	})
	if pErr != nil || !token.Valid {
		return ctx, fault.New(fault.CodeUnauthenticated, op, "invalid or expired token")
	}

	userID, uErr := uuid.Parse(claims.Subject)
	if uErr != nil || userID == uuid.Nil {
		return ctx, fault.New(fault.CodeUnauthenticated, op, "invalid or expired token")
	}

	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}), nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) issueSession(op string, user *domain.User) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(as.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, sErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
	if sErr != nil {
		return nil, fault.Wrap(fault.CodeInternal, op, sErr)
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}
