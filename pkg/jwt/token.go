package jwtPkg

import (
	"ExpenseTracker/internal/entity"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken  = errors.New("authorization token required")
	ErrInvalidHeader = errors.New("invalid Authorization format")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// UserLocalsKey is where the token middleware stores the caller.
const UserLocalsKey = "user"

type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type IJWT interface {
	Sign(user entity.UserLoginData) (string, int64, error)
	Verify(accessToken string) (*Claims, error)
	VerifyTokenHeader(c *fiber.Ctx) (*Claims, error)
}

type jwtService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func New(secretKey string, ttl time.Duration) IJWT {
	return &jwtService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *jwtService) Sign(user entity.UserLoginData) (string, int64, error) {
	now := j.now()
	expiredAt := now.Add(j.ttl)

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiredAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return accessToken, expiredAt.Unix(), nil
}

func (j *jwtService) Verify(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (j *jwtService) VerifyTokenHeader(c *fiber.Ctx) (*Claims, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrInvalidHeader
	}

	return j.Verify(parts[1])
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	user, ok := c.Locals(UserLocalsKey).(entity.UserLoginData)
	if !ok || user.ID == 0 {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
