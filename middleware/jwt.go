package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"coursetrack/apperror"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens alike.
var ErrInvalidToken = apperror.New(apperror.KindUnauthenticated, "Invalid or expired token")

var errMissingToken = apperror.New(apperror.KindUnauthenticated, "Authentication required")

const userIDKey = "userId"

type claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Auth issues and verifies HS256 bearer tokens.
type Auth struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewAuth(secret string, expiresIn time.Duration) *Auth {
	return &Auth{secret: []byte(secret), expiresIn: expiresIn, now: time.Now}
}

// IssueToken generates a JWT token carrying only the user id.
func (a *Auth) IssueToken(userID uint) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiresIn)),
		},
	})
	return token.SignedString(a.secret)
}

// VerifyToken returns the user id carried by a valid token.
func (a *Auth) VerifyToken(tokenString string) (uint, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var c claims
	_, err := parser.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || c.UserID == 0 {
		return 0, ErrInvalidToken
	}
	// jwt/v4 validates exp against the wall clock, check our own clock too
	if c.ExpiresAt == nil || !a.now().Before(c.ExpiresAt.Time) {
		return 0, ErrInvalidToken
	}
	return c.UserID, nil
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", errMissingToken
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(authHeader[len("Bearer "):]), nil
}

// Required rejects requests without a valid bearer token and stores the
// caller's id in c.Locals("userId").
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return ErrorResponse(c, err)
		}
		userID, err := a.VerifyToken(tokenString)
		if err != nil {
			return ErrorResponse(c, err)
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// Optional identifies the caller when a valid token is present and carries on
// anonymously otherwise.
func (a *Auth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, err := bearerToken(c); err == nil {
			if userID, err := a.VerifyToken(tokenString); err == nil {
				c.Locals(userIDKey, userID)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller, if any.
func UserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(userIDKey).(uint)
	return userID, ok && userID != 0
}
