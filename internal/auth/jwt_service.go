package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"contacthub/internal/apperrors"
	"contacthub/internal/model"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Claims represents JWT claims.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens. Verification is a
// pure function of the token and the clock; there is no revocation list, so a
// token stays valid for its full TTL regardless of client-side logout.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret and TTL.
// A non-positive ttl falls back to DefaultTokenTTL.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue generates a signed token embedding the user's identity.
func (s *JWTService) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks presence, signature integrity, and expiry, in that order, and
// returns the embedded identity. Expiry and tamper failures are distinct so
// callers can prompt a re-login instead of rejecting the request as forged.
func (s *JWTService) Verify(tokenString string) (*model.Identity, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		// A tampered signature trumps any claim failure.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, apperrors.ErrTokenInvalid
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return &model.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
