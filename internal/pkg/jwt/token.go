package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// Claims carries the authenticated account and its role
type Claims struct {
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the account and returns it with
// its expiry as unix seconds.
func GenerateToken(userID int64, name string, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	if cfg.Secret == "" {
		return "", 0, fmt.Errorf("jwt secret is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID: userID,
		Role:   role,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken parses and verifies a token, rejecting non-HMAC algorithms
// and tokens without a known role.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
