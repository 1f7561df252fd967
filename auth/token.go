package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidClaims = errors.New("invalid token claims")

// Claims are the session claims issued by the identity provider. The user id is the
// subject of the token.
type Claims struct {
	UserId uuid.UUID `json:"sub"`
	Email  string    `json:"email"`
	Exp    int64     `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidClaims
	}
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return ErrInvalidClaims
	}
	userId, err := uuid.Parse(sub)
	if err != nil {
		return ErrInvalidClaims
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return ErrInvalidClaims
	}
	claims.UserId = userId
	claims.Exp = int64(exp)
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func CreateToken(userId uuid.UUID, email string, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub":   userId.String(),
			"email": email,
			"exp":   time.Now().Add(ttl).Unix(),
		})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string, secret string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}

// ParseClaims verifies the token and extracts its claims.
func ParseClaims(tokenString string, secret string) (*Claims, error) {
	token, err := ParseToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidClaims
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}
