package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = time.Hour

// Claims are the two identity claims carried by an issued token.
type Claims struct {
	UserID int
	Email  string
}

// TokenService issues and verifies the signed, time-limited credentials
// used by the API. The signing secret is injected at construction, once,
// from configuration.
type TokenService interface {
	Issue(userID int, email string) (string, error)
	Verify(token string) (*Claims, error)
}

type jwtTokenService struct {
	secret []byte
}

func NewTokenService(secret string) TokenService {
	return &jwtTokenService{secret: []byte(secret)}
}

func (s *jwtTokenService) Issue(userID int, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtTokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idClaim, ok := mapClaims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	emailClaim, ok := mapClaims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int(idClaim), Email: emailClaim}, nil
}
