package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"ti-management/pkg/apperrors"
)

type Claims struct {
	UserID         int64  `json:"userId"`
	Rol            string `json:"rol"`
	IsRefreshToken bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(userID int64, rol string) (access string, refresh string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	secretKey       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration) JWTService {
	return &jwtService{
		secretKey:       secretKey,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

func (s *jwtService) GenerateTokens(userID int64, rol string) (string, string, error) {
	access, err := s.sign(userID, rol, false, s.accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.sign(userID, rol, true, s.refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *jwtService) sign(userID int64, rol string, isRefresh bool, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:         userID,
		Rol:            rol,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
