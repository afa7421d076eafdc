package usecase

import (
	"travel-booking/internal/domain/customer"
	"travel-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (int64, customer.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (int64, customer.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	role, err := customer.NewRole(claims.Role)
	if err != nil {
		return 0, "", err
	}

	return claims.CustomerID, role, nil
}
