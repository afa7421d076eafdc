package usecase

import (
	"context"
	"errors"

	"travel-booking/internal/domain/customer"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/internal/pkg/password"
	"travel-booking/internal/usecase/queries"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type CustomerRepository interface {
	FindByUsername(ctx context.Context, username customer.Username) (*customer.Customer, string, error)
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials customer.Credentials) (string, *queries.CustomerView, error)
	GetCurrentCustomer(ctx context.Context, customerID int64) (*queries.CustomerView, error)
	ValidateToken(tokenString string) (int64, customer.Role, error)
}

type authUseCaseImpl struct {
	customerRepo CustomerRepository
	jwtService   *jwt.Service
}

func NewAuthUseCase(customerRepo CustomerRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		customerRepo: customerRepo,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials customer.Credentials) (string, *queries.CustomerView, error) {
	cust, hashedPassword, err := a.customerRepo.FindByUsername(ctx, credentials.Username())
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(cust.ID(), cust.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, queries.NewCustomerView(cust), nil
}

func (a *authUseCaseImpl) GetCurrentCustomer(ctx context.Context, customerID int64) (*queries.CustomerView, error) {
	cust, err := a.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return queries.NewCustomerView(cust), nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (int64, customer.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", ErrTokenValidation
	}

	role, err := customer.NewRole(claims.Role)
	if err != nil {
		return 0, "", ErrTokenValidation
	}

	return claims.CustomerID, role, nil
}
