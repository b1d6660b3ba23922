package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beingsaumyadeep/py-commerce/internal/hash"
	"github.com/beingsaumyadeep/py-commerce/internal/models"
	"github.com/beingsaumyadeep/py-commerce/internal/util"
)

type UserService struct {
	DB *gorm.DB
}

func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password required", ErrValidation)
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		HashedPassword: hashed,
		FullName:       fullName,
		IsActive:       true,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns the matching user. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", email)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	skip, limit = util.Clamp(skip, limit)

	var users []models.User
	err := s.DB.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
