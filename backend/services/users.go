package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"smartscore/backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages accounts and verifies logins.
type UserService struct {
	DB     *gorm.DB
	Logger *log.Logger
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

func NewUserService(db *gorm.DB, logger *log.Logger) *UserService {
	return &UserService{DB: db, Logger: logger}
}

func (s *UserService) hash(password string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CreateFacultyUser stores a new account. The role is always faculty.
func (s *UserService) CreateFacultyUser(ctx context.Context, userID, username, password string) (*models.User, error) {
	return s.createUser(ctx, userID, username, password, models.RoleFaculty)
}

func (s *UserService) createUser(ctx context.Context, userID, username, password string, role models.UserRole) (*models.User, error) {
	hashed, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if storeKind(err) == KindDuplicateKey {
			return nil, newError(KindDuplicateKey, err, "User ID or username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ListFacultyUsers returns faculty accounts only; admins are never listed.
func (s *UserService) ListFacultyUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("role = ?", models.RoleFaculty).
		Order("username").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, err, "User not found")
		}
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return &user, nil
}

// Authenticate checks a username/password pair against the stored bcrypt hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, newError(KindInvalidCredential, nil, "Incorrect password")
	}
	return user, nil
}

// EnsureAdmin creates the admin account unless the username is already taken.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, userID, username, password string) (bool, error) {
	_, err := s.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if KindOf(err) != KindNotFound {
		return false, err
	}

	if _, err := s.createUser(ctx, userID, username, password, models.RoleAdmin); err != nil {
		return false, err
	}
	s.Logger.Printf("Admin account %q created", username)
	return true, nil
}
