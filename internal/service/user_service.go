package service

import (
	"errors"
	"strings"

	"github.com/stellarnotes/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService manages the accounts annotations may reference.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Ensure creates username with a bcrypt-hashed password unless it already
// exists. Blank credentials are ignored, so an unset bootstrap account is a
// no-op. created reports whether a row was inserted.
func (s *UserService) Ensure(username, password string) (created bool, err error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return false, nil
	}

	if _, err := s.GetByUsername(username); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	if err := s.db.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetByUsername fetches a user by name.
func (s *UserService) GetByUsername(username string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Exists reports whether a user with this id is stored.
func (s *UserService) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&db.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the user; the store cascades the removal to their annotations.
func (s *UserService) Delete(username string) error {
	user, err := s.GetByUsername(username)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}
