package users

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("admin not found")
)

type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;not null;uniqueIndex:idx_admins_username"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HashPassword returns a salted bcrypt hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

func (a *Admin) SetPassword(password string) error {
	h, err := HashPassword(password)
	if err != nil {
		return err
	}
	a.PasswordHash = h
	return nil
}

// dummyHash keeps the unknown-username path as slow as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("kurevin-art-timing"), bcrypt.DefaultCost)

// Authenticate returns the admin for a matching username and password. Every
// failure, unknown user or wrong password, is ErrInvalidCredentials.
func Authenticate(db *gorm.DB, username, password string) (*Admin, error) {
	var a Admin
	err := db.Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !a.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &a, nil
}

func Get(db *gorm.DB, id uint) (*Admin, error) {
	var a Admin
	if err := db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// EnsureAdmin creates the single admin account when none exists. Once any
// admin row is present nothing changes, whatever username is passed, and the
// existing account keeps its password. created reports whether a row was
// inserted.
func EnsureAdmin(db *gorm.DB, username, password string) (created bool, err error) {
	var n int64
	if err := db.Model(&Admin{}).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	a := Admin{Username: username}
	if err := a.SetPassword(password); err != nil {
		return false, err
	}
	if err := db.Create(&a).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ResetPassword replaces username's password hash.
func ResetPassword(db *gorm.DB, username, password string) error {
	h, err := HashPassword(password)
	if err != nil {
		return err
	}
	res := db.Model(&Admin{}).Where("username = ?", username).Update("password_hash", h)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
