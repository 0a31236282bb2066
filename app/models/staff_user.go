package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

const staffAPIKeyPrefix = "ps_"

var staffAPIKeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// StaffUser is an internal account that authenticates the admin API via the
// X-API-Key header. Passwords are kept bcrypt-hashed for staff tooling; the
// raw API key is only ever shown once at issue time.
type StaffUser struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email            string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,max=200"`
	Password         string         `gorm:"type:text;not null" json:"-" validate:"required,min=8"`
	Status           string         `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active inactive"`
	APIKeyHash       string         `gorm:"type:char(64);uniqueIndex" json:"-"`
	APIKeyPrefix     string         `gorm:"type:varchar(20)" json:"api_key_prefix"`
	APIKeyCreatedAt  *time.Time     `json:"api_key_created_at"`
	APIKeyLastUsedAt *time.Time     `json:"api_key_last_used_at"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StaffUser) TableName() string {
	return "staff_users"
}

func (u *StaffUser) Validate() error {
	v := validator.New()
	return v.Struct(u)
}

// NewStaffUser builds an active staff account with a hashed password.
func NewStaffUser(name, email, password string) (*StaffUser, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &StaffUser{
		Name:     name,
		Email:    email,
		Password: hash,
		Status:   StaffStatusActive,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword verifies the given password against the stored hash.
func (u *StaffUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsActive reports whether the account may use the admin API.
func (u *StaffUser) IsActive() bool {
	return u.Status == StaffStatusActive
}

// IssueAPIKey generates a fresh API key, stores its hash and prefix on the
// struct, and returns the raw secret. Callers must persist the struct.
func (u *StaffUser) IssueAPIKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	rawKey := staffAPIKeyPrefix + strings.ToLower(staffAPIKeyEncoding.EncodeToString(b))
	if len(rawKey) < 12 {
		return "", fmt.Errorf("api key generation failed: key too short")
	}
	now := time.Now()
	u.APIKeyHash = HashAPIKey(rawKey)
	u.APIKeyPrefix = rawKey[:16]
	u.APIKeyCreatedAt = &now
	u.APIKeyLastUsedAt = nil
	return rawKey, nil
}

// HashAPIKey returns the SHA-256 hash for the provided API key.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
