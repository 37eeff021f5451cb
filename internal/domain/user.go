package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountType describes what kind of account a user registered as.
type AccountType string

const (
	AccountInfluencer AccountType = "influencer"
	AccountCompany    AccountType = "company"
)

func (a AccountType) Valid() bool {
	return a == AccountInfluencer || a == AccountCompany
}

// Role is the authorization role, independent of the account type.
// Registration always produces RoleUser; admins are provisioned out of band.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string      `json:"username" gorm:"uniqueIndex;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string      `json:"-" gorm:"not null"`
	AccountType  AccountType `json:"accountType" gorm:"not null"`
	Role         Role        `json:"role" gorm:"not null;default:user"`
	Active       bool        `json:"active" gorm:"not null;default:true"`

	// Reset credential pair: both set by a forgot-password request and
	// both cleared together when the token is consumed.
	ResetPasswordToken   *string    `json:"-" gorm:"uniqueIndex"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
