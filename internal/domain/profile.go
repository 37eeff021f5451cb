package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// InfluencerProfile is a public listing owned by an influencer account.
type InfluencerProfile struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID                   `json:"userId" gorm:"type:uuid;not null;index"`
	Age          int                         `json:"age" gorm:"not null"`
	Gender       Gender                      `json:"gender" gorm:"not null"`
	Location     string                      `json:"location" gorm:"not null;index"`
	Followers    int                         `json:"followers" gorm:"not null"`
	Languages    datatypes.JSONSlice[string] `json:"languages"`
	Categories   datatypes.JSONSlice[string] `json:"categories"`
	ProfilePhoto string                      `json:"profilePhoto" gorm:"not null"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// WishlistItem bookmarks a profile for a user. One entry per (user, profile).
type WishlistItem struct {
	ID        uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID          `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_profile"`
	ProfileID uuid.UUID          `json:"profileId" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_profile"`
	Profile   *InfluencerProfile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
