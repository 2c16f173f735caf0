package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null;size:254"`
	Username     string `gorm:"uniqueIndex;not null;size:150"`
	FirstName    string `gorm:"not null;size:150"`
	LastName     string `gorm:"not null;size:150"`
	PasswordHash string `gorm:"not null"`
	Avatar       string // path under the media root, empty when unset

	// Relationships
	Recipes       []Recipe       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CartEntries   []ShoppingCart `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Subscriptions []Subscription `gorm:"foreignKey:SubscriberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Subscribers   []Subscription `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// FullName returns "first last", falling back to the username when both
// name parts are empty.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
