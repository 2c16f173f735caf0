package models

import "gorm.io/gorm"

// Subscription follows an author. Self-subscription is rejected in the
// relation service and additionally blocked by the check constraint.
type Subscription struct {
	gorm.Model

	SubscriberID uint `gorm:"not null;uniqueIndex:idx_subscriber_author;check:chk_no_self_subscription,subscriber_id <> author_id"`
	AuthorID     uint `gorm:"not null;uniqueIndex:idx_subscriber_author"`

	// Relationships
	Subscriber User `gorm:"foreignKey:SubscriberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author     User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
