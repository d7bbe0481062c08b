package models

import "time"

const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

type NewsletterSubscriber struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Email  string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Name   *string `gorm:"type:varchar(100)" json:"name"`
	Status string  `gorm:"type:varchar(20);not null;default:active" json:"status"`

	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}
