package models

import "time"

// Activity log entry types shown in the admin activity feed.
const (
	ActivityArticleCreated     = "article_created"
	ActivityArticlePublished   = "article_published"
	ActivityArticleUnpublished = "article_unpublished"
	ActivityArticleDeleted     = "article_deleted"
	ActivityUserRegistered     = "user_registered"
)

// ActivityLog records a notable event for the admin dashboard activity feed.
type ActivityLog struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"index;not null"`
	Description string    `json:"description" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the database table name for the ActivityLog model.
func (ActivityLog) TableName() string {
	return "activity_logs"
}
