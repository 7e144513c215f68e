// Package models contains data models for the content service.
package models

import "time"

// User roles. Admin and editor both unlock the content-management console.
const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Preferences holds a reader's category subscriptions and notification choices.
type Preferences struct {
	Categories    []string `json:"categories"`
	Notifications []string `json:"notifications"`
}

// User represents a registered reader or staff member.
type User struct {
	ID           int64       `json:"id" gorm:"primaryKey"`
	FirstName    string      `json:"firstName" gorm:"not null"`
	LastName     string      `json:"lastName" gorm:"not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string      `json:"-" gorm:"not null"`
	Role         string      `json:"role" gorm:"not null;default:user"`
	Preferences  Preferences `json:"preferences" gorm:"serializer:json"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// CanManageContent reports whether the user may access the admin console.
func (u *User) CanManageContent() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// Bookmark links a user to an article they saved for later.
type Bookmark struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	ArticleID int64     `json:"article_id" gorm:"primaryKey"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Article   Article   `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the Bookmark model.
func (Bookmark) TableName() string {
	return "bookmarks"
}

// ReadingHistory records a single article read by a user.
type ReadingHistory struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	ArticleID int64     `json:"article_id" gorm:"not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Article   Article   `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	ReadAt    time.Time `json:"readAt"`
}

// TableName returns the database table name for the ReadingHistory model.
func (ReadingHistory) TableName() string {
	return "reading_history"
}
