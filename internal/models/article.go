package models

import "time"

// Article lifecycle states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Categories articles can be filed under.
var Categories = []string{"news", "opinion", "lifestyle", "sports", "technology", "business"}

// Article represents a single piece of content on the site.
//
// PublishedAt is set the first time the article transitions to published and
// is preserved across unpublish so the original publish date survives
// re-publication.
type Article struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"not null"`
	Content       string     `json:"content" gorm:"not null;type:text"`
	Excerpt       string     `json:"excerpt"`
	Author        string     `json:"author" gorm:"not null"`
	Category      string     `json:"category" gorm:"index;not null"`
	Tags          []string   `json:"tags" gorm:"serializer:json"`
	FeaturedImage string     `json:"featuredImage"`
	Status        string     `json:"status" gorm:"index;not null;default:draft"`
	Featured      bool       `json:"featured" gorm:"default:false"`
	AllowComments bool       `json:"allowComments" gorm:"default:true"`
	Views         int64      `json:"views" gorm:"default:0"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// TableName returns the database table name for the Article model.
func (Article) TableName() string {
	return "articles"
}

// IsPublished reports whether the article is visible on public pages.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
