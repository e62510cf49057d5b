package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

type Post struct {
	gorm.Model
	Title    string     `gorm:"size:250;not null" json:"title"`
	Slug     string     `gorm:"size:250;index" json:"slug"`
	Body     string     `gorm:"type:text" json:"body"`
	AuthorID uint       `gorm:"not null;index" json:"authorId"`
	Author   User       `json:"author"`
	Status   PostStatus `gorm:"size:20;not null;index" json:"status"`
	Publish  time.Time  `gorm:"index" json:"publish"`
}
