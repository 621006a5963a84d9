package models

import "time"

// Forum is a top-level board containing topics. Forums are read-mostly;
// they are created by seed/admin tooling, not by this layer.
type Forum struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	Topics      []Topic   `gorm:"foreignKey:ForumID" json:"topics,omitempty"`
}

// TableName matches the legacy schema (singular).
func (Forum) TableName() string { return "forum" }

// Topic is a subdivision of a forum under which threads are created.
type Topic struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	ForumID     uint    `gorm:"not null;index" json:"forum_id"`
}

// TableName matches the legacy schema (singular).
func (Topic) TableName() string { return "topic" }
