package models

import "time"

// Thread is an ordered sequence of posts within a forum topic. Every thread
// owns at least one post: its original post. Deleting a thread cascades to
// its posts.
type Thread struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	ForumID uint   `gorm:"not null;index" json:"forum_id"`
	Forum   Forum  `gorm:"foreignKey:ForumID" json:"-"`
	TopicID uint   `gorm:"not null;index" json:"topic_id"`
	Topic   Topic  `gorm:"foreignKey:TopicID" json:"-"`
	Posts   []Post `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName matches the legacy schema (singular).
func (Thread) TableName() string { return "thread" }

// Post is a single message in a thread. Exactly one post per thread has
// OriginalPost set: the chronologically first one, which stands in for the
// thread body.
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	ThreadID        uint      `gorm:"not null;index" json:"thread_id"`
	Thread          Thread    `gorm:"foreignKey:ThreadID" json:"-"`
	OriginalPost    bool      `gorm:"not null;default:false" json:"original_post"`
	TimestampPosted time.Time `gorm:"autoCreateTime;index" json:"timestamp_posted"`
}

// TableName matches the legacy schema (singular).
func (Post) TableName() string { return "post" }
