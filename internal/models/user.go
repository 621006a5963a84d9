// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. The Password field holds a bcrypt
// hash and must never be serialized or logged.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	DateRegistered time.Time `gorm:"autoCreateTime" json:"date_registered"`
}

// TableName matches the legacy schema.
func (User) TableName() string { return "users" }
