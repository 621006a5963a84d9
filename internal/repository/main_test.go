package repository

import (
	"testing"

	"github.com/cmcummings/warechat/internal/database"
	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an isolated in-memory database with the full schema
// applied. A single connection keeps the in-memory database alive and makes
// the foreign key pragma stick.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixtures struct {
	user  *models.User
	forum *models.Forum
	topic *models.Topic
}

// seedHierarchy creates one user, one forum, and one topic to hang threads on.
func seedHierarchy(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	forum := &models.Forum{Name: "general"}
	if err := db.Create(forum).Error; err != nil {
		t.Fatalf("seed forum: %v", err)
	}
	topic := &models.Topic{Name: "announcements", ForumID: forum.ID}
	if err := db.Create(topic).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	return fixtures{user: user, forum: forum, topic: topic}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}
