package seed

import (
	"testing"

	"github.com/cmcummings/warechat/internal/database"
	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSeedDB(t *testing.T) *gorm.DB {
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
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeederRun(t *testing.T) {
	db := openSeedDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true, MaxDays: 30})

	counts := Counts{
		Users:            5,
		Forums:           2,
		TopicsPerForum:   2,
		ThreadsPerTopic:  2,
		RepliesPerThread: 2,
	}
	if err := seeder.Run(counts); err != nil {
		t.Fatalf("seeder run: %v", err)
	}

	var users, forums, topics, threads int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Forum{}).Count(&forums)
	db.Model(&models.Topic{}).Count(&topics)
	db.Model(&models.Thread{}).Count(&threads)

	if users != 5 {
		t.Errorf("expected 5 users, got %d", users)
	}
	if forums != 2 {
		t.Errorf("expected 2 forums, got %d", forums)
	}
	if topics != 4 {
		t.Errorf("expected 4 topics, got %d", topics)
	}
	wantThreads := int64(counts.Forums * counts.TopicsPerForum * counts.ThreadsPerTopic)
	if threads != wantThreads {
		t.Errorf("expected %d threads, got %d", wantThreads, threads)
	}

	// every thread carries exactly one original post
	var badThreads int64
	db.Raw(`SELECT COUNT(*) FROM thread WHERE
		(SELECT COUNT(*) FROM post WHERE post.thread_id = thread.id AND post.original_post = true) != 1`).
		Scan(&badThreads)
	if badThreads != 0 {
		t.Errorf("%d threads do not have exactly one original post", badThreads)
	}

	var postsPerThread int64
	db.Model(&models.Post{}).Count(&postsPerThread)
	wantPosts := wantThreads * int64(1+counts.RepliesPerThread)
	if postsPerThread != wantPosts {
		t.Errorf("expected %d posts, got %d", wantPosts, postsPerThread)
	}

	// a moderator is seeded so the moderation path can be exercised
	var moderators int64
	db.Model(&models.UserInForum{}).Where("rank >= ?", models.ModeratorRank).Count(&moderators)
	if moderators == 0 {
		t.Error("expected at least one seeded moderator")
	}
}

func TestSeederClearAll(t *testing.T) {
	db := openSeedDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	if err := seeder.Run(Counts{Users: 2, Forums: 1, TopicsPerForum: 1, ThreadsPerTopic: 1, RepliesPerThread: 1}); err != nil {
		t.Fatalf("seeder run: %v", err)
	}
	if err := seeder.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	for _, model := range []interface{}{&models.Post{}, &models.Thread{}, &models.UserInForum{}, &models.Topic{}, &models.Forum{}, &models.User{}} {
		var n int64
		db.Model(model).Count(&n)
		if n != 0 {
			t.Errorf("expected %T table to be empty, found %d rows", model, n)
		}
	}
}

func TestFactoryGrantRankSurvivesFollow(t *testing.T) {
	db := openSeedDB(t)
	factory := NewFactory(db, Options{SkipBcrypt: true})

	user, err := factory.CreateUser("pw")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	forum, err := factory.CreateForum(1)
	if err != nil {
		t.Fatalf("create forum: %v", err)
	}

	if err := factory.GrantRank(user.ID, forum.ID, models.ModeratorRank); err != nil {
		t.Fatalf("grant rank: %v", err)
	}
	if err := factory.Follow(user.ID, forum.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	var row models.UserInForum
	if err := db.Where("user_id = ? AND forum_id = ?", user.ID, forum.ID).First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Rank == nil || *row.Rank != models.ModeratorRank {
		t.Errorf("rank lost after follow: %+v", row.Rank)
	}
	if row.Follows == nil || !*row.Follows {
		t.Error("follow flag not set")
	}
}
