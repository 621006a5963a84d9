// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cmcummings/warechat/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options tunes the seeder.
type Options struct {
	// SkipBcrypt replaces password hashing with a fixed marker. Hashing
	// fifty users at cost 10 makes the sqlite test suite crawl.
	SkipBcrypt bool
	// MaxDays bounds how far in the past generated posts are dated.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a fake identity and the given password.
func (f *Factory) CreateUser(password string) (*models.User, error) {
	hashed := "seeded-password"
	if !f.opts.SkipBcrypt {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed = string(b)
	}
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), f.rng.Intn(10000)),
		Email:    gofakeit.Email(),
		Password: hashed,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateForum persists a forum with the given number of topics.
func (f *Factory) CreateForum(topicCount int) (*models.Forum, error) {
	desc := gofakeit.Sentence(8)
	forum := &models.Forum{
		Name:        fmt.Sprintf("%s-%d", gofakeit.NounAbstract(), f.rng.Intn(10000)),
		Description: &desc,
	}
	if err := f.db.Create(forum).Error; err != nil {
		return nil, err
	}
	for i := 0; i < topicCount; i++ {
		topicDesc := gofakeit.Sentence(6)
		topic := &models.Topic{
			Name:        gofakeit.BuzzWord(),
			Description: &topicDesc,
			ForumID:     forum.ID,
		}
		if err := f.db.Create(topic).Error; err != nil {
			return nil, err
		}
		forum.Topics = append(forum.Topics, *topic)
	}
	return forum, nil
}

// CreateThread persists a thread together with its original post, dated
// randomly within the configured window.
func (f *Factory) CreateThread(forumID, topicID uint, author *models.User) (*models.Thread, error) {
	thread := &models.Thread{
		Title:   gofakeit.Sentence(5),
		ForumID: forumID,
		TopicID: topicID,
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}
		post := &models.Post{
			Content:         gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:          author.ID,
			ThreadID:        thread.ID,
			OriginalPost:    true,
			TimestampPosted: f.pastTime(),
		}
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// CreateReply persists a reply to the given thread.
func (f *Factory) CreateReply(threadID uint, author *models.User) (*models.Post, error) {
	post := &models.Post{
		Content:         gofakeit.Paragraph(1, 2, 10, "\n"),
		UserID:          author.ID,
		ThreadID:        threadID,
		TimestampPosted: f.pastTime(),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// GrantRank sets a user's rank within a forum, creating the row if needed.
func (f *Factory) GrantRank(userID, forumID uint, rank int) error {
	row := models.UserInForum{UserID: userID, ForumID: forumID}
	if err := f.db.FirstOrCreate(&row, models.UserInForum{UserID: userID, ForumID: forumID}).Error; err != nil {
		return err
	}
	return f.db.Model(&models.UserInForum{}).
		Where("user_id = ? AND forum_id = ?", userID, forumID).
		Update("rank", rank).Error
}

// Follow marks a user as following a forum.
func (f *Factory) Follow(userID, forumID uint) error {
	follows := true
	row := models.UserInForum{UserID: userID, ForumID: forumID}
	if err := f.db.FirstOrCreate(&row, models.UserInForum{UserID: userID, ForumID: forumID}).Error; err != nil {
		return err
	}
	return f.db.Model(&models.UserInForum{}).
		Where("user_id = ? AND forum_id = ?", userID, forumID).
		Update("follows", &follows).Error
}

func (f *Factory) pastTime() time.Time {
	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}
