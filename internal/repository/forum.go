package repository

import (
	"context"

	"github.com/cmcummings/warechat/internal/cache"
	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/gorm"
)

// ForumRepository defines read operations over forums and their topics.
// Forums and topics are created out of band (seed/admin tooling), so there
// are no write operations here.
type ForumRepository interface {
	GetByName(ctx context.Context, name string) (*models.Forum, error)
	GetTopic(ctx context.Context, id uint) (*models.Topic, error)
}

type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository returns a new ForumRepository implementation.
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) GetByName(ctx context.Context, name string) (*models.Forum, error) {
	var forum models.Forum
	err := cache.Aside(ctx, cache.ForumKey(name), &forum, cache.ForumTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Topics", func(db *gorm.DB) *gorm.DB {
				// insertion order
				return db.Order("id ASC")
			}).
			Where("name = ?", name).
			First(&forum).Error
	})
	if err != nil {
		return nil, wrapError(err, "forum", "Forum", name)
	}
	return &forum, nil
}

func (r *forumRepository) GetTopic(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, wrapError(err, "topic", "Topic", id)
	}
	return &topic, nil
}
