package repository

import (
	"context"
	"errors"

	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for per-(user, forum)
// state: ranks and follow flags.
type FollowRepository interface {
	GetDetails(ctx context.Context, forumID, userID uint) (*models.UserInForum, error)
	SetFollow(ctx context.Context, userID, forumID uint, follow bool) (bool, error)
	FollowedFeed(ctx context.Context, userID uint) ([]*models.Post, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// GetDetails never reports a missing row as an error: the absence of a
// user_in_forum row is equivalent to {rank: nil, follows: nil}.
func (r *followRepository) GetDetails(ctx context.Context, forumID, userID uint) (*models.UserInForum, error) {
	var details models.UserInForum
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND forum_id = ?", userID, forumID).
		First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserInForum{UserID: userID, ForumID: forumID}, nil
	}
	if err != nil {
		return nil, wrapError(err, "user_in_forum", "UserForumDetails", forumID)
	}
	return &details, nil
}

// SetFollow upserts the follow flag in a single atomic statement. On
// conflict only the follows column is assigned, so a concurrently granted
// rank can never be lost to a follow toggle.
func (r *followRepository) SetFollow(ctx context.Context, userID, forumID uint, follow bool) (bool, error) {
	row := models.UserInForum{
		UserID:  userID,
		ForumID: forumID,
		Follows: &follow,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "forum_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"follows"}),
		}).
		Create(&row).Error
	if err != nil {
		return false, wrapError(err, "user_in_forum", "UserForumDetails", forumID)
	}
	return follow, nil
}

// FollowedFeed fetches the ten newest original posts across every forum the
// user follows, in one fan-in join; it never iterates followed forums
// individually.
func (r *followRepository) FollowedFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN thread ON thread.id = post.thread_id").
		Joins("JOIN user_in_forum ON user_in_forum.forum_id = thread.forum_id").
		Where("post.original_post = ? AND user_in_forum.user_id = ? AND user_in_forum.follows = ?", true, userID, true).
		Order("post.timestamp_posted DESC, post.id DESC").
		Limit(DefaultPageSize).
		Preload("Thread").
		Preload("Thread.Forum").
		Preload("Thread.Topic").
		Preload("User").
		Find(&posts).Error
	if err != nil {
		return nil, wrapError(err, "post", "User", userID)
	}
	return posts, nil
}
