package repository

import (
	"context"

	"github.com/cmcummings/warechat/internal/cache"
	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/gorm"
)

// ThreadRepository defines persistence operations over threads and posts,
// including the two operations that need a real transaction boundary:
// thread creation (thread + original post, all-or-nothing) and original-post
// deletion (cascades to the whole thread).
type ThreadRepository interface {
	GetTopicThreads(ctx context.Context, topicID uint) ([]*models.Post, error)
	GetThread(ctx context.Context, id uint, limit, offset int) (*models.Thread, error)
	CreateThread(ctx context.Context, forumID, topicID, userID uint, title, content string) (uint, error)
	CreateReply(ctx context.Context, threadID, userID uint, content string) error
	GetPostWithThread(ctx context.Context, postID uint) (*models.Post, error)
	DeletePost(ctx context.Context, postID uint) error
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository returns a new ThreadRepository implementation.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

// GetTopicThreads fetches the ten most recently posted original posts within
// the topic, each joined with its thread and author. Callers resolve each
// row into a thread preview carrying only that post.
func (r *threadRepository) GetTopicThreads(ctx context.Context, topicID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN thread ON thread.id = post.thread_id").
		Where("post.original_post = ? AND thread.topic_id = ?", true, topicID).
		Order("post.timestamp_posted DESC, post.id DESC").
		Limit(DefaultPageSize).
		Preload("Thread").
		Preload("User").
		Find(&posts).Error
	if err != nil {
		return nil, wrapError(err, "post", "Topic", topicID)
	}
	return posts, nil
}

// GetThread loads a thread with a page of its posts in ascending timestamp
// order (the original post first). limit/offset express the pagination
// policy; the first default-sized page is served through the cache.
func (r *threadRepository) GetThread(ctx context.Context, id uint, limit, offset int) (*models.Thread, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	var thread models.Thread
	fetch := func() error {
		return r.db.WithContext(ctx).
			Preload("Posts", func(db *gorm.DB) *gorm.DB {
				return db.Order("timestamp_posted ASC, id ASC").Limit(limit).Offset(offset)
			}).
			Preload("Posts.User").
			First(&thread, id).Error
	}

	var err error
	if offset == 0 && limit == DefaultPageSize {
		err = cache.Aside(ctx, cache.ThreadKey(id), &thread, cache.ThreadTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, wrapError(err, "thread", "Thread", id)
	}
	return &thread, nil
}

// CreateThread inserts the thread row and its original post in a single
// transaction. A half-created thread with no post is an invariant violation,
// so if either insert fails neither persists.
func (r *threadRepository) CreateThread(ctx context.Context, forumID, topicID, userID uint, title, content string) (uint, error) {
	thread := models.Thread{
		Title:   title,
		ForumID: forumID,
		TopicID: topicID,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&thread).Error; err != nil {
			return err
		}
		post := models.Post{
			Content:      content,
			UserID:       userID,
			ThreadID:     thread.ID,
			OriginalPost: true,
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		return 0, wrapError(err, "thread", "Thread", title)
	}
	return thread.ID, nil
}

// CreateReply inserts a non-original post. A reply racing a thread deletion
// fails on the thread foreign key rather than leaving an orphan; that
// surfaces as the thread not being found.
func (r *threadRepository) CreateReply(ctx context.Context, threadID, userID uint, content string) error {
	post := models.Post{
		Content:  content,
		UserID:   userID,
		ThreadID: threadID,
	}
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewNotFoundError("Thread", threadID)
		}
		return wrapError(err, "post", "Post", threadID)
	}
	cache.InvalidateThread(ctx, threadID)
	return nil
}

// GetPostWithThread loads a post joined with its thread, which carries the
// forum the post ultimately belongs to. The authorization path needs that
// forum id to look up the acting user's rank.
func (r *threadRepository) GetPostWithThread(ctx context.Context, postID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Thread").
		Preload("User").
		First(&post, postID).Error
	if err != nil {
		return nil, wrapError(err, "post", "Post", postID)
	}
	return &post, nil
}

// DeletePost removes a post. Deleting the original post deletes the entire
// thread, posts included, atomically; the check and the deletes share one
// transaction so the original-post flag cannot go stale in between.
func (r *threadRepository) DeletePost(ctx context.Context, postID uint) error {
	var threadID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		threadID = post.ThreadID
		if post.OriginalPost {
			if err := tx.Where("thread_id = ?", post.ThreadID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Thread{}, post.ThreadID).Error
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return wrapError(err, "post", "Post", postID)
	}
	cache.InvalidateThread(ctx, threadID)
	return nil
}
