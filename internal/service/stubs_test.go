package service

import (
	"context"

	"github.com/cmcummings/warechat/internal/models"
)

// Hand-rolled repository stubs with overridable behavior per test.

type userRepoStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, models.NewNotFoundError("User", username)
}

type threadRepoStub struct {
	getTopicThreadsFn   func(ctx context.Context, topicID uint) ([]*models.Post, error)
	getThreadFn         func(ctx context.Context, id uint, limit, offset int) (*models.Thread, error)
	createThreadFn      func(ctx context.Context, forumID, topicID, userID uint, title, content string) (uint, error)
	createReplyFn       func(ctx context.Context, threadID, userID uint, content string) error
	getPostWithThreadFn func(ctx context.Context, postID uint) (*models.Post, error)
	deletePostFn        func(ctx context.Context, postID uint) error
}

func (s *threadRepoStub) GetTopicThreads(ctx context.Context, topicID uint) ([]*models.Post, error) {
	if s.getTopicThreadsFn != nil {
		return s.getTopicThreadsFn(ctx, topicID)
	}
	return nil, nil
}

func (s *threadRepoStub) GetThread(ctx context.Context, id uint, limit, offset int) (*models.Thread, error) {
	if s.getThreadFn != nil {
		return s.getThreadFn(ctx, id, limit, offset)
	}
	return nil, models.NewNotFoundError("Thread", id)
}

func (s *threadRepoStub) CreateThread(ctx context.Context, forumID, topicID, userID uint, title, content string) (uint, error) {
	if s.createThreadFn != nil {
		return s.createThreadFn(ctx, forumID, topicID, userID, title, content)
	}
	return 1, nil
}

func (s *threadRepoStub) CreateReply(ctx context.Context, threadID, userID uint, content string) error {
	if s.createReplyFn != nil {
		return s.createReplyFn(ctx, threadID, userID, content)
	}
	return nil
}

func (s *threadRepoStub) GetPostWithThread(ctx context.Context, postID uint) (*models.Post, error) {
	if s.getPostWithThreadFn != nil {
		return s.getPostWithThreadFn(ctx, postID)
	}
	return nil, models.NewNotFoundError("Post", postID)
}

func (s *threadRepoStub) DeletePost(ctx context.Context, postID uint) error {
	if s.deletePostFn != nil {
		return s.deletePostFn(ctx, postID)
	}
	return nil
}

type followRepoStub struct {
	getDetailsFn   func(ctx context.Context, forumID, userID uint) (*models.UserInForum, error)
	setFollowFn    func(ctx context.Context, userID, forumID uint, follow bool) (bool, error)
	followedFeedFn func(ctx context.Context, userID uint) ([]*models.Post, error)
}

func (s *followRepoStub) GetDetails(ctx context.Context, forumID, userID uint) (*models.UserInForum, error) {
	if s.getDetailsFn != nil {
		return s.getDetailsFn(ctx, forumID, userID)
	}
	return &models.UserInForum{UserID: userID, ForumID: forumID}, nil
}

func (s *followRepoStub) SetFollow(ctx context.Context, userID, forumID uint, follow bool) (bool, error) {
	if s.setFollowFn != nil {
		return s.setFollowFn(ctx, userID, forumID, follow)
	}
	return follow, nil
}

func (s *followRepoStub) FollowedFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	if s.followedFeedFn != nil {
		return s.followedFeedFn(ctx, userID)
	}
	return nil, nil
}

type forumRepoStub struct {
	getByNameFn func(ctx context.Context, name string) (*models.Forum, error)
	getTopicFn  func(ctx context.Context, id uint) (*models.Topic, error)
}

func (s *forumRepoStub) GetByName(ctx context.Context, name string) (*models.Forum, error) {
	if s.getByNameFn != nil {
		return s.getByNameFn(ctx, name)
	}
	return nil, models.NewNotFoundError("Forum", name)
}

func (s *forumRepoStub) GetTopic(ctx context.Context, id uint) (*models.Topic, error) {
	if s.getTopicFn != nil {
		return s.getTopicFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Topic", id)
}
