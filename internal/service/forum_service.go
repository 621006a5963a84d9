package service

import (
	"context"
	"strings"

	"github.com/cmcummings/warechat/internal/models"
	"github.com/cmcummings/warechat/internal/repository"
	"github.com/cmcummings/warechat/internal/resolver"
)

// ForumService serves the browse-and-write surface of the forum hierarchy:
// forums, topics, threads, posts.
type ForumService struct {
	forumRepo  repository.ForumRepository
	threadRepo repository.ThreadRepository
}

// CreateThreadInput is the payload for creating a thread together with its
// original post.
type CreateThreadInput struct {
	ForumID uint
	TopicID uint
	UserID  uint
	Title   string
	Content string
}

// CreateReplyInput is the payload for replying to an existing thread.
type CreateReplyInput struct {
	ThreadID uint
	UserID   uint
	Content  string
}

// NewForumService returns a ForumService over the given repositories.
func NewForumService(forumRepo repository.ForumRepository, threadRepo repository.ThreadRepository) *ForumService {
	return &ForumService{forumRepo: forumRepo, threadRepo: threadRepo}
}

// GetForum looks a forum up by its URL name, topics included.
func (s *ForumService) GetForum(ctx context.Context, name string) (*resolver.Forum, error) {
	forum, err := s.forumRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	resolved := resolver.ResolveForum(forum)
	return &resolved, nil
}

// GetTopic looks a topic up by id.
func (s *ForumService) GetTopic(ctx context.Context, id uint) (*resolver.Topic, error) {
	topic, err := s.forumRepo.GetTopic(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved := resolver.ResolveTopic(topic)
	return &resolved, nil
}

// GetTopicThreads lists the topic's threads by most recent creation,
// each preview carrying only its original post.
func (s *ForumService) GetTopicThreads(ctx context.Context, topicID uint) ([]resolver.Thread, error) {
	posts, err := s.threadRepo.GetTopicThreads(ctx, topicID)
	if err != nil {
		return nil, err
	}
	threads := make([]resolver.Thread, 0, len(posts))
	for _, p := range posts {
		threads = append(threads, resolver.ResolveThreadFromPost(p))
	}
	return threads, nil
}

// GetThread returns the thread with the first page of its posts, original
// post first, ascending by timestamp.
func (s *ForumService) GetThread(ctx context.Context, id uint) (*resolver.Thread, error) {
	thread, err := s.threadRepo.GetThread(ctx, id, repository.DefaultPageSize, 0)
	if err != nil {
		return nil, err
	}
	resolved := resolver.ResolveThread(thread, true)
	return &resolved, nil
}

// CreateThread creates a thread and its original post atomically and
// returns the new thread id.
func (s *ForumService) CreateThread(ctx context.Context, in CreateThreadInput) (uint, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, models.NewInvalidInputError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return 0, models.NewInvalidInputError("Content is required")
	}
	return s.threadRepo.CreateThread(ctx, in.ForumID, in.TopicID, in.UserID, in.Title, in.Content)
}

// CreateReply appends a reply to an existing thread.
func (s *ForumService) CreateReply(ctx context.Context, in CreateReplyInput) error {
	if strings.TrimSpace(in.Content) == "" {
		return models.NewInvalidInputError("Content is required")
	}
	return s.threadRepo.CreateReply(ctx, in.ThreadID, in.UserID, in.Content)
}
