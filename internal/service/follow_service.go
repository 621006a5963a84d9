package service

import (
	"context"

	"github.com/cmcummings/warechat/internal/repository"
	"github.com/cmcummings/warechat/internal/resolver"
)

// FollowService tracks per-user per-forum follow state and aggregates the
// "threads from followed forums" feed.
type FollowService struct {
	followRepo repository.FollowRepository
}

// NewFollowService returns a FollowService over the given repository.
func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// GetUserForumDetails returns the user's rank and follow state within a
// forum. A pair with no stored row resolves to {rank: nil, follows: nil}.
func (s *FollowService) GetUserForumDetails(ctx context.Context, forumID, userID uint) (resolver.UserForumDetails, error) {
	details, err := s.followRepo.GetDetails(ctx, forumID, userID)
	if err != nil {
		return resolver.UserForumDetails{}, err
	}
	return resolver.ResolveUserForumDetails(details), nil
}

// FollowForum sets the user's follow flag for a forum and returns the
// resulting state. The update is a single atomic upsert that leaves rank
// untouched, and repeating it is a no-op.
func (s *FollowService) FollowForum(ctx context.Context, userID, forumID uint, follow bool) (bool, error) {
	return s.followRepo.SetFollow(ctx, userID, forumID, follow)
}

// ThreadsFromFollowedForums returns the ten newest thread previews across
// every forum the user follows, newest first, each with references to its
// forum and topic.
func (s *FollowService) ThreadsFromFollowedForums(ctx context.Context, userID uint) ([]resolver.FollowedThread, error) {
	posts, err := s.followRepo.FollowedFeed(ctx, userID)
	if err != nil {
		return nil, err
	}
	feed := make([]resolver.FollowedThread, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, resolver.ResolveFollowedThread(p))
	}
	return feed, nil
}
