package service

import (
	"context"

	"github.com/cmcummings/warechat/internal/models"
	"github.com/cmcummings/warechat/internal/repository"
	"github.com/cmcummings/warechat/internal/resolver"
)

// ModerationService decides who may delete which post, and performs the
// deletion. The rule: the author may always delete their own post; anyone
// holding moderator rank (>= 200) in the post's forum may delete any post
// there.
type ModerationService struct {
	threadRepo repository.ThreadRepository
	followRepo repository.FollowRepository
}

// NewModerationService returns a ModerationService over the given repositories.
func NewModerationService(threadRepo repository.ThreadRepository, followRepo repository.FollowRepository) *ModerationService {
	return &ModerationService{threadRepo: threadRepo, followRepo: followRepo}
}

// CanDeletePost applies the deletion rule to already-loaded data. It is
// advisory: the presentation layer uses it to decide whether to offer a
// delete affordance. The delete path never trusts it; see DeletePostAs.
func CanDeletePost(actingUserID uint, post resolver.Post, details resolver.UserForumDetails) bool {
	if actingUserID == post.Author.ID {
		return true
	}
	return details.Tier().CanModerate()
}

// HasDeletePermission is the authoritative, storage-backed form of the same
// rule: it re-reads the post, its thread's forum, and the acting user's
// rank row rather than trusting anything the caller already holds.
func (s *ModerationService) HasDeletePermission(ctx context.Context, userID, postID uint) (bool, error) {
	post, err := s.threadRepo.GetPostWithThread(ctx, postID)
	if err != nil {
		return false, err
	}
	if post.UserID == userID {
		return true, nil
	}
	details, err := s.followRepo.GetDetails(ctx, post.Thread.ForumID, userID)
	if err != nil {
		return false, err
	}
	return models.TierForRank(details.Rank).CanModerate(), nil
}

// DeletePostAs deletes a post on behalf of a user, re-deriving permission
// server-side first. Deleting a thread's original post deletes the entire
// thread.
func (s *ModerationService) DeletePostAs(ctx context.Context, userID, postID uint) error {
	allowed, err := s.HasDeletePermission(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !allowed {
		return models.NewUnauthorizedError("You do not have permission to delete this post")
	}
	return s.threadRepo.DeletePost(ctx, postID)
}
