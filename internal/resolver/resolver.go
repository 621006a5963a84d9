package resolver

import (
	"github.com/cmcummings/warechat/internal/models"
)

// ResolveUser maps a user row to its public shape.
func ResolveUser(u *models.User) User {
	return User{
		ID:             u.ID,
		Name:           u.Username,
		Email:          u.Email,
		DateRegistered: u.DateRegistered,
	}
}

// ResolveTopic maps a topic row.
func ResolveTopic(t *models.Topic) Topic {
	return Topic{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}

// ResolveForum maps a forum row with its topics. Topics keep the storage
// (insertion) order; no further sorting happens here.
func ResolveForum(f *models.Forum) Forum {
	topics := make([]Topic, 0, len(f.Topics))
	for i := range f.Topics {
		topics = append(topics, ResolveTopic(&f.Topics[i]))
	}
	return Forum{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		DateCreated: f.DateCreated,
		Topics:      topics,
	}
}

// ResolvePost maps a post row. The author association must be loaded.
func ResolvePost(p *models.Post) Post {
	return Post{
		ID:              p.ID,
		Content:         p.Content,
		Author:          Author{ID: p.User.ID, Name: p.User.Username},
		TimestampPosted: p.TimestampPosted,
		OriginalPost:    p.OriginalPost,
	}
}

// ResolveThread maps a thread row. Posts are attached only when the caller
// eagerly loaded them; withPosts states that, since a nil slice alone cannot
// distinguish "not loaded" from "loaded and empty".
func ResolveThread(t *models.Thread, withPosts bool) Thread {
	res := Thread{
		ID:    t.ID,
		Title: t.Title,
	}
	if withPosts {
		posts := make([]Post, 0, len(t.Posts))
		for i := range t.Posts {
			posts = append(posts, ResolvePost(&t.Posts[i]))
		}
		res.Posts = LoadedPosts(posts)
	}
	return res
}

// ResolveThreadFromPost builds a thread preview directly from a post row
// joined with its thread and author. Listing and feed queries fetch original
// posts, not threads, so the preview carries exactly that one post.
func ResolveThreadFromPost(p *models.Post) Thread {
	return Thread{
		ID:    p.Thread.ID,
		Title: p.Thread.Title,
		Posts: LoadedPosts([]Post{ResolvePost(p)}),
	}
}

// ResolveFollowedThread builds a feed entry from a post row joined with its
// thread, the thread's forum and topic, and the post author.
func ResolveFollowedThread(p *models.Post) FollowedThread {
	return FollowedThread{
		Thread: ResolveThreadFromPost(p),
		Forum:  ForumRef{ID: p.Thread.Forum.ID, Name: p.Thread.Forum.Name},
		Topic:  TopicRef{ID: p.Thread.Topic.ID},
	}
}

// ResolveUserForumDetails maps a user_in_forum row. A synthesized row with
// nil rank and follows stands in for a missing one.
func ResolveUserForumDetails(d *models.UserInForum) UserForumDetails {
	return UserForumDetails{
		Rank:    d.Rank,
		Follows: d.Follows,
	}
}

// Tier names the privilege band the details grant within their forum.
func (d UserForumDetails) Tier() models.RankTier {
	return models.TierForRank(d.Rank)
}
