// Package resolver maps persisted rows onto the public domain shapes
// consumed by the presentation layer. Resolvers are pure functions: no I/O,
// no knowledge of how (or whether) associations were loaded beyond what the
// caller states.
package resolver

import (
	"encoding/json"
	"time"
)

// Author is the denormalized author reference carried by every post. It is
// deliberately not the full user record: only what a rendered post needs.
type Author struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// User is the public shape of an account. The password hash never appears here.
type User struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DateRegistered time.Time `json:"date_registered"`
}

// Topic is a subdivision of a forum.
type Topic struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Forum carries its topics in insertion order.
type Forum struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DateCreated time.Time `json:"date_created"`
	Topics      []Topic   `json:"topics"`
}

// Post is a resolved thread message.
type Post struct {
	ID              uint      `json:"id"`
	Content         string    `json:"content"`
	Author          Author    `json:"author"`
	TimestampPosted time.Time `json:"timestamp_posted"`
	OriginalPost    bool      `json:"original_post"`
}

// PostList distinguishes "posts not loaded" from "posts loaded" on a thread.
// The zero value means not loaded. In practice a loaded list is never empty
// (every thread has its original post), but callers must not have to guess.
type PostList struct {
	loaded bool
	posts  []Post
}

// LoadedPosts returns a PostList holding the given posts.
func LoadedPosts(posts []Post) PostList {
	return PostList{loaded: true, posts: posts}
}

// Loaded reports whether the thread's posts were eagerly fetched.
func (l PostList) Loaded() bool { return l.loaded }

// Posts returns the loaded posts. It is nil when Loaded is false.
func (l PostList) Posts() []Post {
	if !l.loaded {
		return nil
	}
	return l.posts
}

// MarshalJSON renders null when the posts were not loaded, so consumers can
// tell "absent" from "empty" on the wire as well.
func (l PostList) MarshalJSON() ([]byte, error) {
	if !l.loaded {
		return []byte("null"), nil
	}
	if l.posts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.posts)
}

// Thread is a resolved thread, optionally carrying its posts.
type Thread struct {
	ID    uint     `json:"id"`
	Title string   `json:"title"`
	Posts PostList `json:"posts"`
}

// ForumRef and TopicRef are the minimal parent references attached to feed
// entries; the feed never needs the full forum or topic.
type ForumRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TopicRef struct {
	ID uint `json:"id"`
}

// FollowedThread is one entry of the followed-forums feed: a thread preview
// plus references to the forum and topic it lives under.
type FollowedThread struct {
	Thread Thread   `json:"thread"`
	Forum  ForumRef `json:"forum"`
	Topic  TopicRef `json:"topic"`
}

// UserForumDetails is the per-(user, forum) state. Both fields are nil when
// no row exists for the pair.
type UserForumDetails struct {
	Rank    *int  `json:"rank"`
	Follows *bool `json:"follows"`
}

// Following reports whether the follow flag is present and set.
func (d UserForumDetails) Following() bool {
	return d.Follows != nil && *d.Follows
}
