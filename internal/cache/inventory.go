package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	ForumKeyPrefix  = "forum:%s"
	ThreadKeyPrefix = "thread:%d"
)

const (
	UserTTL   = 5 * time.Minute
	ForumTTL  = 10 * time.Minute
	ThreadTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ForumKey(name string) string {
	return fmt.Sprintf(ForumKeyPrefix, name)
}

func ThreadKey(threadID uint) string {
	return fmt.Sprintf(ThreadKeyPrefix, threadID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateThread(ctx context.Context, threadID uint) {
	Invalidate(ctx, ThreadKey(threadID))
}

func InvalidateForum(ctx context.Context, name string) {
	Invalidate(ctx, ForumKey(name))
}
