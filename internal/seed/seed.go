package seed

import (
	"fmt"
	"log"

	"github.com/cmcummings/warechat/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a coherent demo dataset: forums with
// topics, users with ranks and follows, threads with replies.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// Counts describes how much data to generate.
type Counts struct {
	Users            int
	Forums           int
	TopicsPerForum   int
	ThreadsPerTopic  int
	RepliesPerThread int
}

// DefaultCounts is a small but browsable dataset.
var DefaultCounts = Counts{
	Users:            20,
	Forums:           3,
	TopicsPerForum:   4,
	ThreadsPerTopic:  5,
	RepliesPerThread: 3,
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data, children before parents.
func (s *Seeder) ClearAll() error {
	tables := []string{"post", "thread", "user_in_forum", "topic", "forum", "users"}
	for _, table := range tables {
		if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Run generates the dataset. Every user follows roughly half the forums,
// and the first user is granted moderator rank in the first forum so the
// moderation path is exercisable out of the box.
func (s *Seeder) Run(counts Counts) error {
	users := make([]*models.User, 0, counts.Users)
	for i := 0; i < counts.Users; i++ {
		user, err := s.factory.CreateUser("password123")
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("seeding requires at least one user")
	}

	for fi := 0; fi < counts.Forums; fi++ {
		forum, err := s.factory.CreateForum(counts.TopicsPerForum)
		if err != nil {
			return fmt.Errorf("seed forum: %w", err)
		}

		if fi == 0 {
			if err := s.factory.GrantRank(users[0].ID, forum.ID, models.ModeratorRank); err != nil {
				return fmt.Errorf("seed moderator rank: %w", err)
			}
		}
		for ui, user := range users {
			if (ui+fi)%2 == 0 {
				if err := s.factory.Follow(user.ID, forum.ID); err != nil {
					return fmt.Errorf("seed follow: %w", err)
				}
			}
		}

		for _, topic := range forum.Topics {
			for ti := 0; ti < counts.ThreadsPerTopic; ti++ {
				author := users[(fi+ti)%len(users)]
				thread, err := s.factory.CreateThread(forum.ID, topic.ID, author)
				if err != nil {
					return fmt.Errorf("seed thread: %w", err)
				}
				for ri := 0; ri < counts.RepliesPerThread; ri++ {
					replier := users[(fi+ti+ri+1)%len(users)]
					if _, err := s.factory.CreateReply(thread.ID, replier); err != nil {
						return fmt.Errorf("seed reply: %w", err)
					}
				}
			}
		}
		log.Printf("seeded forum %q with %d topics", forum.Name, len(forum.Topics))
	}

	return nil
}
