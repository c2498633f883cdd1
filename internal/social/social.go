// ABOUTME: Social state container over the shared post feed.
// ABOUTME: One global post list; attribution by value, likes as a set.
package social

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

// ErrUnknownPost is returned when no post matches the given ID.
var ErrUnknownPost = errors.New("post not found")

// Service owns the shared post feed. The feed is global, not scoped
// per user; only authorship and likes reference user identity.
type Service struct {
	accounts *account.Service
	store    store.Store
	bus      *notify.Bus

	posts []models.Post
}

// NewService builds the social container, loading the shared feed or
// seeding it with sample posts when the store has none.
func NewService(accounts *account.Service, st store.Store, bus *notify.Bus) *Service {
	s := &Service{accounts: accounts, store: st, bus: bus}

	if posts, ok := store.GetJSON[[]models.Post](st, store.PostsKey); ok {
		s.posts = *posts
	} else {
		s.posts = seedPosts()
		_ = s.persist()
	}

	return s
}

// Feed returns all posts sorted most-recent-first. The ordering is
// recomputed on every read rather than stored.
func (s *Service) Feed() []models.Post {
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CreatePost prepends a new post authored by the current user.
func (s *Service) CreatePost(content, image string) (*models.Post, error) {
	user := s.accounts.Current()
	if user == nil {
		return nil, account.ErrNoCurrentUser
	}

	p := models.NewPost(user, content, image)
	s.posts = append([]models.Post{*p}, s.posts...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSocial})
	return p, nil
}

// ToggleLike adds or removes the current user's like on a post.
func (s *Service) ToggleLike(postID string) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	p := s.find(postID)
	if p == nil {
		return ErrUnknownPost
	}

	p.ToggleLike(user.ID.String())
	if err := s.persist(); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSocial})
	return nil
}

// AddComment appends a comment authored by the current user.
func (s *Service) AddComment(postID, text string) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	p := s.find(postID)
	if p == nil {
		return ErrUnknownPost
	}

	p.Comments = append(p.Comments, models.NewComment(user, text))
	if err := s.persist(); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindSocial})
	return nil
}

func (s *Service) find(postID string) *models.Post {
	for i := range s.posts {
		if s.posts[i].ID.String() == postID {
			return &s.posts[i]
		}
	}
	return nil
}

func (s *Service) persist() error {
	if err := store.SetJSON(s.store, store.PostsKey, s.posts); err != nil {
		return fmt.Errorf("persist posts: %w", err)
	}
	return nil
}

// seedPosts returns the starter feed shown before anyone has posted.
func seedPosts() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:         uuid.New(),
			AuthorID:   "system",
			AuthorName: "FitVerse Coach",
			Content:    "Just completed a 5km run! Feeling great about my progress this week. How's everyone else doing with their cardio goals?",
			Likes:      []string{},
			Comments:   []models.Comment{},
			CreatedAt:  now.Add(-48 * time.Hour),
		},
		{
			ID:         uuid.New(),
			AuthorID:   "system",
			AuthorName: "Sarah Fitness",
			Content:    "Here's a quick protein-packed breakfast idea for you all: Greek yogurt with berries, honey, and a sprinkle of granola. Perfect fuel for morning workouts!",
			Image:      "https://images.unsplash.com/photo-1484723091739-30a097e8f929?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Likes:      []string{},
			Comments:   []models.Comment{},
			CreatedAt:  now.Add(-72 * time.Hour),
		},
	}
}
