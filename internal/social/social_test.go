// ABOUTME: Tests for the social container.
// ABOUTME: Covers feed ordering, like toggling, and shared visibility.
package social

import (
	"testing"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

func newTestService(t *testing.T) (*Service, *account.Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemory()
	bus := notify.NewBus()
	accounts := account.NewService(st, account.NewStoreRepository(st), bus)
	svc := NewService(accounts, st, bus)

	if _, err := accounts.Register("Demo User", "demo@example.com", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return svc, accounts, st
}

func TestSeededFeed(t *testing.T) {
	svc, _, _ := newTestService(t)

	feed := svc.Feed()
	if len(feed) != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", len(feed))
	}
	if !feed[0].CreatedAt.After(feed[1].CreatedAt) {
		t.Error("feed must be sorted most-recent-first")
	}
}

func TestCreatePostRequiresUser(t *testing.T) {
	svc, accounts, _ := newTestService(t)
	accounts.Logout()

	if _, err := svc.CreatePost("hello", ""); err != account.ErrNoCurrentUser {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestCreatePostPrepends(t *testing.T) {
	svc, _, _ := newTestService(t)

	p, err := svc.CreatePost("Crushed leg day!", "")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	feed := svc.Feed()
	if feed[0].ID != p.ID {
		t.Error("new post should lead the feed")
	}
	if feed[0].AuthorName != "Demo User" {
		t.Errorf("post attribution wrong: %s", feed[0].AuthorName)
	}
}

func TestToggleLike(t *testing.T) {
	svc, accounts, _ := newTestService(t)

	p, err := svc.CreatePost("like me", "")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	uid := accounts.Current().ID.String()
	id := p.ID.String()

	if err := svc.ToggleLike(id); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !svc.Feed()[0].LikedBy(uid) {
		t.Error("expected like to be recorded")
	}

	// Second toggle removes the like
	if err := svc.ToggleLike(id); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if svc.Feed()[0].LikedBy(uid) || len(svc.Feed()[0].Likes) != 0 {
		t.Error("second toggle must remove the like")
	}
}

func TestFeedIsolatedFromCallers(t *testing.T) {
	svc, _, _ := newTestService(t)

	p, err := svc.CreatePost("Leg day", "")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if err := svc.ToggleLike(p.ID.String()); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if err := svc.AddComment(p.ID.String(), "Nice!"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	// Overwriting elements of a returned post must not leak into the
	// feed's own state.
	got := svc.Feed()
	got[0].Likes[0] = "intruder"
	got[0].Comments[0].Text = "mutated"

	fresh := svc.Feed()
	if fresh[0].LikedBy("intruder") {
		t.Error("mutation of a returned like set leaked into the feed")
	}
	if fresh[0].Comments[0].Text != "Nice!" {
		t.Error("mutation of a returned comment leaked into the feed")
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.ToggleLike("00000000-0000-0000-0000-000000000000"); err != ErrUnknownPost {
		t.Errorf("expected ErrUnknownPost, got %v", err)
	}
}

func TestAddComment(t *testing.T) {
	svc, _, _ := newTestService(t)

	p, err := svc.CreatePost("comment here", "")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if err := svc.AddComment(p.ID.String(), "Nice work!"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if err := svc.AddComment(p.ID.String(), "Keep it up!"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	comments := svc.Feed()[0].Comments
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "Nice work!" || comments[1].Text != "Keep it up!" {
		t.Error("comments must append in order")
	}
}

func TestFeedSharedAcrossUsers(t *testing.T) {
	svc, accounts, st := newTestService(t)

	if _, err := svc.CreatePost("first user's post", ""); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	accounts.Logout()
	if _, err := accounts.Register("Other", "other@example.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// A fresh container over the same store sees the same feed
	bus := notify.NewBus()
	other := NewService(accounts, st, bus)
	feed := other.Feed()
	if len(feed) != 3 {
		t.Fatalf("expected shared feed of 3 posts, got %d", len(feed))
	}
	if feed[0].Content != "first user's post" {
		t.Error("posts must outlive the authoring session")
	}
}
