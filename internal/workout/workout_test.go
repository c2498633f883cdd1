// ABOUTME: Tests for the workout container: tracking and progress math.
// ABOUTME: Covers duplicate adds, aggregate completion, daily upserts.
package workout

import (
	"testing"
	"time"

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

func TestAddRequiresUser(t *testing.T) {
	st := store.NewMemory()
	bus := notify.NewBus()
	accounts := account.NewService(st, account.NewStoreRepository(st), bus)
	svc := NewService(accounts, st, bus)

	if _, err := svc.Add("1"); err != account.ErrNoCurrentUser {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestAddUnknownTemplate(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("999"); err != ErrUnknownTemplate {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestAddDuplicate(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add("1"); err != ErrAlreadyAdded {
		t.Errorf("expected ErrAlreadyAdded, got %v", err)
	}
	if len(svc.Collection()) != 1 {
		t.Errorf("collection should have exactly one entry, got %d", len(svc.Collection()))
	}
}

func TestAddCopiesTemplate(t *testing.T) {
	svc, _, _ := newTestService(t)

	w, err := svc.Add("1")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if w.Completed {
		t.Error("fresh tracked workout must be uncompleted")
	}
	for _, e := range w.Exercises {
		if e.Completed {
			t.Errorf("exercise %s must start uncompleted", e.ID)
		}
	}
}

func TestCollectionIsolatedFromCallers(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Mutating a returned workout must not leak into container state.
	got := svc.Collection()
	got[0].Exercises[0].Completed = true

	if svc.Collection()[0].Exercises[0].Completed {
		t.Error("mutation of a returned workout leaked into the container")
	}

	// Same for catalog templates.
	cat := svc.Catalog()
	cat[0].Exercises[0].Name = "mutated"

	if svc.Catalog()[0].Exercises[0].Name == "mutated" {
		t.Error("mutation of a returned template leaked into the catalog")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Remove("1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := svc.Remove("1"); err != nil {
		t.Errorf("removing an absent workout should be a no-op, got %v", err)
	}
	if len(svc.Collection()) != 0 {
		t.Errorf("collection should be empty, got %d", len(svc.Collection()))
	}
}

func TestSetExerciseCompletionAggregates(t *testing.T) {
	svc, _, _ := newTestService(t)

	w, err := svc.Add("1")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	for i, e := range w.Exercises {
		if err := svc.SetExerciseCompletion("1", e.ID, true); err != nil {
			t.Fatalf("SetExerciseCompletion failed: %v", err)
		}
		got := svc.Collection()[0]
		wantDone := i == len(w.Exercises)-1
		if got.Completed != wantDone {
			t.Errorf("after %d exercises, completed = %v, want %v", i+1, got.Completed, wantDone)
		}
	}

	// No progress record from exercise tracking alone
	if len(svc.Progress()) != 0 {
		t.Error("exercise tracking must not create progress records")
	}

	// Untoggling one exercise clears the aggregate flag
	if err := svc.SetExerciseCompletion("1", w.Exercises[0].ID, false); err != nil {
		t.Fatalf("SetExerciseCompletion failed: %v", err)
	}
	if svc.Collection()[0].Completed {
		t.Error("aggregate flag must follow the AND of exercise flags")
	}
}

func TestSetExerciseCompletionUnknownIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.SetExerciseCompletion("1", "1-1", true); err != ErrUnknownWorkout {
		t.Errorf("expected ErrUnknownWorkout, got %v", err)
	}

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.SetExerciseCompletion("1", "nope", true); err != ErrUnknownExercise {
		t.Errorf("expected ErrUnknownExercise, got %v", err)
	}
}

func TestCompleteUpsertsDailyProgress(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Catalog: workout 1 is 320 kcal / "30 min", workout 2 is 280 kcal / "25 min"
	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add("2"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.Complete("1"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := svc.Complete("2"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	progress := svc.Progress()
	if len(progress) != 1 {
		t.Fatalf("expected one record for today, got %d", len(progress))
	}
	rec := progress[0]
	if rec.WorkoutsCompleted != 2 {
		t.Errorf("workouts completed = %d, want 2", rec.WorkoutsCompleted)
	}
	if rec.TotalCaloriesBurned != 320+280 {
		t.Errorf("calories = %d, want %d", rec.TotalCaloriesBurned, 320+280)
	}
	if rec.TotalDurationMinutes != 30+25 {
		t.Errorf("duration = %d, want %d", rec.TotalDurationMinutes, 30+25)
	}

	w := svc.Collection()[0]
	if !w.Completed || w.DateCompleted != rec.Date {
		t.Errorf("workout not marked completed today: %+v", w)
	}
}

func TestCompleteAcrossDays(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add("2"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }
	if err := svc.Complete("1"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	svc.now = func() time.Time { return day1.Add(24 * time.Hour) }
	if err := svc.Complete("2"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	progress := svc.Progress()
	if len(progress) != 2 {
		t.Fatalf("expected two records across two days, got %d", len(progress))
	}
	if progress[0].Date == progress[1].Date {
		t.Error("records must be keyed by distinct days")
	}
}

func TestCompleteIgnoresExerciseFlags(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Complete the whole workout with zero exercises flagged
	if err := svc.Complete("1"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !svc.Collection()[0].Completed {
		t.Error("complete must not be gated on exercise flags")
	}
}

func TestStateResetsOnLogout(t *testing.T) {
	svc, accounts, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	accounts.Logout()
	if len(svc.Collection()) != 0 || len(svc.Progress()) != 0 {
		t.Error("per-user state must reset when the session ends")
	}
}

func TestStateReloadsAcrossSessions(t *testing.T) {
	svc, accounts, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Complete("1"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	accounts.Logout()
	if _, err := accounts.Login("demo@example.com", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if len(svc.Collection()) != 1 {
		t.Errorf("collection should reload on login, got %d entries", len(svc.Collection()))
	}
	if len(svc.Progress()) != 1 {
		t.Errorf("progress should reload on login, got %d records", len(svc.Progress()))
	}
}

func TestSecondUserSeesOwnState(t *testing.T) {
	svc, accounts, _ := newTestService(t)

	if _, err := svc.Add("1"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	accounts.Logout()
	if _, err := accounts.Register("Other", "other@example.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if len(svc.Collection()) != 0 {
		t.Error("a new user must start with an empty collection")
	}
	if _, err := svc.Add("1"); err != nil {
		t.Errorf("second user should be able to add the same template: %v", err)
	}
}
