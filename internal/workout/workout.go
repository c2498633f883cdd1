// ABOUTME: Workout state container: collection, tracking, daily progress.
// ABOUTME: Reloads per-user state when the session changes.
package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fitverse/internal/account"
	"github.com/harperreed/fitverse/internal/models"
	"github.com/harperreed/fitverse/internal/notify"
	"github.com/harperreed/fitverse/internal/store"
)

var (
	// ErrUnknownTemplate is returned when no catalog entry matches.
	ErrUnknownTemplate = errors.New("unknown workout template")

	// ErrAlreadyAdded is returned when the workout is already tracked.
	ErrAlreadyAdded = errors.New("workout already in your list")

	// ErrUnknownWorkout is returned when the tracked workout is absent.
	ErrUnknownWorkout = errors.New("workout not in your list")

	// ErrUnknownExercise is returned for an exercise ID not in the workout.
	ErrUnknownExercise = errors.New("exercise not in this workout")
)

// Service owns the catalog and the current user's tracked workouts and
// daily progress records.
type Service struct {
	accounts *account.Service
	store    store.Store
	bus      *notify.Bus
	now      func() time.Time

	catalog    []models.WorkoutTemplate
	collection []models.TrackedWorkout
	progress   []models.ProgressRecord
}

// NewService builds the workout container, loads the current user's
// state, and subscribes to session changes.
func NewService(accounts *account.Service, st store.Store, bus *notify.Bus) *Service {
	s := &Service{
		accounts: accounts,
		store:    st,
		bus:      bus,
		now:      time.Now,
		catalog:  Catalog(),
	}
	s.reload()

	bus.Subscribe(func(e notify.Event) {
		if e.Kind == notify.KindSession {
			s.reload()
		}
	})

	return s
}

// Catalog returns the available workout templates.
func (s *Service) Catalog() []models.WorkoutTemplate {
	out := make([]models.WorkoutTemplate, len(s.catalog))
	for i, t := range s.catalog {
		out[i] = t.Clone()
	}
	return out
}

// Collection returns the current user's tracked workouts.
func (s *Service) Collection() []models.TrackedWorkout {
	out := make([]models.TrackedWorkout, len(s.collection))
	for i, w := range s.collection {
		out[i] = w.Clone()
	}
	return out
}

// Progress returns the current user's daily progress records.
func (s *Service) Progress() []models.ProgressRecord {
	out := make([]models.ProgressRecord, len(s.progress))
	copy(out, s.progress)
	return out
}

// Add copies a catalog template into the user's collection with all
// exercises uncompleted.
func (s *Service) Add(templateID string) (*models.TrackedWorkout, error) {
	user := s.accounts.Current()
	if user == nil {
		return nil, account.ErrNoCurrentUser
	}

	var tmpl *models.WorkoutTemplate
	for i := range s.catalog {
		if s.catalog[i].ID == templateID {
			tmpl = &s.catalog[i]
			break
		}
	}
	if tmpl == nil {
		return nil, ErrUnknownTemplate
	}

	for i := range s.collection {
		if s.collection[i].ID == templateID {
			return nil, ErrAlreadyAdded
		}
	}

	w := models.NewTrackedWorkout(*tmpl)
	s.collection = append(s.collection, *w)
	if err := s.persistCollection(user.ID.String()); err != nil {
		return nil, err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindWorkouts})
	return w, nil
}

// Remove drops a workout from the collection. Removing an absent
// workout is a no-op.
func (s *Service) Remove(workoutID string) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	kept := s.collection[:0]
	for _, w := range s.collection {
		if w.ID != workoutID {
			kept = append(kept, w)
		}
	}
	s.collection = kept

	if err := s.persistCollection(user.ID.String()); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindWorkouts})
	return nil
}

// SetExerciseCompletion flags one exercise and recomputes the workout's
// aggregate completion as the AND of its exercises. It never writes a
// progress record; only Complete does that.
func (s *Service) SetExerciseCompletion(workoutID, exerciseID string, completed bool) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	w := s.find(workoutID)
	if w == nil {
		return ErrUnknownWorkout
	}

	found := false
	for i := range w.Exercises {
		if w.Exercises[i].ID == exerciseID {
			w.Exercises[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownExercise
	}

	all := w.AllExercisesCompleted()
	w.Completed = all
	if all && w.DateCompleted == "" {
		w.DateCompleted = s.today()
	}

	if err := s.persistCollection(user.ID.String()); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindWorkouts})
	return nil
}

// Complete marks the workout done today regardless of per-exercise
// flags and folds its calories and parsed duration into today's
// progress record, creating the record on first completion of the day.
func (s *Service) Complete(workoutID string) error {
	user := s.accounts.Current()
	if user == nil {
		return account.ErrNoCurrentUser
	}

	w := s.find(workoutID)
	if w == nil {
		return ErrUnknownWorkout
	}

	today := s.today()
	w.Completed = true
	w.DateCompleted = today

	minutes := models.ParseDurationMinutes(w.Duration)
	updated := false
	for i := range s.progress {
		if s.progress[i].Date == today {
			s.progress[i].WorkoutsCompleted++
			s.progress[i].TotalCaloriesBurned += w.Calories
			s.progress[i].TotalDurationMinutes += minutes
			updated = true
			break
		}
	}
	if !updated {
		s.progress = append(s.progress, models.ProgressRecord{
			Date:                 today,
			WorkoutsCompleted:    1,
			TotalCaloriesBurned:  w.Calories,
			TotalDurationMinutes: minutes,
		})
	}

	uid := user.ID.String()
	if err := s.persistCollection(uid); err != nil {
		return err
	}
	if err := s.persistProgress(uid); err != nil {
		return err
	}
	s.bus.Publish(notify.Event{Kind: notify.KindWorkouts})
	s.bus.Publish(notify.Event{Kind: notify.KindProgress})
	return nil
}

func (s *Service) find(workoutID string) *models.TrackedWorkout {
	for i := range s.collection {
		if s.collection[i].ID == workoutID {
			return &s.collection[i]
		}
	}
	return nil
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// reload resets per-user state and loads the newly current user's
// records. Malformed records read back as empty.
func (s *Service) reload() {
	s.collection = nil
	s.progress = nil

	user := s.accounts.Current()
	if user == nil {
		return
	}

	uid := user.ID.String()
	if list, ok := store.GetJSON[[]models.TrackedWorkout](s.store, store.WorkoutsKey(uid)); ok {
		s.collection = *list
	}
	if list, ok := store.GetJSON[[]models.ProgressRecord](s.store, store.ProgressKey(uid)); ok {
		s.progress = *list
	}
}

func (s *Service) persistCollection(uid string) error {
	if err := store.SetJSON(s.store, store.WorkoutsKey(uid), s.collection); err != nil {
		return fmt.Errorf("persist workouts: %w", err)
	}
	return nil
}

func (s *Service) persistProgress(uid string) error {
	if err := store.SetJSON(s.store, store.ProgressKey(uid), s.progress); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}
