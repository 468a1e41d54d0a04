package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/metrics"
	"alcyxob/fitplanner/internal/plantext"
	"alcyxob/fitplanner/internal/progress"
	"alcyxob/fitplanner/internal/repository"
	"alcyxob/fitplanner/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTrackedPlanNotFound = errors.New("tracked plan not found")
	ErrNoWorkoutForDay     = errors.New("tracked plan has no workout on that weekday")
	ErrNoWorkoutsParsed    = errors.New("no day-by-day workouts could be read from the plan")
)

const defaultTrackedPlanName = "My Workout Plan"

// CreateTrackedPlanInput is what a user picks when starting to track a plan.
// Empty Schedule means every weekday the plan text has a workout for.
type CreateTrackedPlanInput struct {
	GeneratedPlanID primitive.ObjectID
	Name            string
	Description     string
	Schedule        []string
}

// Overview is the tracker landing data.
type Overview struct {
	TrackedPlans []domain.TrackedPlan   `json:"trackedPlans"`
	RecentPlans  []domain.GeneratedPlan `json:"recentPlans"`
}

type TrackerService interface {
	CreateFromPlan(ctx context.Context, userID primitive.ObjectID, input CreateTrackedPlanInput) (*domain.TrackedPlan, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.TrackedPlan, error)
	Delete(ctx context.Context, userID, planID primitive.ObjectID) error
	// LogProgress appends entry. Sets are pre-filled from the day's targets
	// when the entry carries no exercises.
	LogProgress(ctx context.Context, userID, planID primitive.ObjectID, entry domain.ProgressEntry) (*domain.ProgressEntry, error)
	Week(ctx context.Context, userID primitive.ObjectID, reference time.Time) ([]schedule.Day, error)
	ExerciseHistory(ctx context.Context, userID, planID primitive.ObjectID, exercise string) (*progress.ExerciseReport, error)
	Overview(ctx context.Context, userID primitive.ObjectID) (*Overview, error)
}

type trackerService struct {
	trackedRepo repository.TrackedPlanRepository
	planRepo    repository.GeneratedPlanRepository
	projector   *schedule.Projector
	metrics     *metrics.Manager
	logger      *zap.Logger
}

func NewTrackerService(
	trackedRepo repository.TrackedPlanRepository,
	planRepo repository.GeneratedPlanRepository,
	m *metrics.Manager,
	logger *zap.Logger,
) TrackerService {
	return &trackerService{
		trackedRepo: trackedRepo,
		planRepo:    planRepo,
		projector:   schedule.NewProjector(logger),
		metrics:     m,
		logger:      logger,
	}
}

func (s *trackerService) CreateFromPlan(ctx context.Context, userID primitive.ObjectID, input CreateTrackedPlanInput) (*domain.TrackedPlan, error) {
	source, err := s.planRepo.GetByID(ctx, input.GeneratedPlanID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}

	workouts := plantext.ParseSchedule(source.Plan)
	if len(workouts) == 0 {
		return nil, ErrNoWorkoutsParsed
	}

	days := workouts.Days()
	if len(input.Schedule) > 0 {
		if days, err = domain.ParseWeekdays(input.Schedule); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidTrackedPlan, err)
		}
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = defaultTrackedPlanName
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = source.Preferences.Goals
	}

	plan := &domain.TrackedPlan{
		UserID:          userID,
		GeneratedPlanID: source.ID,
		Name:            name,
		Description:     description,
		Schedule:        days,
		WorkoutsByDay:   workouts,
		Progress:        []domain.ProgressEntry{},
		CreatedAt:       time.Now().UTC(),
	}
	if plan.ID, err = s.trackedRepo.Create(ctx, plan); err != nil {
		s.logger.Error("failed to create tracked plan", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("create tracked plan: %w", err)
	}

	s.logger.Info("tracked plan created",
		zap.String("userId", userID.Hex()),
		zap.String("trackedPlanId", plan.ID.Hex()),
		zap.Int("days", len(days)),
	)
	return plan, nil
}

func (s *trackerService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.TrackedPlan, error) {
	plans, err := s.trackedRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list tracked plans", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("list tracked plans: %w", err)
	}
	return plans, nil
}

func (s *trackerService) Delete(ctx context.Context, userID, planID primitive.ObjectID) error {
	if err := s.trackedRepo.Delete(ctx, planID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrackedPlanNotFound
		}
		return fmt.Errorf("delete tracked plan: %w", err)
	}
	return nil
}

func (s *trackerService) get(ctx context.Context, userID, planID primitive.ObjectID) (*domain.TrackedPlan, error) {
	plan, err := s.trackedRepo.GetByID(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrackedPlanNotFound
		}
		return nil, fmt.Errorf("load tracked plan: %w", err)
	}
	return plan, nil
}

func (s *trackerService) LogProgress(ctx context.Context, userID, planID primitive.ObjectID, entry domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	plan, err := s.get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	date, _ := domain.ParseDate(entry.Date)
	day, ok := plan.WorkoutsByDay[domain.WeekdayOf(date)]
	if !ok {
		return nil, ErrNoWorkoutForDay
	}
	if len(entry.Exercises) == 0 {
		entry.Exercises = prefillSets(day)
	}

	if err = s.trackedRepo.AppendProgress(ctx, planID, userID, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrackedPlanNotFound
		}
		s.logger.Error("failed to append progress", zap.String("trackedPlanId", planID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("append progress: %w", err)
	}
	s.metrics.CounterProgressLogged.Inc()
	return &entry, nil
}

// maxPrefillSets caps the rows pre-filled for one exercise, whatever the stored target says.
const maxPrefillSets = 20

// prefillSets builds one row per target set carrying the target reps and weight.
func prefillSets(day domain.DayWorkout) []domain.ExerciseLog {
	logs := make([]domain.ExerciseLog, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		sets := make([]domain.PerformedSet, min(max(ex.Sets, 0), maxPrefillSets))
		for i := range sets {
			sets[i] = domain.PerformedSet{Reps: ex.Reps, Weight: ex.Weight}
		}
		logs = append(logs, domain.ExerciseLog{Name: ex.Name, Sets: sets})
	}
	return logs
}

func (s *trackerService) Week(ctx context.Context, userID primitive.ObjectID, reference time.Time) ([]schedule.Day, error) {
	plans, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.projector.Week(reference, plans), nil
}

func (s *trackerService) ExerciseHistory(ctx context.Context, userID, planID primitive.ObjectID, exercise string) (*progress.ExerciseReport, error) {
	plan, err := s.get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	report := progress.Report(plan, exercise)
	return &report, nil
}

func (s *trackerService) Overview(ctx context.Context, userID primitive.ObjectID) (*Overview, error) {
	var overview Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plans, err := s.List(gctx, userID)
		overview.TrackedPlans = plans
		return err
	})
	g.Go(func() error {
		plans, err := s.planRepo.ListRecent(gctx, userID, DefaultRecentPlans)
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}
		overview.RecentPlans = plans
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
