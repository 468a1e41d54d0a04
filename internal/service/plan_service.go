package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/generation"
	"alcyxob/fitplanner/internal/plantext"
	"alcyxob/fitplanner/internal/repository"
	"alcyxob/fitplanner/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrGenerationInProgress = errors.New("a plan is already being generated for this user")
	ErrProfileRequired      = errors.New("complete your profile before generating a plan")
	ErrExportUnavailable    = errors.New("plan export storage is not configured")
	ErrExportNotFound       = errors.New("plan has not been exported yet")
)

const (
	DefaultRecentPlans = 10
	MaxRecentPlans     = 50
	exportContentType  = "text/markdown; charset=utf-8"
)

// PlanGenerator produces plan text. *generation.Generator satisfies it.
type PlanGenerator interface {
	Configured() bool
	Generate(ctx context.Context, profile *domain.Profile, prefs domain.GenerationPreferences) (string, error)
}

// PlanExportResult pairs stored export metadata with a short-lived download URL.
type PlanExportResult struct {
	Export      *domain.PlanExport `json:"export"`
	DownloadURL string             `json:"downloadUrl"`
	ExpiresAt   time.Time          `json:"expiresAt"`
}

type PlanService interface {
	// Generate runs at most one generation per user at a time.
	Generate(ctx context.Context, userID primitive.ObjectID, prefs domain.GenerationPreferences) (*domain.GeneratedPlan, error)
	ListRecent(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.GeneratedPlan, error)
	Get(ctx context.Context, userID, planID primitive.ObjectID) (*domain.GeneratedPlan, error)
	Sections(ctx context.Context, userID, planID primitive.ObjectID) ([]plantext.Section, error)
	Export(ctx context.Context, userID, planID primitive.ObjectID) (*PlanExportResult, error)
	LatestExport(ctx context.Context, userID, planID primitive.ObjectID) (*PlanExportResult, error)
}

type planService struct {
	planRepo    repository.GeneratedPlanRepository
	profileRepo repository.ProfileRepository
	exportRepo  repository.PlanExportRepository
	generator   PlanGenerator
	files       storage.FileStorage
	logger      *zap.Logger

	mu       sync.Mutex
	inFlight map[primitive.ObjectID]struct{}
}

// NewPlanService accepts a nil files storage; exports then fail with ErrExportUnavailable.
func NewPlanService(
	planRepo repository.GeneratedPlanRepository,
	profileRepo repository.ProfileRepository,
	exportRepo repository.PlanExportRepository,
	generator PlanGenerator,
	files storage.FileStorage,
	logger *zap.Logger,
) PlanService {
	return &planService{
		planRepo:    planRepo,
		profileRepo: profileRepo,
		exportRepo:  exportRepo,
		generator:   generator,
		files:       files,
		logger:      logger,
		inFlight:    make(map[primitive.ObjectID]struct{}),
	}
}

func (s *planService) acquire(userID primitive.ObjectID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *planService) release(userID primitive.ObjectID) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}

func (s *planService) Generate(ctx context.Context, userID primitive.ObjectID, prefs domain.GenerationPreferences) (*domain.GeneratedPlan, error) {
	if !s.generator.Configured() {
		return nil, generation.ErrMissingCredential
	}

	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	if !s.acquire(userID) {
		return nil, ErrGenerationInProgress
	}
	defer s.release(userID)

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		s.logger.Error("failed to load profile for generation", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("load profile: %w", err)
	}

	text, err := s.generator.Generate(ctx, profile, prefs)
	if err != nil {
		return nil, err
	}

	plan := &domain.GeneratedPlan{
		UserID:      userID,
		Plan:        text,
		Preferences: prefs,
		CreatedAt:   time.Now().UTC(),
	}
	if plan.ID, err = s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Error("failed to store generated plan", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("store plan: %w", err)
	}

	s.logger.Info("plan generated",
		zap.String("userId", userID.Hex()),
		zap.String("planId", plan.ID.Hex()),
		zap.Int("chars", len(text)),
	)
	return plan, nil
}

func (s *planService) ListRecent(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.GeneratedPlan, error) {
	if limit <= 0 {
		limit = DefaultRecentPlans
	}
	limit = min(limit, MaxRecentPlans)

	plans, err := s.planRepo.ListRecent(ctx, userID, int64(limit))
	if err != nil {
		s.logger.Error("failed to list plans", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *planService) Get(ctx context.Context, userID, planID primitive.ObjectID) (*domain.GeneratedPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return plan, nil
}

func (s *planService) Sections(ctx context.Context, userID, planID primitive.ObjectID) ([]plantext.Section, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	return plantext.SplitSections(plan.Plan)
}

func (s *planService) Export(ctx context.Context, userID, planID primitive.ObjectID) (*PlanExportResult, error) {
	if s.files == nil {
		return nil, ErrExportUnavailable
	}
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	body := []byte(plan.Plan)
	key := fmt.Sprintf("exports/%s/%s.md", userID.Hex(), uuid.NewString())
	if err = s.files.PutObject(ctx, key, exportContentType, body); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	export := &domain.PlanExport{
		PlanID:      planID,
		UserID:      userID,
		S3ObjectKey: key,
		ContentType: exportContentType,
		Size:        int64(len(body)),
	}
	if export.ID, err = s.exportRepo.Create(ctx, export); err != nil {
		s.logger.Error("failed to record export, removing object", zap.String("key", key), zap.Error(err))
		if delErr := s.files.DeleteObject(ctx, key); delErr != nil {
			s.logger.Warn("orphaned export object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("record export: %w", err)
	}

	return s.presign(ctx, export)
}

func (s *planService) LatestExport(ctx context.Context, userID, planID primitive.ObjectID) (*PlanExportResult, error) {
	if s.files == nil {
		return nil, ErrExportUnavailable
	}
	export, err := s.exportRepo.GetLatestByPlan(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExportNotFound
		}
		return nil, fmt.Errorf("load export: %w", err)
	}
	return s.presign(ctx, export)
}

func (s *planService) presign(ctx context.Context, export *domain.PlanExport) (*PlanExportResult, error) {
	url, err := s.files.GeneratePresignedDownloadURL(ctx, export.S3ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &PlanExportResult{
		Export:      export,
		DownloadURL: url,
		ExpiresAt:   time.Now().UTC().Add(storage.DefaultPresignedURLExpiry),
	}, nil
}
