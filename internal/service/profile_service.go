package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/profileflow"
	"alcyxob/fitplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownAction   = errors.New("unknown profile setup action")
)

// Setup actions accepted by ProfileService.Setup.
const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
)

// SetupResult is the flow position after an action. Profile is set only once
// a submit succeeded.
type SetupResult struct {
	Step    int               `json:"step"`
	IsLast  bool              `json:"isLast"`
	Draft   profileflow.Draft `json:"draft"`
	Profile *domain.Profile   `json:"profile,omitempty"`
}

type ProfileService interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	Save(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error)
	// Setup resumes the onboarding form at step with draft and applies action.
	Setup(ctx context.Context, userID primitive.ObjectID, step int, action string, draft profileflow.Draft) (*SetupResult, error)
	// StartSetup opens the form at step 1, pre-filled from any saved profile.
	StartSetup(ctx context.Context, userID primitive.ObjectID) (*SetupResult, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (s *profileService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("failed to load profile", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Save(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile) (*domain.Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	profile.UserID = userID

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		s.logger.Error("failed to save profile", zap.String("userId", userID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) StartSetup(ctx context.Context, userID primitive.ObjectID) (*SetupResult, error) {
	var draft profileflow.Draft
	existing, err := s.Get(ctx, userID)
	switch {
	case err == nil:
		draft = profileflow.DraftFromProfile(existing)
	case !errors.Is(err, ErrProfileNotFound):
		return nil, err
	}

	flow := profileflow.New(draft)
	return &SetupResult{Step: flow.Step(), IsLast: flow.IsLast(), Draft: flow.Draft()}, nil
}

func (s *profileService) Setup(ctx context.Context, userID primitive.ObjectID, step int, action string, draft profileflow.Draft) (*SetupResult, error) {
	flow, err := profileflow.Resume(step, draft)
	if err != nil {
		return nil, err
	}

	result := &SetupResult{}
	switch action {
	case ActionNext:
		flow.Next()
	case ActionBack:
		flow.Back()
	case ActionSubmit:
		profile, err := flow.Submit()
		if err != nil {
			return nil, err
		}
		if result.Profile, err = s.Save(ctx, userID, profile); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	result.Step = flow.Step()
	result.IsLast = flow.IsLast()
	result.Draft = flow.Draft()
	return result, nil
}
