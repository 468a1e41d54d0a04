package repository

import (
	"context"

	"alcyxob/fitplanner/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks alcyxob/fitplanner/internal/repository UserRepository,ProfileRepository,GeneratedPlanRepository,TrackedPlanRepository,PlanExportRepository

var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Every per-user query below filters on the owning user id. Records are
// read-then-written without optimistic concurrency control, so two sessions
// editing the same record concurrently can lose one of the updates.

type UserRepository interface {
	// Create returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetBySubject(ctx context.Context, provider domain.AuthProvider, subject string) (*domain.User, error)
	// LinkSubject attaches a federated identity to an existing account.
	LinkSubject(ctx context.Context, id primitive.ObjectID, provider domain.AuthProvider, subject string) error
}

// ProfileRepository stores the single profile document of each user.
type ProfileRepository interface {
	// Upsert merges profile into the stored document, creating it if absent.
	Upsert(ctx context.Context, profile *domain.Profile) error
	// Get returns ErrNotFound when the user has no profile yet.
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
}

// GeneratedPlanRepository is the append-only history of generated plans.
type GeneratedPlanRepository interface {
	Create(ctx context.Context, plan *domain.GeneratedPlan) (primitive.ObjectID, error)
	// ListRecent returns at most limit plans, newest first.
	ListRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.GeneratedPlan, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.GeneratedPlan, error)
}

type TrackedPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrackedPlan) (primitive.ObjectID, error)
	// ListByUser returns every tracked plan of the user, newest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.TrackedPlan, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.TrackedPlan, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	// AppendProgress pushes entry onto the plan's progress array.
	AppendProgress(ctx context.Context, id, userID primitive.ObjectID, entry domain.ProgressEntry) error
}

type PlanExportRepository interface {
	Create(ctx context.Context, export *domain.PlanExport) (primitive.ObjectID, error)
	GetLatestByPlan(ctx context.Context, planID, userID primitive.ObjectID) (*domain.PlanExport, error)
}
