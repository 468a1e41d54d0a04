package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trackedPlanCollectionName = "tracked_plans"

// mongoTrackedPlanRepository implements repository.TrackedPlanRepository
type mongoTrackedPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoTrackedPlanRepository(db *mongo.Database) repository.TrackedPlanRepository {
	return &mongoTrackedPlanRepository{
		collection: db.Collection(trackedPlanCollectionName),
	}
}

func (r *mongoTrackedPlanRepository) Create(ctx context.Context, plan *domain.TrackedPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID || plan.Name == "" {
		return primitive.NilObjectID, errors.New("tracked plan requires userId and name")
	}
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = time.Now().UTC()
	if plan.Progress == nil {
		// $push needs an array, not null
		plan.Progress = []domain.ProgressEntry{}
	}

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted plan ID")
	}
	return insertedID, nil
}

func (r *mongoTrackedPlanRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.TrackedPlan, error) {
	plans := []domain.TrackedPlan{}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoTrackedPlanRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.TrackedPlan, error) {
	var plan domain.TrackedPlan
	filter := bson.M{"_id": id, "userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// Delete removes the plan only if it belongs to userID.
func (r *mongoTrackedPlanRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTrackedPlanRepository) AppendProgress(ctx context.Context, id, userID primitive.ObjectID, entry domain.ProgressEntry) error {
	filter := bson.M{"_id": id, "userId": userID}
	update := bson.M{"$push": bson.M{"progress": entry}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrackedPlanIndexes creates necessary indexes. Call during startup.
func EnsureTrackedPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "generatedPlanId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
