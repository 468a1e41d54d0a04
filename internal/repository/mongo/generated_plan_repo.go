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

const generatedPlanCollectionName = "generated_plans"

// mongoGeneratedPlanRepository implements repository.GeneratedPlanRepository.
// Documents are never updated once inserted.
type mongoGeneratedPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoGeneratedPlanRepository(db *mongo.Database) repository.GeneratedPlanRepository {
	return &mongoGeneratedPlanRepository{
		collection: db.Collection(generatedPlanCollectionName),
	}
}

func (r *mongoGeneratedPlanRepository) Create(ctx context.Context, plan *domain.GeneratedPlan) (primitive.ObjectID, error) {
	if plan.UserID == primitive.NilObjectID || plan.Plan == "" {
		return primitive.NilObjectID, errors.New("generated plan requires userId and plan text")
	}
	plan.ID = primitive.NewObjectID()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
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

func (r *mongoGeneratedPlanRepository) ListRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.GeneratedPlan, error) {
	plans := []domain.GeneratedPlan{}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

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

func (r *mongoGeneratedPlanRepository) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.GeneratedPlan, error) {
	var plan domain.GeneratedPlan
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

// EnsureGeneratedPlanIndexes creates the history index. Call during startup.
func EnsureGeneratedPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
