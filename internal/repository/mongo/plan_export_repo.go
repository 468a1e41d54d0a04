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

const planExportCollectionName = "plan_exports"

// mongoPlanExportRepository implements repository.PlanExportRepository
type mongoPlanExportRepository struct {
	collection *mongo.Collection
}

func NewMongoPlanExportRepository(db *mongo.Database) repository.PlanExportRepository {
	return &mongoPlanExportRepository{
		collection: db.Collection(planExportCollectionName),
	}
}

// Create inserts export metadata. The object itself must already be in storage.
func (r *mongoPlanExportRepository) Create(ctx context.Context, export *domain.PlanExport) (primitive.ObjectID, error) {
	if export.PlanID == primitive.NilObjectID ||
		export.UserID == primitive.NilObjectID ||
		export.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("plan export requires planId, userId and s3ObjectKey")
	}

	export.ID = primitive.NewObjectID()
	export.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, export)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoPlanExportRepository) GetLatestByPlan(ctx context.Context, planID, userID primitive.ObjectID) (*domain.PlanExport, error) {
	var export domain.PlanExport
	filter := bson.M{"planId": planID, "userId": userID}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&export)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &export, nil
}

// EnsurePlanExportIndexes creates necessary indexes. Call during startup.
func EnsurePlanExportIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
