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

const profileCollectionName = "profiles"

// Profiles are keyed by the owning user's id, so no extra index is needed.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Upsert merges the profile fields into the user's document with $set.
// Fields stored by older clients and not part of Profile are left alone.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if profile.UserID == primitive.NilObjectID {
		return errors.New("profile requires a user id")
	}
	profile.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":                profile.Name,
			"age":                 profile.Age,
			"gender":              profile.Gender,
			"weight":              profile.WeightKg,
			"height":              profile.HeightCm,
			"activityLevel":       profile.ActivityLevel,
			"workoutDaysPerWeek":  profile.WorkoutDaysPerWeek,
			"healthConditions":    profile.HealthConditions,
			"dietaryRestrictions": profile.DietaryRestrictions,
			"updatedAt":           profile.UpdatedAt,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.UserID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoProfileRepository) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}
