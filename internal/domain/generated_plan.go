package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneratedPlan is the raw AI-produced plan text plus the preferences used to
// request it. Plans are immutable and kept as an append-only history per user.
type GeneratedPlan struct {
	ID          primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID    `bson:"userId" json:"userId"`
	Plan        string                `bson:"plan" json:"plan"`
	Preferences GenerationPreferences `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time             `bson:"createdAt" json:"createdAt"`
}

// PlanExport stores metadata about a plan rendered to object storage.
// The file itself lives in S3.
type PlanExport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlanID      primitive.ObjectID `bson:"planId" json:"planId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"`
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size" json:"size"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
