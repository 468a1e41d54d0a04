package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthProvider records how an account signs in.
type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

// User is an account. Every other record is owned by exactly one user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`             // unique
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"` // empty for federated accounts
	Provider     AuthProvider       `bson:"provider" json:"provider"`
	Subject      string             `bson:"subject,omitempty" json:"-"` // federated provider subject
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsFederated() bool {
	return u.Provider != ProviderPassword
}
