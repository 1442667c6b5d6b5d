package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	FirstName   string     `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string     `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Age         int        `bson:"age,omitempty" json:"age,omitempty"`
	Gender      string     `bson:"gender,omitempty" json:"gender,omitempty"`
	Height      float64    `bson:"height,omitempty" json:"height,omitempty"` // cm
	Weight      float64    `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	DateOfBirth *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	Role           string             `bson:"role" json:"role"`
	Profile        Profile            `bson:"profile" json:"profile"`
	FitnessGoals   []string           `bson:"fitnessGoals,omitempty" json:"fitnessGoals,omitempty"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	RefreshToken   string             `bson:"refreshToken,omitempty" json:"-"`
	ResetToken     string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExp  time.Time          `bson:"resetTokenExp,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
