package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recommendation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RecommenderID primitive.ObjectID `bson:"recommenderId" json:"recommenderId"`
	RecipientID   primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	PropertyID    primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type RecommendRequest struct {
	RecipientEmail string `json:"recipientEmail" binding:"required,email"`
	Message        string `json:"message"`
}
