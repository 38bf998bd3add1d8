package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a persisted in-app notification, also pushed over the
// WebSocket hub when the recipient is connected.
type Notification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID int                `json:"employeeId" bson:"employeeId"`
	Title      string             `json:"title" bson:"title"`
	Message    string             `json:"message" bson:"message"`
	Type       string             `json:"type" bson:"type"`
	Data       interface{}        `json:"data,omitempty" bson:"data,omitempty"`
	IsRead     bool               `json:"isRead" bson:"isRead"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
