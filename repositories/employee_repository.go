// Package repositories holds thin data-access helpers shared by controllers.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
)

// EmployeeRepository wraps employee-collection access used outside plain
// controller queries.
type EmployeeRepository struct {
	collection *mongo.Collection
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *mongo.Client) *EmployeeRepository {
	return &EmployeeRepository{
		collection: config.GetCollection(db, "employees"),
	}
}

// FindByEmployeeID looks up one employee by business key.
func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID int) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail looks up one employee by email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateProfilePicture stores the new picture path for an employee.
func (r *EmployeeRepository) UpdateProfilePicture(ctx context.Context, employeeID int, path string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"employeeId": employeeID},
		bson.M{"$set": bson.M{
			"profilePicture": path,
			"updatedAt":      time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
