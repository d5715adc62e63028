package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col   *mongo.Collection
	users *UserRepository
}

func NewEmployeeRepository(db *mongo.Database, users *UserRepository) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees), users: users}
}

type mongoEmployee struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	CanAccessAllTasks bool               `bson:"can_access_all_tasks"`
	PhotoID           string             `bson:"photo_id,omitempty"`
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEmployee{
		UserID:            employee.UserID,
		CanAccessAllTasks: employee.CanAccessAllTasks,
		PhotoID:           employee.PhotoID,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *EmployeeRepository) FindByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var employees []*domain.Employee
	for cur.Next(ctx) {
		var me mongoEmployee
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		employees = append(employees, r.hydrate(ctx, me))
	}
	return employees, cur.Err()
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEmployee
	if err := r.col.FindOne(ctx, filter).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return r.hydrate(ctx, me), nil
}

func (r *EmployeeRepository) hydrate(ctx context.Context, me mongoEmployee) *domain.Employee {
	employee := &domain.Employee{
		ID:                me.ID.Hex(),
		UserID:            me.UserID,
		CanAccessAllTasks: me.CanAccessAllTasks,
		PhotoID:           me.PhotoID,
	}
	if user, err := r.users.FindByID(ctx, me.UserID); err == nil {
		employee.User = user
	}
	return employee
}
