package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Vladoochka/ProjectTask/internal/core/authz"
	"github.com/Vladoochka/ProjectTask/internal/core/domain"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID  string             `bson:"customer_id"`
	EmployeeID  string             `bson:"employee_id,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	CompletedAt *time.Time         `bson:"completed_at,omitempty"`
	Report      string             `bson:"report"`
}

// Create inserts a task after running the entity-level save invariant.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(task))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID retrieves a task inside the visibility scope. The scope is folded
// into the query so an invisible task is indistinguishable from a missing one.
func (r *TaskRepository) FindByID(ctx context.Context, id string, scope authz.Scope) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	filter, ok := scopeFilter(scope)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	filter["_id"] = oid

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTask
	if err := r.col.FindOne(ctx, filter).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return fromDoc(mt), nil
}

// List returns all tasks inside the scope, newest first.
func (r *TaskRepository) List(ctx context.Context, scope authz.Scope) ([]*domain.Task, error) {
	filter, ok := scopeFilter(scope)
	if !ok {
		return []*domain.Task{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []*domain.Task{}
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, fromDoc(mt))
	}
	return tasks, cur.Err()
}

// Update replaces the task document after running the entity-level save
// invariant. Last write wins; no optimistic locking is imposed.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toDoc(task))
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}

	updated := *task
	return &updated, nil
}

// DeleteByCustomer removes every task owned by the customer (cascade path).
func (r *TaskRepository) DeleteByCustomer(ctx context.Context, customerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return fmt.Errorf("delete tasks by customer: %w", err)
	}
	return nil
}

// UnassignEmployee clears the assignee on every task held by the employee.
func (r *TaskRepository) UnassignEmployee(ctx context.Context, employeeID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"employee_id": employeeID},
		bson.M{"$unset": bson.M{"employee_id": ""}},
	)
	if err != nil {
		return fmt.Errorf("unassign employee tasks: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the tasks collection.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// scopeFilter translates a visibility scope into a Mongo filter. The second
// return is false for the empty scope, which matches nothing.
func scopeFilter(scope authz.Scope) (bson.M, bool) {
	switch {
	case scope.Empty:
		return nil, false
	case scope.All:
		return bson.M{}, true
	case scope.CustomerID != "":
		return bson.M{"customer_id": scope.CustomerID}, true
	case scope.EmployeeID != "":
		return bson.M{"$or": bson.A{
			bson.M{"employee_id": scope.EmployeeID},
			bson.M{"employee_id": bson.M{"$exists": false}},
			bson.M{"employee_id": ""},
		}}, true
	}
	return nil, false
}

func toDoc(t *domain.Task) mongoTask {
	doc := mongoTask{
		CustomerID:  t.CustomerID,
		EmployeeID:  t.EmployeeID,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
		Report:      t.Report,
	}
	if t.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(t.ID); err == nil {
			doc.ID = oid
		}
	}
	return doc
}

func fromDoc(mt mongoTask) *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		CustomerID:  mt.CustomerID,
		EmployeeID:  mt.EmployeeID,
		Status:      domain.TaskStatus(mt.Status),
		CreatedAt:   mt.CreatedAt,
		UpdatedAt:   mt.UpdatedAt,
		CompletedAt: mt.CompletedAt,
		Report:      mt.Report,
	}
}
