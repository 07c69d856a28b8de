package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

// TaskRepository persists follow-up tasks.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(CollectionTasks)}
}

func (r *TaskRepository) List(ctx context.Context, studentID string) ([]models.Task, error) {
	tasks, err := newestFirst[models.Task](ctx, r.coll, studentID, "createdAt")
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := findByID[models.Task](ctx, r.coll, id)
	if err != nil {
		return nil, fmt.Errorf("find task %s: %w", id, err)
	}
	return task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// UpdateStatus sets the status and returns the stored task after the change.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, updatedAt time.Time) (*models.Task, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updatedAt", Value: updatedAt},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&task); err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return &task, nil
}
