package store

import (
	"context"
	"fmt"
	"time"

	"TareasWebService/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client for the given MongoDB URI and verifies the
// connection with a ping before returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

// MongoTaskStore is the TaskStore backed by a MongoDB collection.
type MongoTaskStore struct {
	coll *mongo.Collection
}

// NewMongoTaskStore returns a store over the given collection.
func NewMongoTaskStore(coll *mongo.Collection) *MongoTaskStore {
	return &MongoTaskStore{coll: coll}
}

func (s *MongoTaskStore) List(ctx context.Context, completed *bool) ([]models.Task, error) {
	filter := bson.M{}
	if completed != nil {
		filter["completed"] = *completed
	}
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	tasks := make([]models.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (s *MongoTaskStore) Create(ctx context.Context, title, description string) (models.Task, error) {
	task := models.Task{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.coll.InsertOne(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return task, nil
}

func (s *MongoTaskStore) Get(ctx context.Context, id primitive.ObjectID) (models.Task, error) {
	var task models.Task
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	return task, nil
}

func (s *MongoTaskStore) Update(ctx context.Context, id primitive.ObjectID, patch TaskPatch) (models.Task, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if len(set) == 0 {
		// An empty $set is rejected by the server; nothing to change.
		return s.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task models.Task
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *MongoTaskStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
