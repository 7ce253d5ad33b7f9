package userstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection holds user documents unless configured otherwise.
const DefaultCollection = "users"

// MongoStore upserts user documents into a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store over db.collection. An empty collection name
// selects DefaultCollection.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// Save replaces the document with u.ID, inserting it when absent.
func (s *MongoStore) Save(ctx context.Context, u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: u.ID}},
		u,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return User{}, errors.Join(ErrSaveFailed, err)
	}
	return u, nil
}

// Get loads the document with the given ID.
func (s *MongoStore) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
