package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Sagar00752/hrms/pkg/mongo"
)

// UsersCollection is the collection users are stored in.
const UsersCollection = "users"

// MongoStorage implements Storage on the users collection.
type MongoStorage struct {
	coll *driver.Collection
}

// NewMongoStorage returns a Storage backed by db and ensures the unique email index.
func NewMongoStorage(ctx context.Context, db *driver.Database) (*MongoStorage, error) {
	coll := db.Collection(UsersCollection)

	err := mongo.EnsureIndexes(ctx, coll, driver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return nil, err
	}

	return &MongoStorage{coll: coll}, nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, user *User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKey(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (s *MongoStorage) GetUserByID(ctx context.Context, id string) (*User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *MongoStorage) StoreToken(ctx context.Context, id, token string, expires time.Time) error {
	return s.update(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "token", Value: token},
		{Key: "tokenExpires", Value: expires},
	}}})
}

func (s *MongoStorage) ClearToken(ctx context.Context, id string) error {
	return s.update(ctx, id, bson.D{{Key: "$unset", Value: bson.D{
		{Key: "token", Value: ""},
		{Key: "tokenExpires", Value: ""},
	}}})
}

func (s *MongoStorage) findOne(ctx context.Context, filter bson.D) (*User, error) {
	var user User
	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if mongo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *MongoStorage) update(ctx context.Context, id string, update bson.D) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidUserID
	}

	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ Storage = (*MongoStorage)(nil)
