package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devashish/pokedex-api/internal/models"
)

// MongoUserStore persists user accounts in a MongoDB collection with unique
// indexes on email and username.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email and username indexes. The index
// names are also how duplicate-key errors get mapped back to a field.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}

func (s *MongoUserStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("mongo count email: %w", err)
	}
	return n > 0, nil
}

func (s *MongoUserStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, fmt.Errorf("mongo count username: %w", err)
	}
	return n > 0, nil
}

func (s *MongoUserStore) CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error) {
	u := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  hashedPw,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "username_unique") {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("mongo insert user: %w", err)
	}
	return u, nil
}

func (s *MongoUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	return &u, nil
}
