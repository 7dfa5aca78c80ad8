package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devashish/pokedex-api/internal/models"
)

// MongoStore handles Pokémon record CRUD against a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("pokemons")}
}

// EnsureIndexes creates the unique index on the record id. Duplicate
// creates then fail at insert instead of silently piling up.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("pokemons index: %w", err)
	}
	return nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]models.Pokemon, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var pokemons []models.Pokemon
	if err := cur.All(ctx, &pokemons); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return pokemons, nil
}

func (s *MongoStore) Create(ctx context.Context, p models.Pokemon) (models.Pokemon, error) {
	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return models.Pokemon{}, fmt.Errorf("mongo insert: %w", err)
	}
	return p, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id int) (*models.Pokemon, error) {
	var p models.Pokemon
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &p, nil
}

// Update applies the non-nil patch fields as a $set and returns the
// post-update record.
func (s *MongoStore) Update(ctx context.Context, id int, patch models.PokemonPatch) (*models.Pokemon, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Base != nil {
		set["base"] = *patch.Base
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Pokemon
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	return &p, nil
}

func (s *MongoStore) Delete(ctx context.Context, id int) (*models.Pokemon, error) {
	var p models.Pokemon
	err := s.col.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo delete: %w", err)
	}
	return &p, nil
}
