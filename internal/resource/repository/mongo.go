package repository

import (
	"context"
	"errors"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/resource"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores records in a MongoDB collection. Ids are ObjectID hex
// strings kept as the string "_id" of each document, so entity types must map
// their id field to `bson:"_id,omitempty"`.
type MongoRepo[T any] struct {
	kind resource.Kind[T]
	col  *mongo.Collection
}

func NewMongoRepo[T any](kind resource.Kind[T], col *mongo.Collection) *MongoRepo[T] {
	return &MongoRepo[T]{kind: kind, col: col}
}

func (m *MongoRepo[T]) Create(ctx context.Context, doc *T) (*T, error) {
	m.kind.SetID(doc, primitive.NewObjectID().Hex())
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *MongoRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var d T
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo[T]) FindAll(ctx context.Context) ([]*T, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*T{}
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

// Save upserts the record under its id; a record without an id is created.
func (m *MongoRepo[T]) Save(ctx context.Context, doc *T) (*T, error) {
	id := m.kind.GetID(doc)
	if id == "" {
		return m.Create(ctx, doc)
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *MongoRepo[T]) Replace(ctx context.Context, id string, doc *T) error {
	m.kind.SetID(doc, id)
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo[T]) DeleteByID(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo[T]) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}
