package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrUnavailable is returned by every operation when the process has no
	// live database connection.
	ErrUnavailable = errors.New("database not available")
	// ErrNotFound is returned when an id-keyed read matches no document.
	ErrNotFound = errors.New("document not found")
)

// Store wraps the process-wide Mongo database handle. The handle may be nil
// when the connection could not be established at startup; in that case
// every operation fails with ErrUnavailable instead of panicking.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Available() bool {
	return s.db != nil
}

// Insert writes one document and returns the store-assigned identifier.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if s.db == nil {
		return primitive.NilObjectID, ErrUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store assigned a non-ObjectID identifier")
	}
	return oid, nil
}

// Find returns up to limit documents matching filter. A nil sort keeps the
// storage-natural order. limit <= 0 returns no documents.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64, sort bson.D) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		return []bson.M{}, nil
	}

	opts := options.Find().SetLimit(limit)
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// FindByID returns the document with the given identifier, or ErrNotFound.
func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateByID applies a $set of fields to one document and returns the
// matched count; 0 means the identifier names nothing.
func (s *Store) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// DeleteByID removes one document and returns the deleted count.
func (s *Store) DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Collections lists the collection names, for the connectivity diagnostic.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
