package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptions configures the MongoDB-backed store.
type MongoOptions struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database and Collection default to "knotclass" and "catalog".
	Database   string
	Collection string

	// ConnectTimeout bounds connecting and the initial ping.
	ConnectTimeout time.Duration
}

// MongoStore keeps records in a MongoDB collection with a unique index
// on the digest, for catalogs that outlive any single machine.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies the connection and ensures
// the unique digest index before returning the store.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		opts.URI = "mongodb://localhost:27017"
	}
	if opts.Database == "" {
		opts.Database = "knotclass"
	}
	if opts.Collection == "" {
		opts.Collection = "catalog"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "digest", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure digest index: %w", err)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Get retrieves the record for a digest.
func (s *MongoStore) Get(ctx context.Context, digest string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"digest": digest}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, fmt.Errorf("record %s: %w", digest, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read record %s: %w", digest, err)
	}
	return rec, nil
}

// Put stores the record unless its digest is already catalogued. The
// unique index keeps the insert atomic across concurrent writers.
func (s *MongoStore) Put(ctx context.Context, rec Record) (bool, error) {
	_, err := s.coll.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("write record %s: %w", rec.Digest, err)
	}
	return true, nil
}

// List returns all records sorted by digest.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "digest", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	var recs []Record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return recs, nil
}

// Delete removes the record for a digest. Missing digests are not an
// error.
func (s *MongoStore) Delete(ctx context.Context, digest string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"digest": digest}); err != nil {
		return fmt.Errorf("delete record %s: %w", digest, err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
