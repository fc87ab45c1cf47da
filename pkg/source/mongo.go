package source

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/notewall/pkg/errors"
)

// MongoConfig configures a MongoSource.
type MongoConfig struct {
	URI        string // mongodb://host:27017
	Database   string
	Collection string // defaults to "love_notes"
	Limit      int64  // 0 means no limit
}

// DefaultCollection holds the love notes.
const DefaultCollection = "love_notes"

// MongoSource reads notes from a MongoDB collection, newest first.
type MongoSource struct {
	client *mongo.Client // nil when the collection was injected
	coll   *mongo.Collection
	limit  int64
	retry  backoff
}

// NewMongoSource connects to MongoDB and verifies the connection.
func NewMongoSource(ctx context.Context, cfg MongoConfig) (*MongoSource, error) {
	if cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo uri and database are required")
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "connect %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "ping %s", cfg.URI)
	}

	s := NewMongoSourceFromCollection(client.Database(cfg.Database).Collection(cfg.Collection), cfg.Limit)
	s.client = client
	return s, nil
}

// NewMongoSourceFromCollection wraps an existing collection handle. Close
// does not disconnect the caller's client.
func NewMongoSourceFromCollection(coll *mongo.Collection, limit int64) *MongoSource {
	return &MongoSource{coll: coll, limit: limit}
}

// Notes implements Source. Transient network failures are retried.
func (s *MongoSource) Notes(ctx context.Context) ([]Note, error) {
	var docs []mongoNote
	err := withRetry(ctx, s.retry, func() error {
		cur, err := s.coll.Find(ctx, bson.D{}, findOptions(s.limit))
		if err != nil {
			return classify(err)
		}
		docs = docs[:0]
		return classify(cur.All(ctx, &docs))
	})
	if err != nil {
		return nil, queryError(err, s.coll.Name())
	}

	notes := make([]Note, len(docs))
	for i, d := range docs {
		notes[i] = d.note()
	}
	if err := Validate(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Close implements Source.
func (s *MongoSource) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// findOptions sorts newest first, breaking ties by id so equal timestamps
// still produce a stable wall.
func findOptions(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

func classify(err error) error {
	if err != nil && (mongo.IsNetworkError(err) || mongo.IsTimeout(err)) {
		return retryable(err)
	}
	return err
}

// queryError reports unreachable servers as UNAVAILABLE. Anything else,
// such as a document that does not decode, is an internal failure.
func queryError(err error, coll string) error {
	if unreachable(err) {
		return errors.Wrap(errors.ErrCodeUnavailable, err, "query %s", coll)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "query %s", coll)
}

func unreachable(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

// mongoNote accepts both string and ObjectID primary keys.
type mongoNote struct {
	ID        bson.RawValue `bson:"_id"`
	Content   string        `bson:"content"`
	Author    string        `bson:"author"`
	CreatedAt time.Time     `bson:"created_at"`
	Photos    []Photo       `bson:"photos"`
}

func (d mongoNote) note() Note {
	n := Note{
		Content:   d.Content,
		Author:    d.Author,
		CreatedAt: d.CreatedAt,
		Photos:    d.Photos,
	}
	switch d.ID.Type {
	case bson.TypeString:
		n.ID = d.ID.StringValue()
	case bson.TypeObjectID:
		n.ID = d.ID.ObjectID().Hex()
	default:
		if d.ID.Value != nil {
			n.ID = d.ID.String()
		}
	}
	return n
}
