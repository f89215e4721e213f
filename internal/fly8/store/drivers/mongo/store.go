// Package mongo stores fly8 records in MongoDB. Documents use the camelCase
// field names of the fly8 collections; entity ids are stored as _id.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	collUsers        = "users"
	collStudents     = "students"
	collServices     = "services"
	collApplications = "service_applications"
)

// oldestFirst is the list order shared by every repository.
var oldestFirst = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// NewStore connects to uri and uses the named database.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(collUsers)}
}

func (s *Store) Students() store.Students {
	return &studentsRepo{coll: s.db.Collection(collStudents)}
}

func (s *Store) Services() store.Services {
	return &servicesRepo{coll: s.db.Collection(collServices)}
}

func (s *Store) Applications() store.Applications {
	return &applicationsRepo{coll: s.db.Collection(collApplications)}
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

// findOne decodes the single document matching filter through conv.
func findOne[D any, T any](
	ctx context.Context,
	coll *mongo.Collection,
	filter any,
	conv func(D) (T, error),
) (T, error) {
	var d D
	if err := coll.FindOne(ctx, filter).Decode(&d); err != nil {
		var zero T
		return zero, mapNotFound(err)
	}
	return conv(d)
}

// checked validates a decoded record before it leaves the driver.
func checked[T interface{ Validate() error }](v T) (T, error) {
	if err := store.CheckRecord(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func expectMatched(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// findAll decodes every document matching filter, oldest first, and maps it
// through conv. The result is never nil.
func findAll[D any, T any](
	ctx context.Context,
	coll *mongo.Collection,
	filter any,
	conv func(D) (T, error),
) ([]T, error) {
	cur, err := coll.Find(ctx, filter, options.Find().SetSort(oldestFirst))
	if err != nil {
		return nil, err
	}

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := conv(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
