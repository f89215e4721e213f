package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type indexSpec struct {
	coll  string
	model mongo.IndexModel
}

func unique(keys bson.D, name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(true).SetName(name),
	}
}

func plain(keys bson.D, name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
}

var indexes = []indexSpec{
	{collUsers, unique(bson.D{{Key: "email", Value: 1}}, "uniq_email")},
	{collUsers, plain(bson.D{{Key: "role", Value: 1}}, "idx_role")},
	{collStudents, unique(bson.D{{Key: "userId", Value: 1}}, "uniq_user")},
	{collStudents, plain(bson.D{{Key: "assignedCounselor", Value: 1}}, "idx_counselor")},
	{collStudents, plain(bson.D{{Key: "assignedAgent", Value: 1}}, "idx_agent")},
	{collApplications, unique(bson.D{{Key: "studentId", Value: 1}, {Key: "serviceId", Value: 1}}, "uniq_student_service")},
	{collApplications, plain(bson.D{{Key: "status", Value: 1}}, "idx_status")},
}

// ApplyMigrations creates the indexes the store relies on. The unique ones
// carry the uniqueness guarantees; creating an existing index is a no-op.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	for _, ix := range indexes {
		if _, err := s.db.Collection(ix.coll).Indexes().CreateOne(ctx, ix.model); err != nil {
			return fmt.Errorf("mongo: create index on %s: %w", ix.coll, err)
		}
	}
	return nil
}
