package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type applicationDoc struct {
	ID        string    `bson:"_id"`
	StudentID string    `bson:"studentId"`
	ServiceID string    `bson:"serviceId"`
	Status    string    `bson:"status"`
	Progress  int       `bson:"progress"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d applicationDoc) toDomain() (domain.ServiceApplication, error) {
	return checked(domain.ServiceApplication{
		ID:        d.ID,
		StudentID: d.StudentID,
		ServiceID: d.ServiceID,
		Status:    domain.ApplicationStatus(d.Status),
		Progress:  d.Progress,
		CreatedAt: d.CreatedAt.UTC(),
	})
}

type applicationsRepo struct {
	coll *mongo.Collection
}

func (r *applicationsRepo) GetApplication(
	ctx context.Context,
	studentID, serviceID string,
) (domain.ServiceApplication, error) {
	return findOne(ctx, r.coll, bson.M{"studentId": studentID, "serviceId": serviceID}, applicationDoc.toDomain)
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.ServiceApplication, error) {
	return findOne(ctx, r.coll, bson.M{"_id": id}, applicationDoc.toDomain)
}

// CreateApplication relies on the unique (studentId, serviceId) index, so a
// concurrent duplicate fails instead of overwriting.
func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.ServiceApplication) error {
	if err := store.CheckRecord(a); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, applicationDoc{
		ID:        a.ID,
		StudentID: a.StudentID,
		ServiceID: a.ServiceID,
		Status:    string(a.Status),
		Progress:  a.Progress,
		CreatedAt: a.CreatedAt.UTC(),
	})
	return mapWriteErr(err)
}

func (r *applicationsRepo) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
) error {
	if !status.Valid() {
		return fmt.Errorf("%w: application status %q", store.ErrInvalidRecord, status)
	}
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	))
}

func (r *applicationsRepo) ListByStudent(
	ctx context.Context,
	studentID string,
) ([]domain.ServiceApplication, error) {
	return findAll(ctx, r.coll, bson.M{"studentId": studentID}, applicationDoc.toDomain)
}

func (r *applicationsRepo) CountByStatus(ctx context.Context, statuses ...domain.ApplicationStatus) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	vals := make(bson.A, len(statuses))
	for i, s := range statuses {
		vals[i] = string(s)
	}
	return r.coll.CountDocuments(ctx, bson.M{"status": bson.M{"$in": vals}})
}
