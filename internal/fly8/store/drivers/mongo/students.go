package mongo

import (
	"context"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type studentDoc struct {
	ID                   string    `bson:"_id"`
	UserID               string    `bson:"userId"`
	InterestedCountries  []string  `bson:"interestedCountries"`
	SelectedServices     []string  `bson:"selectedServices"`
	Intake               *string   `bson:"intake"`
	PreferredDestination *string   `bson:"preferredDestination"`
	OnboardingCompleted  bool      `bson:"onboardingCompleted"`
	AssignedCounselor    *string   `bson:"assignedCounselor"`
	AssignedAgent        *string   `bson:"assignedAgent"`
	CreatedAt            time.Time `bson:"createdAt"`
}

func toStudentDoc(s domain.StudentProfile) studentDoc {
	return studentDoc{
		ID:                   s.ID,
		UserID:               s.UserID,
		InterestedCountries:  nonNil(s.InterestedCountries),
		SelectedServices:     nonNil(s.SelectedServices),
		Intake:               s.Intake,
		PreferredDestination: s.PreferredDestination,
		OnboardingCompleted:  s.OnboardingCompleted,
		AssignedCounselor:    s.AssignedCounselor,
		AssignedAgent:        s.AssignedAgent,
		CreatedAt:            s.CreatedAt.UTC(),
	}
}

func (d studentDoc) toDomain() (domain.StudentProfile, error) {
	return checked(domain.StudentProfile{
		ID:                   d.ID,
		UserID:               d.UserID,
		InterestedCountries:  nonNil(d.InterestedCountries),
		SelectedServices:     nonNil(d.SelectedServices),
		Intake:               d.Intake,
		PreferredDestination: d.PreferredDestination,
		OnboardingCompleted:  d.OnboardingCompleted,
		AssignedCounselor:    d.AssignedCounselor,
		AssignedAgent:        d.AssignedAgent,
		CreatedAt:            d.CreatedAt.UTC(),
	})
}

type studentsRepo struct {
	coll *mongo.Collection
}

func (r *studentsRepo) GetStudentByUserID(ctx context.Context, userID string) (domain.StudentProfile, error) {
	return findOne(ctx, r.coll, bson.M{"userId": userID}, studentDoc.toDomain)
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.StudentProfile, error) {
	return findOne(ctx, r.coll, bson.M{"_id": id}, studentDoc.toDomain)
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s domain.StudentProfile) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, toStudentDoc(s))
	return mapWriteErr(err)
}

func (r *studentsRepo) UpdateOnboarding(ctx context.Context, userID string, o domain.Onboarding) error {
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{
			"interestedCountries":  nonNil(o.InterestedCountries),
			"selectedServices":     nonNil(o.SelectedServices),
			"intake":               o.Intake,
			"preferredDestination": o.PreferredDestination,
			"onboardingCompleted":  true,
		}},
	))
}

func (r *studentsRepo) AssignCounselor(ctx context.Context, studentID, counselorID string) error {
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"_id": studentID},
		bson.M{"$set": bson.M{"assignedCounselor": counselorID}},
	))
}

func (r *studentsRepo) AssignAgent(ctx context.Context, studentID, agentID string) error {
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"_id": studentID},
		bson.M{"$set": bson.M{"assignedAgent": agentID}},
	))
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	return findAll(ctx, r.coll, bson.M{}, studentDoc.toDomain)
}

func (r *studentsRepo) ListByCounselor(ctx context.Context, counselorID string) ([]domain.StudentProfile, error) {
	return findAll(ctx, r.coll, bson.M{"assignedCounselor": counselorID}, studentDoc.toDomain)
}

func (r *studentsRepo) ListByAgent(ctx context.Context, agentID string) ([]domain.StudentProfile, error) {
	return findAll(ctx, r.coll, bson.M{"assignedAgent": agentID}, studentDoc.toDomain)
}

func (r *studentsRepo) CountStudents(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *studentsRepo) CountByCounselor(ctx context.Context, counselorID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"assignedCounselor": counselorID})
}

func (r *studentsRepo) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"assignedAgent": agentID})
}
