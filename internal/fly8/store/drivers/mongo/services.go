package mongo

import (
	"context"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type serviceDoc struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	Description       string    `bson:"description"`
	Category          string    `bson:"category"`
	EstimatedDuration *string   `bson:"estimatedDuration,omitempty"`
	Price             *float64  `bson:"price,omitempty"`
	Icon              *string   `bson:"icon,omitempty"`
	CreatedAt         time.Time `bson:"createdAt"`
}

func (d serviceDoc) toDomain() (domain.Service, error) {
	return checked(domain.Service{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		Category:          d.Category,
		EstimatedDuration: d.EstimatedDuration,
		Price:             d.Price,
		Icon:              d.Icon,
		CreatedAt:         d.CreatedAt.UTC(),
	})
}

type servicesRepo struct {
	coll *mongo.Collection
}

func (r *servicesRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	return findAll(ctx, r.coll, bson.M{}, serviceDoc.toDomain)
}

func (r *servicesRepo) GetServiceByID(ctx context.Context, id string) (domain.Service, error) {
	return findOne(ctx, r.coll, bson.M{"_id": id}, serviceDoc.toDomain)
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, serviceDoc{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		Category:          s.Category,
		EstimatedDuration: s.EstimatedDuration,
		Price:             s.Price,
		Icon:              s.Icon,
		CreatedAt:         s.CreatedAt.UTC(),
	})
	return mapWriteErr(err)
}

func (r *servicesRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
