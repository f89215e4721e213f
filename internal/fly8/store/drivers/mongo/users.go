package mongo

import (
	"context"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userDoc struct {
	ID        string     `bson:"_id"`
	Email     string     `bson:"email"`
	Password  string     `bson:"password"`
	FirstName string     `bson:"firstName"`
	LastName  string     `bson:"lastName"`
	Role      string     `bson:"role"`
	IsActive  bool       `bson:"isActive"`
	Phone     *string    `bson:"phone,omitempty"`
	Country   *string    `bson:"country,omitempty"`
	CreatedAt time.Time  `bson:"createdAt"`
	LastLogin *time.Time `bson:"lastLogin,omitempty"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		Phone:     u.Phone,
		Country:   u.Country,
		CreatedAt: u.CreatedAt.UTC(),
		LastLogin: utcPtr(u.LastLogin),
	}
}

func (d userDoc) toDomain() (domain.User, error) {
	return checked(domain.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.Password,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Role:         domain.Role(d.Role),
		IsActive:     d.IsActive,
		Phone:        d.Phone,
		Country:      d.Country,
		CreatedAt:    d.CreatedAt.UTC(),
		LastLogin:    utcPtr(d.LastLogin),
	})
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return findOne(ctx, r.coll, bson.M{"_id": id}, userDoc.toDomain)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return findOne(ctx, r.coll, bson.M{"email": email}, userDoc.toDomain)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if err := store.CheckRecord(u); err != nil {
		return err
	}
	_, err := r.coll.InsertOne(ctx, toUserDoc(u))
	return mapWriteErr(err)
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastLogin": at.UTC()}},
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	if hash == "" {
		return store.ErrInvalidRecord
	}
	return expectMatched(r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": hash}},
	))
}

func (r *usersRepo) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return findAll(ctx, r.coll, bson.M{"role": string(role)}, userDoc.toDomain)
}

func (r *usersRepo) CountUsersByRole(ctx context.Context, role domain.Role) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"role": string(role)})
}
