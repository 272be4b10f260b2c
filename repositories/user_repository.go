package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"furniture-shop/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository reads and writes profile documents in the users
// collection. The credential hash lives on the same document but never
// leaves this package.
type UserRepository struct {
	collection *mongo.Collection
}

type userDocument struct {
	models.User `bson:",inline"`
	Password    string `bson:"password"`
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User, passwordHash string) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := userDocument{User: *user, Password: passwordHash}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindByEmail returns the user with that email plus the stored password
// hash for credential verification.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, string, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	return &doc.User, doc.Password, nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &doc.User, nil
}

// Save merges the mutable profile fields into the existing document,
// leaving the credential hash untouched.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"name":      user.Name,
		"phone":     user.Phone,
		"address":   user.Address,
		"updatedAt": time.Now(),
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
