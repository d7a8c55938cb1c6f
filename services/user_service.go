package services

import (
	"context"

	"github.com/Shahriar-Utchas/TrackNFresh-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	coll *mongo.Collection
}

func NewUserService(coll *mongo.Collection) *UserService {
	return &UserService{coll: coll}
}

// Register inserts the registration document as-is and returns the
// store-assigned id.
func (s *UserService) Register(ctx context.Context, user models.User) (string, error) {
	user.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
