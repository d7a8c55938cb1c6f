package services

import (
	"context"
	"errors"
	"time"

	"github.com/Shahriar-Utchas/TrackNFresh-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound means the filter matched no document. Everything else
// coming out of the store is an internal failure.
var ErrNotFound = errors.New("food item not found")

const (
	dateLayout = "2006-01-02"

	// how many days ahead the nearest-expiring window reaches
	expiryWindowDays = 5

	// result cap for the nearest-expiring query
	nearestExpiringLimit = 6
)

type FoodService struct {
	coll *mongo.Collection
	bus  *EventBus
}

func NewFoodService(coll *mongo.Collection, bus *EventBus) *FoodService {
	return &FoodService{coll: coll, bus: bus}
}

func (s *FoodService) Create(ctx context.Context, item models.FoodItem) (string, error) {
	item.ID = primitive.NilObjectID
	res, err := s.coll.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()
	s.bus.Emit(item.FoodCreatorEmail, "food.added", id, item)
	return id, nil
}

func (s *FoodService) All(ctx context.Context) ([]models.FoodItem, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *FoodService) ByOwner(ctx context.Context, email string) ([]models.FoodItem, error) {
	return s.find(ctx, bson.M{"foodCreatorEmail": email}, nil)
}

func (s *FoodService) ByID(ctx context.Context, id string) (models.FoodItem, error) {
	var item models.FoodItem
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return item, err
	}
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return item, ErrNotFound
	}
	return item, err
}

// UpdateFields sets the supplied fields on the item. The _id key is
// stripped; everything else in the body is written as-is.
func (s *FoodService) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	delete(fields, "_id")

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	owner, _ := fields["foodCreatorEmail"].(string)
	s.bus.Emit(owner, "food.updated", id, fields)
	return res.ModifiedCount, nil
}

func (s *FoodService) AddNote(ctx context.Context, id, ownerEmail, note string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"notes": note}})
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	s.bus.Emit(ownerEmail, "food.note_added", id, note)
	return res.ModifiedCount, nil
}

// RemoveNote pulls every note equal to the given value. ErrNotFound is
// reported only when nothing was removed, whether because the item is
// missing or the note never existed.
func (s *FoodService) RemoveNote(ctx context.Context, id, ownerEmail, note string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"notes": note}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	s.bus.Emit(ownerEmail, "food.note_removed", id, note)
	return nil
}

func (s *FoodService) Delete(ctx context.Context, id, ownerEmail string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	s.bus.Emit(ownerEmail, "food.deleted", id, nil)
	return nil
}

func (s *FoodService) NearestExpiring(ctx context.Context) ([]models.FoodItem, error) {
	return s.find(ctx, nearestExpiringFilter(time.Now()), nearestExpiringOpts())
}

// NearestExpiringByOwner returns everything the owner has expiring in
// the window, soonest first. Unlike NearestExpiring there is no result
// cap: the digest must not lose the caller's items to other users'
// sooner expiries.
func (s *FoodService) NearestExpiringByOwner(ctx context.Context, email string) ([]models.FoodItem, error) {
	return s.find(ctx, ownerExpiringFilter(time.Now(), email), ownerExpiringOpts())
}

func (s *FoodService) Expired(ctx context.Context) ([]models.FoodItem, error) {
	return s.find(ctx, expiredFilter(time.Now()), expiredOpts())
}

func (s *FoodService) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.FoodItem, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = s.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	items := []models.FoodItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// expiryWindow returns today and today+expiryWindowDays as YYYY-MM-DD
// strings, both bounds inclusive.
func expiryWindow(now time.Time) (from, to string) {
	from = now.Format(dateLayout)
	to = now.AddDate(0, 0, expiryWindowDays).Format(dateLayout)
	return from, to
}

func nearestExpiringFilter(now time.Time) bson.M {
	from, to := expiryWindow(now)
	return bson.M{"expiryDate": bson.M{"$gte": from, "$lte": to}}
}

func ownerExpiringFilter(now time.Time, email string) bson.M {
	filter := nearestExpiringFilter(now)
	filter["foodCreatorEmail"] = email
	return filter
}

func expiredFilter(now time.Time) bson.M {
	return bson.M{"expiryDate": bson.M{"$lt": now.Format(dateLayout)}}
}

func nearestExpiringOpts() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "expiryDate", Value: 1}}).
		SetLimit(nearestExpiringLimit)
}

func ownerExpiringOpts() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}})
}

func expiredOpts() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "expiryDate", Value: -1}})
}
