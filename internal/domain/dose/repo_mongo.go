package dose

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medassist/medassist/internal/platform/db"
)

type doseEventRepoMongo struct {
	col *mongo.Collection
}

func NewDoseEventRepoMongo(database *mongo.Database) DoseEventRepository {
	return &doseEventRepoMongo{col: database.Collection(db.CollectionDoseEvents)}
}

func (r *doseEventRepoMongo) Create(ctx context.Context, ev *DoseEvent) error {
	if ev.ID.IsZero() {
		ev.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, ev)
	return err
}

func (r *doseEventRepoMongo) ListWindow(ctx context.Context, userID string, from, to time.Time) ([]*DoseEvent, error) {
	filter := bson.M{
		"user_id":        userID,
		"scheduled_time": bson.M{"$gte": from, "$lt": to},
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var events []*DoseEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *doseEventRepoMongo) ListSince(ctx context.Context, userID string, since time.Time) ([]*DoseEvent, error) {
	filter := bson.M{
		"user_id":        userID,
		"scheduled_time": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_time", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var events []*DoseEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *doseEventRepoMongo) ListMissedSince(ctx context.Context, userID string, since time.Time) ([]*DoseEvent, error) {
	filter := bson.M{
		"user_id":        userID,
		"status":         StatusMissed,
		"scheduled_time": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_time", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var events []*DoseEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *doseEventRepoMongo) Confirm(ctx context.Context, userID, medicationID string, scheduledTime, takenTime time.Time) (int64, error) {
	filter := bson.M{
		"user_id":        userID,
		"medication_id":  medicationID,
		"scheduled_time": scheduledTime,
	}
	update := bson.M{"$set": bson.M{
		"status":     StatusTaken,
		"taken_time": takenTime,
	}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// EnsureIndexes creates the doseevent indexes: the window-query index, the
// unique identity index backing confirm, and the status index serving the
// missed-dose query.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	col := database.Collection(db.CollectionDoseEvents)
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "scheduled_time", Value: 1}},
			Options: options.Index().SetName("user_scheduled"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "medication_id", Value: 1},
				{Key: "scheduled_time", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("dose_identity"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "scheduled_time", Value: -1},
			},
			Options: options.Index().SetName("user_status_scheduled"),
		},
	})
	return err
}
