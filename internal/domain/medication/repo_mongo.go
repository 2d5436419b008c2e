package medication

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medassist/medassist/internal/platform/db"
)

type medicationRepoMongo struct {
	col *mongo.Collection
}

func NewMedicationRepoMongo(database *mongo.Database) MedicationRepository {
	return &medicationRepoMongo{col: database.Collection(db.CollectionMedications)}
}

func (r *medicationRepoMongo) Create(ctx context.Context, m *Medication) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *medicationRepoMongo) ListByUser(ctx context.Context, userID string) ([]*Medication, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var meds []*Medication
	if err := cur.All(ctx, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

// EnsureIndexes creates the medication collection indexes.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	col := database.Collection(db.CollectionMedications)
	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user"),
		},
	})
	return err
}
