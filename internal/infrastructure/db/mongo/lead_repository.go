package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leadflow/lead-system/internal/core/domain"
)

const (
	collectionLeads    = "leads"
	collectionCounters = "counters"
	positionCounterID  = "lead_position"
)

// leadDocument stores a lead with its position in display order. Lower
// positions come first; inserts take a position below every existing one.
type leadDocument struct {
	domain.Lead `bson:",inline"`
	Position    int64 `bson:"position"`
}

// LeadRepository is a MongoDB-backed ports.LeadStore.
type LeadRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		col:      db.Collection(collectionLeads),
		counters: db.Collection(collectionCounters),
	}
}

// Insert prepends lead by giving it the next lowest position.
func (r *LeadRepository) Insert(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pos, err := r.nextPosition(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := r.col.InsertOne(ctx, leadDocument{Lead: lead, Position: pos}); err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	return &lead, nil
}

// UpdateByKey applies the non-nil patch fields with a single pipeline update.
func (r *LeadRepository) UpdateByKey(ctx context.Context, id string, patch domain.LeadPatch, updatedAt time.Time) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc leadDocument
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, patchUpdate(patch, updatedAt), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return &doc.Lead, nil
}

// DeleteByKey removes and returns the lead.
func (r *LeadRepository) DeleteByKey(ctx context.Context, id string) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc leadDocument
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("delete lead: %w", err)
	}
	return &doc.Lead, nil
}

// All returns every lead ordered by position.
func (r *LeadRepository) All(ctx context.Context) ([]domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := make([]domain.Lead, 0)
	for cur.Next(ctx) {
		var doc leadDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, doc.Lead)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return leads, nil
}

// Seed loads leads in the given order when the collection is empty and
// reports how many were inserted.
func (r *LeadRepository) Seed(ctx context.Context, leads []domain.Lead) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	if n > 0 || len(leads) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(leads))
	for i, l := range leads {
		docs = append(docs, leadDocument{Lead: l, Position: int64(i)})
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("seed leads: %w", err)
	}
	return len(docs), nil
}

// EnsureIndexes creates the ordering index on the leads collection.
func (r *LeadRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// nextPosition atomically decrements the shared position counter.
func (r *LeadRepository) nextPosition(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": positionCounterID},
		bson.M{"$inc": bson.M{"value": -1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next lead position: %w", err)
	}
	return counter.Value, nil
}

// patchUpdate builds an update pipeline setting the supplied patch fields.
// Values are wrapped in $literal so strings starting with "$" are not read
// as field paths. updated_at never moves before created_at.
func patchUpdate(p domain.LeadPatch, updatedAt time.Time) mongo.Pipeline {
	set := bson.D{}
	literal := func(key string, v any) {
		set = append(set, bson.E{Key: key, Value: bson.M{"$literal": v}})
	}

	if p.FirstName != nil {
		literal("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		literal("last_name", *p.LastName)
	}
	if p.Email != nil {
		literal("email", *p.Email)
	}
	if p.Phone != nil {
		literal("phone", *p.Phone)
	}
	if p.Company != nil {
		literal("company", *p.Company)
	}
	if p.City != nil {
		literal("city", *p.City)
	}
	if p.State != nil {
		literal("state", *p.State)
	}
	if p.Source != nil {
		literal("source", *p.Source)
	}
	if p.Status != nil {
		literal("status", *p.Status)
	}
	if p.Score != nil {
		literal("score", *p.Score)
	}
	if p.Value != nil {
		literal("lead_value", *p.Value)
	}
	if p.IsQualified != nil {
		literal("is_qualified", *p.IsQualified)
	}
	set = append(set, bson.E{Key: "updated_at", Value: bson.M{"$max": bson.A{updatedAt, "$created_at"}}})

	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}
