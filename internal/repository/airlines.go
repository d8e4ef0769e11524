package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAirlineNotFound is returned when no airline matches the given id.
var ErrAirlineNotFound = errors.New("airline not found")

// AllowanceDocument stores one allowance. A limit is either a 3-array or a total.
type AllowanceDocument struct {
	Centimeters      []float64 `bson:"cm,omitempty"`
	CentimetersTotal *float64  `bson:"cm_total,omitempty"`
	Inches           []float64 `bson:"in,omitempty"`
	InchesTotal      *float64  `bson:"in_total,omitempty"`
	Kilograms        *float64  `bson:"kg,omitempty"`
	Pounds           *float64  `bson:"lb,omitempty"`
}

// AirlineDocument represents an airline allowance document in MongoDB.
type AirlineDocument struct {
	ID           string             `bson:"_id"`
	Name         string             `bson:"name"`
	Region       string             `bson:"region"`
	Link         string             `bson:"link,omitempty"`
	CarryOn      AllowanceDocument  `bson:"carry_on"`
	PersonalItem *AllowanceDocument `bson:"personal_item,omitempty"`
	Version      int                `bson:"version"`
	UpdatedAt    time.Time          `bson:"updated_at"`
	UpdatedBy    string             `bson:"updated_by,omitempty"`
}

// AirlineFilter narrows a List call. Zero values match everything.
type AirlineFilter struct {
	// Region is matched case-insensitively.
	Region string
	IDs    []string
}

// AirlinesRepository provides methods for airline allowance operations.
type AirlinesRepository struct {
	collection *mongo.Collection
}

// NewAirlinesRepository creates a new airlines repository.
func NewAirlinesRepository(db *MongoDB) *AirlinesRepository {
	return &AirlinesRepository{
		collection: db.Airlines,
	}
}

// List returns airlines matching the filter, sorted by id.
func (r *AirlinesRepository) List(ctx context.Context, filter AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	query := bson.M{}
	if filter.Region != "" {
		query["region"] = bson.M{"$regex": "^" + regexp.QuoteMeta(filter.Region) + "$", "$options": "i"}
	}
	if len(filter.IDs) > 0 {
		query["_id"] = bson.M{"$in": filter.IDs}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []AirlineDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]model.AirlineAllowanceEntry, 0, len(docs))
	for i := range docs {
		entry, err := docs[i].ToModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Get returns a single airline.
func (r *AirlinesRepository) Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error) {
	var doc AirlineDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAirlineNotFound
	}
	if err != nil {
		return nil, err
	}
	entry, err := doc.ToModel()
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert inserts or replaces an airline and bumps its version.
func (r *AirlinesRepository) Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*AirlineDocument, error) {
	doc := NewAirlineDocument(entry)

	update := bson.M{
		"$set": bson.M{
			"name":          doc.Name,
			"region":        doc.Region,
			"link":          doc.Link,
			"carry_on":      doc.CarryOn,
			"personal_item": doc.PersonalItem,
			"updated_at":    time.Now().UTC(),
			"updated_by":    updatedBy,
		},
		"$inc": bson.M{"version": 1},
	}

	var saved AirlineDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": doc.ID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes an airline.
func (r *AirlinesRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrAirlineNotFound
	}
	return nil
}

// Count returns the number of stored airlines.
func (r *AirlinesRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// SeedIfEmpty inserts entries when the collection has no documents.
// It returns the number of inserted documents.
func (r *AirlinesRepository) SeedIfEmpty(ctx context.Context, entries []model.AirlineAllowanceEntry, seededBy string) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || len(entries) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(entries))
	for i, e := range entries {
		doc := NewAirlineDocument(e)
		doc.Version = 1
		doc.UpdatedAt = now
		doc.UpdatedBy = seededBy
		docs[i] = doc
	}

	res, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		// Another replica may have seeded concurrently.
		if mongo.IsDuplicateKeyError(err) && res != nil {
			return len(res.InsertedIDs), nil
		}
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// NewAirlineDocument converts a domain entry to its storage form.
func NewAirlineDocument(e model.AirlineAllowanceEntry) AirlineDocument {
	doc := AirlineDocument{
		ID:      e.ID,
		Name:    e.Name,
		Region:  e.Region,
		Link:    e.Link,
		CarryOn: newAllowanceDocument(e.CarryOn),
	}
	if e.PersonalItem != nil {
		personal := newAllowanceDocument(*e.PersonalItem)
		doc.PersonalItem = &personal
	}
	return doc
}

func newAllowanceDocument(a model.Allowance) AllowanceDocument {
	doc := AllowanceDocument{Kilograms: a.Kilograms, Pounds: a.Pounds}
	doc.Centimeters, doc.CentimetersTotal = splitLimit(a.Centimeters)
	doc.Inches, doc.InchesTotal = splitLimit(a.Inches)
	return doc
}

func splitLimit(v *model.DimensionValue) ([]float64, *float64) {
	if v == nil {
		return nil, nil
	}
	if total, ok := v.TotalSize(); ok {
		return nil, &total
	}
	axes, _ := v.Axes()
	values := axes.Values()
	return values[:], nil
}

// ToModel converts the stored document back to a domain entry.
func (d AirlineDocument) ToModel() (model.AirlineAllowanceEntry, error) {
	carryOn, err := d.CarryOn.toModel()
	if err != nil {
		return model.AirlineAllowanceEntry{}, fmt.Errorf("airline %s carry_on: %w", d.ID, err)
	}
	entry := model.AirlineAllowanceEntry{
		ID:      d.ID,
		Name:    d.Name,
		Region:  d.Region,
		Link:    d.Link,
		CarryOn: carryOn,
	}
	if d.PersonalItem != nil {
		personal, err := d.PersonalItem.toModel()
		if err != nil {
			return model.AirlineAllowanceEntry{}, fmt.Errorf("airline %s personal_item: %w", d.ID, err)
		}
		entry.PersonalItem = &personal
	}
	return entry, nil
}

func (a AllowanceDocument) toModel() (model.Allowance, error) {
	cm, err := joinLimit(a.Centimeters, a.CentimetersTotal)
	if err != nil {
		return model.Allowance{}, err
	}
	in, err := joinLimit(a.Inches, a.InchesTotal)
	if err != nil {
		return model.Allowance{}, err
	}
	return model.Allowance{Centimeters: cm, Inches: in, Kilograms: a.Kilograms, Pounds: a.Pounds}, nil
}

func joinLimit(axes []float64, total *float64) (*model.DimensionValue, error) {
	switch {
	case total != nil:
		v := model.Total(*total)
		return &v, nil
	case len(axes) > 0:
		sorted, err := model.DescDimensionsOf(axes)
		if err != nil {
			return nil, err
		}
		v := model.PerAxis(sorted)
		return &v, nil
	default:
		return nil, nil
	}
}
