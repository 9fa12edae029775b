package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTimezoneRepository implements TimezoneRepository on a MongoDB collection
type MongoTimezoneRepository struct {
	collection *mongo.Collection
}

// NewMongoTimezoneRepository creates a new MongoDB timezone repository
func NewMongoTimezoneRepository(db *mongo.Database) repository.TimezoneRepository {
	return &MongoTimezoneRepository{
		collection: db.Collection("timezones"),
	}
}

// SeedMongoTimezones creates the city index and upserts the catalog.
func SeedMongoTimezones(ctx context.Context, db *mongo.Database, catalog []entity.TimeZone) error {
	collection := db.Collection("timezones")

	cityIndex := mongo.IndexModel{
		Keys: bson.M{"city": 1},
	}
	if _, err := collection.Indexes().CreateOne(ctx, cityIndex); err != nil {
		return fmt.Errorf("failed to create city index: %w", err)
	}

	for _, tz := range catalog {
		_, err := collection.UpdateOne(
			ctx,
			bson.M{"_id": tz.ID},
			bson.M{"$setOnInsert": bson.M{
				"name":          tz.Name,
				"city":          tz.City,
				"offsetMinutes": tz.OffsetMinutes,
				"countryCode":   tz.CountryCode,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("failed to seed timezone %s: %w", tz.ID, err)
		}
	}
	return nil
}

// GetByID finds a timezone by its IANA identifier
func (r *MongoTimezoneRepository) GetByID(ctx context.Context, id string) (*entity.TimeZone, error) {
	var tz entity.TimeZone
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tz)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownTimezone, id)
		}
		return nil, err
	}
	return &tz, nil
}

// Search matches the query case-insensitively against city, name and zone id
func (r *MongoTimezoneRepository) Search(ctx context.Context, query string, limit int) ([]entity.TimeZone, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	filter := bson.M{}
	if q := strings.TrimSpace(query); q != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"city": pattern},
			bson.M{"name": pattern},
			bson.M{"_id": pattern},
			bson.M{"countryCode": strings.ToUpper(q)},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "city", Value: 1}}).SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// List returns the whole catalog ordered by offset then city
func (r *MongoTimezoneRepository) List(ctx context.Context) ([]entity.TimeZone, error) {
	opts := options.Find().SetSort(bson.D{{Key: "offsetMinutes", Value: 1}, {Key: "city", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoTimezoneRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]entity.TimeZone, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []entity.TimeZone
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.TimeZone{}
	}
	return out, nil
}
