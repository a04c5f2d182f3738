package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
)

const (
	cropsCollection     = "crops"
	schemesCollection   = "schemes"
	alertsCollection    = "alerts"
	usersCollection     = "users"
	summariesCollection = "daily_summaries"
)

// Repository is the MongoDB implementation of the docstore interfaces.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// cropDoc mirrors models.Crop with the store-native ObjectID identity. The
// hex form of the id is what the rest of the system sees.
type cropDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Notes         string             `bson:"notes"`
	Season        string             `bson:"season"`
	Area          string             `bson:"area"`
	Variety       string             `bson:"variety"`
	SowingDate    string             `bson:"sowingDate"`
	HarvestDate   string             `bson:"harvestDate"`
	Fertilizer    string             `bson:"fertilizer"`
	Pesticide     string             `bson:"pesticide"`
	ExpectedYield string             `bson:"expectedYield"`
	MarketPrice   string             `bson:"marketPrice"`
	Expenses      []models.Expense   `bson:"expenses"`
	Income        float64            `bson:"income"`
}

func (d cropDoc) toModel() models.Crop {
	return models.Crop{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Notes:         d.Notes,
		Season:        d.Season,
		Area:          d.Area,
		Variety:       d.Variety,
		SowingDate:    d.SowingDate,
		HarvestDate:   d.HarvestDate,
		Fertilizer:    d.Fertilizer,
		Pesticide:     d.Pesticide,
		ExpectedYield: d.ExpectedYield,
		MarketPrice:   d.MarketPrice,
		Expenses:      d.Expenses,
		Income:        d.Income,
	}
}

// Snapshots opens a change stream on the crops collection and pushes a fresh
// full snapshot after every change. The initial snapshot is delivered before
// this returns. A stale pending snapshot is dropped in favor of the newest,
// so consumers always replace their state with the latest truth.
func (r *Repository) Snapshots(ctx context.Context) (<-chan []models.Crop, error) {
	stream, err := r.db.Collection(cropsCollection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("failed to watch crops collection: %w", err)
	}

	initial, err := r.listCrops(ctx)
	if err != nil {
		_ = stream.Close(ctx)
		return nil, err
	}

	out := make(chan []models.Crop, 1)
	out <- initial

	go func() {
		defer close(out)
		defer func() {
			_ = stream.Close(context.Background())
		}()

		for stream.Next(ctx) {
			crops, err := r.listCrops(ctx)
			if err != nil {
				r.logger.Error("failed to refresh crop snapshot", zap.Error(err))
				continue
			}

			select {
			case <-out:
			default:
			}
			out <- crops
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			r.logger.Error("crop change stream terminated", zap.Error(err))
		}
	}()

	return out, nil
}

func (r *Repository) listCrops(ctx context.Context) ([]models.Crop, error) {
	cursor, err := r.db.Collection(cropsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []cropDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode crops: %w", err)
	}

	crops := make([]models.Crop, 0, len(docs))
	for _, d := range docs {
		crops = append(crops, d.toModel())
	}
	return crops, nil
}

// CreateCrop inserts a new crop document and returns the assigned id.
func (r *Repository) CreateCrop(ctx context.Context, crop models.Crop) (string, error) {
	doc := cropDoc{
		Name:          crop.Name,
		Notes:         crop.Notes,
		Season:        crop.Season,
		Area:          crop.Area,
		Variety:       crop.Variety,
		SowingDate:    crop.SowingDate,
		HarvestDate:   crop.HarvestDate,
		Fertilizer:    crop.Fertilizer,
		Pesticide:     crop.Pesticide,
		ExpectedYield: crop.ExpectedYield,
		MarketPrice:   crop.MarketPrice,
		Expenses:      crop.Expenses,
		Income:        crop.Income,
	}
	if doc.Expenses == nil {
		doc.Expenses = []models.Expense{}
	}

	result, err := r.db.Collection(cropsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert crop: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// UpdateCropLedger rewrites the full expense sequence and the income scalar
// in a single update. A document that vanished between read and write is
// logged and ignored; the next snapshot carries the truth.
func (r *Repository) UpdateCropLedger(ctx context.Context, id string, expenses []models.Expense, income float64) error {
	return r.updateCrop(ctx, id, bson.M{"expenses": expenses, "income": income})
}

// UpdateCropExpenses rewrites only the expense sequence.
func (r *Repository) UpdateCropExpenses(ctx context.Context, id string, expenses []models.Expense) error {
	return r.updateCrop(ctx, id, bson.M{"expenses": expenses})
}

func (r *Repository) updateCrop(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid crop id %q: %w", id, err)
	}

	result, err := r.db.Collection(cropsCollection).UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update crop %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		r.logger.Debug("crop update matched no document", zap.String("crop_id", id))
	}
	return nil
}

// DeleteCrop removes the crop document. Deleting a missing id is not an
// error.
func (r *Repository) DeleteCrop(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid crop id %q: %w", id, err)
	}

	if _, err := r.db.Collection(cropsCollection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete crop %s: %w", id, err)
	}
	return nil
}

// ListSchemes fetches every government scheme document.
func (r *Repository) ListSchemes(ctx context.Context) ([]models.Scheme, error) {
	cursor, err := r.db.Collection(schemesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	defer cursor.Close(ctx)

	var schemes []models.Scheme
	if err := cursor.All(ctx, &schemes); err != nil {
		return nil, fmt.Errorf("failed to decode schemes: %w", err)
	}
	return schemes, nil
}

// ListAlerts fetches every weather alert document.
func (r *Repository) ListAlerts(ctx context.Context) ([]models.WeatherAlert, error) {
	cursor, err := r.db.Collection(alertsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var alerts []models.WeatherAlert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}
	return alerts, nil
}

// GetProfile loads a farmer profile by the auth provider's uid.
func (r *Repository) GetProfile(ctx context.Context, uid string) (models.Profile, error) {
	var profile models.Profile
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Profile{}, docstore.ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("failed to get profile %s: %w", uid, err)
	}
	return profile, nil
}

// UpsertProfile creates or replaces the profile document for a uid.
func (r *Repository) UpsertProfile(ctx context.Context, profile models.Profile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.db.Collection(usersCollection).ReplaceOne(ctx, bson.M{"_id": profile.UID}, profile, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.UID, err)
	}
	return nil
}

// SaveDailySummary stores one scheduled ledger summary document.
func (r *Repository) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	if _, err := r.db.Collection(summariesCollection).InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("failed to insert daily summary: %w", err)
	}
	return nil
}
