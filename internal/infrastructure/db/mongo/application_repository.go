package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webdawg/futures-api/internal/core/domain"
)

const applicationsCollection = "applications"

// ApplicationRepository persists per-user application sets. Every filter
// includes user_id, so one user's applications are invisible, and
// unmodifiable, to another.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID          primitive.ObjectID       `bson:"_id,omitempty"`
	UserID      string                   `bson:"user_id"`
	JobID       string                   `bson:"job_id"`
	Job         domain.Job               `bson:"job"`
	Status      domain.ApplicationStatus `bson:"status"`
	AppliedDate string                   `bson:"applied_date"`
	Notes       string                   `bson:"notes,omitempty"`
}

func (ma mongoApplication) toDomain() domain.Application {
	return domain.Application{
		ID:          ma.ID.Hex(),
		UserID:      ma.UserID,
		JobID:       ma.JobID,
		Job:         ma.Job,
		Status:      ma.Status,
		AppliedDate: ma.AppliedDate,
		Notes:       ma.Notes,
	}
}

// ListByUser returns the user's applications in insertion order.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]domain.Application, 0)
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Insert stores a new application. The unique (user_id, job_id) index backs
// the one-application-per-job rule; a duplicate insert maps to
// domain.ErrAlreadyApplied.
func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoApplication{
		UserID:      app.UserID,
		JobID:       app.JobID,
		Job:         app.Job,
		Status:      app.Status,
		AppliedDate: app.AppliedDate,
		Notes:       app.Notes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// UpdateStatus relabels the application and returns the updated document.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, userID, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	return r.update(ctx, userID, appID, bson.M{"$set": bson.M{"status": status}})
}

// UpdateNotes replaces notes verbatim. An empty string unsets the field so
// "no notes" and "empty notes" stay indistinguishable, as they are to users.
func (r *ApplicationRepository) UpdateNotes(ctx context.Context, userID, appID, notes string) (*domain.Application, error) {
	if notes == "" {
		return r.update(ctx, userID, appID, bson.M{"$unset": bson.M{"notes": ""}})
	}
	return r.update(ctx, userID, appID, bson.M{"$set": bson.M{"notes": notes}})
}

func (r *ApplicationRepository) update(ctx context.Context, userID, appID string, mutation bson.M) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(userID, appID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoApplication
	if err := r.coll.FindOneAndUpdate(ctx, filter, mutation, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}

	app := ma.toDomain()
	return &app, nil
}

// Delete removes the application. Deleting an id that is absent, including
// one already deleted, is domain.ErrApplicationNotFound.
func (r *ApplicationRepository) Delete(ctx context.Context, userID, appID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(userID, appID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the store's invariants rely on.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "job_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// ownedFilter scopes a lookup to one user's document. A malformed id cannot
// match anything, so it reports not-found rather than a driver error.
func ownedFilter(userID, appID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(appID)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}
