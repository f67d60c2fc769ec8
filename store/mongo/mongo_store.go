// Package mongo implements the Record Store on MongoDB collections. Each
// submission is a per-record durable insert; reads query the collections on
// demand with a timestamp-descending sort.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/Zharokiecoder/GITEX2/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	registrationsCollection = "registrations"
	feedbacksCollection     = "feedbacks"

	connectTimeout = 10 * time.Second
)

// Store is the MongoDB collection backend.
type Store struct {
	client *driver.Client
	db     *driver.Database
}

var _ store.Store = (*Store)(nil)

// Connect establishes the client connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Registrations() store.RegistrationStore {
	return &registrationStore{coll: s.db.Collection(registrationsCollection)}
}

func (s *Store) Feedbacks() store.FeedbackStore {
	return &feedbackStore{coll: s.db.Collection(feedbacksCollection)}
}

func (s *Store) Backend() string { return "mongo" }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// registrationDoc is the persisted shape of a registration. The normalized
// email is stored alongside the original so duplicate checks are a plain
// equality filter.
type registrationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Email           string             `bson:"email"`
	EmailNormalized string             `bson:"emailNormalized"`
	Phone           string             `bson:"phone"`
	Location        string             `bson:"location"`
	Gender          string             `bson:"gender"`
	Channel         string             `bson:"channel"`
	Interests       []string           `bson:"interests"`
	OtherInterest   string             `bson:"otherInterest,omitempty"`
	Consent         bool               `bson:"consent"`
	Timestamp       time.Time          `bson:"timestamp"`
}

func (d *registrationDoc) toType() *types.Registration {
	return &types.Registration{
		ID:            d.ID.Hex(),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Phone:         d.Phone,
		Location:      d.Location,
		Gender:        d.Gender,
		Channel:       d.Channel,
		Interests:     append([]string(nil), d.Interests...),
		OtherInterest: d.OtherInterest,
		Consent:       d.Consent,
		Timestamp:     d.Timestamp,
	}
}

type registrationStore struct {
	coll *driver.Collection
}

func (r *registrationStore) Create(ctx context.Context, reg *types.Registration) (string, error) {
	doc := &registrationDoc{
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		Email:           reg.Email,
		EmailNormalized: validation.NormalizeEmail(reg.Email),
		Phone:           reg.Phone,
		Location:        reg.Location,
		Gender:          reg.Gender,
		Channel:         reg.Channel,
		Interests:       reg.Interests,
		OtherInterest:   reg.OtherInterest,
		Consent:         reg.Consent,
		Timestamp:       time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert registration: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	reg.ID = oid.Hex()
	reg.Timestamp = doc.Timestamp
	return reg.ID, nil
}

func (r *registrationStore) List(ctx context.Context) ([]*types.Registration, error) {
	return r.find(ctx, bson.D{})
}

func (r *registrationStore) FindByEmail(ctx context.Context, normalizedEmail string) ([]*types.Registration, error) {
	return r.find(ctx, bson.D{{Key: "emailNormalized", Value: normalizedEmail}})
}

func (r *registrationStore) find(ctx context.Context, filter bson.D) ([]*types.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer cur.Close(ctx)

	var out []*types.Registration
	for cur.Next(ctx) {
		var doc registrationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode registration: %w", err)
		}
		out = append(out, doc.toType())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("registration cursor failed: %w", err)
	}
	return out, nil
}

func (r *registrationStore) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return int(n), nil
}

type feedbackDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Feedback1 string             `bson:"feedback1,omitempty"`
	Feedback2 string             `bson:"feedback2,omitempty"`
	Rating    *int               `bson:"rating,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}

type feedbackStore struct {
	coll *driver.Collection
}

func (f *feedbackStore) Create(ctx context.Context, fb *types.Feedback) (string, error) {
	doc := &feedbackDoc{
		Feedback1: fb.Feedback1,
		Feedback2: fb.Feedback2,
		Rating:    fb.Rating,
		Timestamp: time.Now().UTC(),
	}

	res, err := f.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert feedback: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	fb.ID = oid.Hex()
	fb.Timestamp = doc.Timestamp
	return fb.ID, nil
}

func (f *feedbackStore) List(ctx context.Context) ([]*types.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := f.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedbacks: %w", err)
	}
	defer cur.Close(ctx)

	var out []*types.Feedback
	for cur.Next(ctx) {
		var doc feedbackDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		out = append(out, &types.Feedback{
			ID:        doc.ID.Hex(),
			Feedback1: doc.Feedback1,
			Feedback2: doc.Feedback2,
			Rating:    doc.Rating,
			Timestamp: doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("feedback cursor failed: %w", err)
	}
	return out, nil
}

func (f *feedbackStore) Count(ctx context.Context) (int, error) {
	n, err := f.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}
	return int(n), nil
}
