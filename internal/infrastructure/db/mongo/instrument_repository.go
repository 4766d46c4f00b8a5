package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

const instrumentsCollection = "instruments"

type InstrumentRepository struct {
	coll *mongo.Collection
}

func NewInstrumentRepository(db *mongo.Database) *InstrumentRepository {
	return &InstrumentRepository{coll: db.Collection(instrumentsCollection)}
}

type mongoInstrument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Image            string             `bson:"image,omitempty"`
	InstructorName   string             `bson:"instructor_name"`
	InstructorEmail  string             `bson:"instructor_email"`
	Price            float64            `bson:"price"`
	AvailableSeats   int                `bson:"available_seats"`
	EnrolledStudents int                `bson:"enrolled_students"`
	Status           string             `bson:"status,omitempty"`
	Feedback         string             `bson:"feedback,omitempty"`
	CreatedAt        int64              `bson:"created_at"`
}

func (mi mongoInstrument) toDomain() *domain.Instrument {
	return &domain.Instrument{
		ID:               mi.ID.Hex(),
		Name:             mi.Name,
		Image:            mi.Image,
		InstructorName:   mi.InstructorName,
		InstructorEmail:  mi.InstructorEmail,
		Price:            mi.Price,
		AvailableSeats:   mi.AvailableSeats,
		EnrolledStudents: mi.EnrolledStudents,
		Status:           domain.InstrumentStatus(mi.Status),
		Feedback:         mi.Feedback,
		CreatedAt:        unixToTime(mi.CreatedAt),
	}
}

func (r *InstrumentRepository) FindAll(ctx context.Context) ([]*domain.Instrument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list instruments: %w", err)
	}
	defer cursor.Close(ctx)

	instruments := make([]*domain.Instrument, 0)
	for cursor.Next(ctx) {
		var mi mongoInstrument
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode instrument: %w", err)
		}
		instruments = append(instruments, mi.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list instruments: %w", err)
	}
	return instruments, nil
}

func (r *InstrumentRepository) Insert(ctx context.Context, ins *domain.Instrument) (*domain.Instrument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoInstrument{
		Name:             ins.Name,
		Image:            ins.Image,
		InstructorName:   ins.InstructorName,
		InstructorEmail:  ins.InstructorEmail,
		Price:            ins.Price,
		AvailableSeats:   ins.AvailableSeats,
		EnrolledStudents: ins.EnrolledStudents,
		Status:           string(ins.Status),
		Feedback:         ins.Feedback,
		CreatedAt:        ins.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert instrument: %w", err)
	}

	created := *ins
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// UpsertReview writes the admin verdict and feedback, creating the
// document when the id does not match an existing one.
func (r *InstrumentRepository) UpsertReview(ctx context.Context, id string, status domain.InstrumentStatus, feedback string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInstrumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status), "feedback": feedback}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("review instrument: %w", err)
	}
	return nil
}

func (r *InstrumentRepository) UpdateStatus(ctx context.Context, id string, status domain.InstrumentStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInstrumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("update instrument status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInstrumentNotFound
	}
	return nil
}
