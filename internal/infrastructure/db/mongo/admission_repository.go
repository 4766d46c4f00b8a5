package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

const admissionCollection = "admission"

type AdmissionRepository struct {
	coll *mongo.Collection
}

func NewAdmissionRepository(db *mongo.Database) *AdmissionRepository {
	return &AdmissionRepository{coll: db.Collection(admissionCollection)}
}

type mongoAdmission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	InstrumentID   string             `bson:"instrument_id"`
	InstrumentName string             `bson:"instrument_name"`
	InstructorName string             `bson:"instructor_name,omitempty"`
	Price          float64            `bson:"price"`
	Date           int64              `bson:"date"`
}

func (ma mongoAdmission) toDomain() *domain.Admission {
	return &domain.Admission{
		ID:             ma.ID.Hex(),
		Email:          ma.Email,
		InstrumentID:   ma.InstrumentID,
		InstrumentName: ma.InstrumentName,
		InstructorName: ma.InstructorName,
		Price:          ma.Price,
		Date:           unixToTime(ma.Date),
	}
}

func (r *AdmissionRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	defer cursor.Close(ctx)

	admissions := make([]*domain.Admission, 0)
	for cursor.Next(ctx) {
		var ma mongoAdmission
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode admission: %w", err)
		}
		admissions = append(admissions, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	return admissions, nil
}

func (r *AdmissionRepository) Insert(ctx context.Context, a *domain.Admission) (*domain.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAdmission{
		Email:          a.Email,
		InstrumentID:   a.InstrumentID,
		InstrumentName: a.InstrumentName,
		InstructorName: a.InstructorName,
		Price:          a.Price,
		Date:           a.Date.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert admission: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AdmissionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete admission: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdmissionNotFound
	}
	return nil
}
