package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

const instructorsCollection = "instructors"

type InstructorRepository struct {
	coll *mongo.Collection
}

func NewInstructorRepository(db *mongo.Database) *InstructorRepository {
	return &InstructorRepository{coll: db.Collection(instructorsCollection)}
}

type mongoInstructor struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Image        string             `bson:"image,omitempty"`
	StudentCount int                `bson:"student_count"`
	Instruments  []string           `bson:"instruments,omitempty"`
}

func (mi mongoInstructor) toDomain() *domain.Instructor {
	return &domain.Instructor{
		ID:           mi.ID.Hex(),
		Name:         mi.Name,
		Email:        mi.Email,
		Image:        mi.Image,
		StudentCount: mi.StudentCount,
		Instruments:  mi.Instruments,
	}
}

func (r *InstructorRepository) FindAll(ctx context.Context) ([]*domain.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer cursor.Close(ctx)

	instructors := make([]*domain.Instructor, 0)
	for cursor.Next(ctx) {
		var mi mongoInstructor
		if err := cursor.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode instructor: %w", err)
		}
		instructors = append(instructors, mi.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*domain.Instructor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInstructorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoInstructor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	return mi.toDomain(), nil
}
