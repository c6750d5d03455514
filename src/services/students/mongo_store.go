package students

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"SSAAM-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

// MongoStore keeps students in a MongoDB collection with a unique index on
// student_id.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

// BuildSearchFilter turns the search form into a query document. The search
// text is matched as a literal, case-insensitive substring.
func BuildSearchFilter(search, program, yearLevel string) bson.M {
	filter := bson.M{}

	if s := strings.TrimSpace(search); s != "" {
		regex := bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"student_id": regex},
			bson.M{"first_name": regex},
			bson.M{"last_name": regex},
			bson.M{"email": regex},
			bson.M{"rfid_code": regex},
		}
	}
	if program != "" {
		filter["program"] = program
	}
	if yearLevel != "" {
		filter["year_level"] = yearLevel
	}
	return filter
}

func (s *MongoStore) FindPaginated(ctx context.Context, f Filter, skip, limit int64) ([]models.Student, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := BuildSearchFilter(f.Search, f.Program, f.YearLevel)

	findOptions := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_date", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("find students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, 0, fmt.Errorf("decode students: %w", err)
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

func (s *MongoStore) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) CountByProgramAndYear(ctx context.Context) ([]models.GroupCount, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"program": "$program", "year_level": "$year_level"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"program":    "$_id.program",
			"year_level": "$_id.year_level",
			"count":      1,
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate student counts: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []models.GroupCount
	for cursor.Next(ctx) {
		var g models.GroupCount
		// Documents with non-string program/year_level cannot decode; they
		// are not part of the grid anyway.
		if err := cursor.Decode(&g); err != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, cursor.Err()
}

func (s *MongoStore) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.col.InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateStudentID
	}
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByKey(ctx context.Context, studentID string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var student models.Student
	err := s.col.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find student %s: %w", studentID, err)
	}
	return &student, nil
}

func (s *MongoStore) UpdateByKey(ctx context.Context, studentID string, set map[string]string, rebuildFullName bool) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var update interface{}
	if rebuildFullName {
		// Pipeline form so full_name is built from the document as written,
		// not from a copy read earlier. Values are wrapped in $literal so a
		// leading "$" is never taken as a field path.
		fields := bson.M{}
		for k, v := range set {
			fields[k] = bson.M{"$literal": v}
		}
		update = mongo.Pipeline{
			{{Key: "$set", Value: fields}},
			{{Key: "$set", Value: bson.M{"full_name": fullNameExpr()}}},
		}
	} else {
		fields := bson.M{}
		for k, v := range set {
			fields[k] = v
		}
		update = bson.M{"$set": fields}
	}

	var updated models.Student
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"student_id": studentID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update student %s: %w", studentID, err)
	}
	return &updated, nil
}

// fullNameExpr is the aggregation form of FullName: the name parts joined
// by single spaces with empty pieces dropped.
func fullNameExpr() bson.M {
	part := func(field string) bson.M {
		return bson.M{"$ifNull": bson.A{"$" + field, ""}}
	}
	joined := bson.M{"$concat": bson.A{
		part("first_name"), " ",
		part("middle_name"), " ",
		part("last_name"), " ",
		part("suffix"),
	}}
	words := bson.M{"$filter": bson.M{
		"input": bson.M{"$split": bson.A{joined, " "}},
		"as":    "word",
		"cond":  bson.M{"$ne": bson.A{"$$word", ""}},
	}}
	return bson.M{"$reduce": bson.M{
		"input":        words,
		"initialValue": "",
		"in": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$$value", ""}},
			"$$this",
			bson.M{"$concat": bson.A{"$$value", " ", "$$this"}},
		}},
	}}
}

func (s *MongoStore) DeleteByKey(ctx context.Context, studentID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return fmt.Errorf("delete student %s: %w", studentID, err)
	}
	if res.DeletedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (s *MongoStore) FindOneMatching(ctx context.Context, studentID, lastName string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"student_id": studentID,
		"last_name":  bson.M{"$regex": "^" + regexp.QuoteMeta(lastName) + "$", "$options": "i"},
	}

	var student models.Student
	err := s.col.FindOne(ctx, filter).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find student login %s: %w", studentID, err)
	}
	return &student, nil
}
