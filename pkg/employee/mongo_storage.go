package employee

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Sagar00752/hrms/pkg/mongo"
)

// Collection is the collection employees are stored in.
const Collection = "employees"

const (
	employeeIDIndex = "employeeid_unique"
	emailIndex      = "email_unique"
)

// MongoStorage implements Storage on the employees collection.
type MongoStorage struct {
	coll *driver.Collection
}

// NewMongoStorage returns a Storage backed by db and ensures the unique
// employeeid and email indexes.
func NewMongoStorage(ctx context.Context, db *driver.Database) (*MongoStorage, error) {
	coll := db.Collection(Collection)

	err := mongo.EnsureIndexes(ctx, coll,
		driver.IndexModel{
			Keys:    bson.D{{Key: "employeeid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(employeeIDIndex),
		},
		driver.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndex),
		},
	)
	if err != nil {
		return nil, err
	}

	return &MongoStorage{coll: coll}, nil
}

func (s *MongoStorage) Create(ctx context.Context, emp *Employee) error {
	if emp.ID.IsZero() {
		emp.ID = bson.NewObjectID()
	}

	if _, err := s.coll.InsertOne(ctx, emp); err != nil {
		return duplicateOr(err, "insert employee")
	}
	return nil
}

func (s *MongoStorage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{{Key: "email", Value: email}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count employees: %w", err)
	}
	return n > 0, nil
}

func (s *MongoStorage) Get(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	if err := s.coll.FindOne(ctx, byEmployeeID(employeeID)).Decode(&emp); err != nil {
		return nil, notFoundOr(err, "find employee")
	}
	return &emp, nil
}

func (s *MongoStorage) Update(ctx context.Context, employeeID string, changes Changes) (*Employee, error) {
	set := bson.D{}
	add := func(key string, v any) { set = append(set, bson.E{Key: key, Value: v}) }

	if changes.FirstName != nil {
		add("firstname", *changes.FirstName)
	}
	if changes.Email != nil {
		add("email", *changes.Email)
	}
	if changes.Position != nil {
		add("position", *changes.Position)
	}
	if changes.Department != nil {
		add("department", *changes.Department)
	}
	if changes.HireDate != nil {
		add("hireDate", *changes.HireDate)
	}
	if changes.Salary != nil {
		add("salary", *changes.Salary)
	}
	if changes.Status != nil {
		add("status", *changes.Status)
	}
	if len(set) == 0 {
		return s.Get(ctx, employeeID)
	}

	var emp Employee
	err := s.coll.FindOneAndUpdate(ctx,
		byEmployeeID(employeeID),
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&emp)
	if err != nil {
		if mongo.IsDuplicateKey(err) {
			return nil, duplicateOr(err, "update employee")
		}
		return nil, notFoundOr(err, "update employee")
	}
	return &emp, nil
}

func (s *MongoStorage) Delete(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	if err := s.coll.FindOneAndDelete(ctx, byEmployeeID(employeeID)).Decode(&emp); err != nil {
		return nil, notFoundOr(err, "delete employee")
	}
	return &emp, nil
}

// List returns every employee in insertion order.
func (s *MongoStorage) List(ctx context.Context) ([]Employee, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := []Employee{}
	if err := cur.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func byEmployeeID(id string) bson.D {
	return bson.D{{Key: "employeeid", Value: id}}
}

func notFoundOr(err error, op string) error {
	if mongo.IsNotFound(err) {
		return ErrEmployeeNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// duplicateOr maps a unique index violation to the sentinel of the index
// that rejected the write.
func duplicateOr(err error, op string) error {
	if !mongo.IsDuplicateKey(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if strings.Contains(err.Error(), employeeIDIndex) {
		return ErrEmployeeIDTaken
	}
	return ErrEmailTaken
}

var _ Storage = (*MongoStorage)(nil)
