package employee

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status marks whether an employee is currently employed.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

func (s Status) String() string {
	if s == StatusActive {
		return "Active"
	}
	return "Inactive"
}

// Employee is one record of the employees collection.
type Employee struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID string        `bson:"employeeid" json:"employeeid"`
	FirstName  string        `bson:"firstname" json:"firstname"`
	Email      string        `bson:"email" json:"email"`
	Position   string        `bson:"position" json:"position"`
	Department string        `bson:"department" json:"department"`
	HireDate   time.Time     `bson:"hireDate" json:"hireDate"`
	Salary     float64       `bson:"salary" json:"salary"`
	Status     Status        `bson:"status" json:"status"`
}

// Changes lists the fields of a partial update. Nil fields are left untouched.
type Changes struct {
	FirstName  *string
	Email      *string
	Position   *string
	Department *string
	HireDate   *time.Time
	Salary     *float64
	Status     *Status
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.FirstName == nil && c.Email == nil && c.Position == nil &&
		c.Department == nil && c.HireDate == nil && c.Salary == nil && c.Status == nil
}

// Amount is a salary as clients send it: a JSON number or a numeric string.
// Anything else is kept verbatim so validation can report it.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(b)
	}
	return nil
}

// Float parses the amount.
func (a Amount) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
}
