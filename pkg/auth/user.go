package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Sagar00752/hrms/pkg/jwt"
)

// Role is the access level of an API user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Roles lists every accepted role.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

// User is a document of the users collection. Token and TokenExpires hold the
// single access token currently allowed for the user.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	Role         Role          `bson:"role"`
	CreatedAt    time.Time     `bson:"createdAt"`
	Token        string        `bson:"token,omitempty"`
	TokenExpires *time.Time    `bson:"tokenExpires,omitempty"`
}

// UserView is the public representation of a User.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// View strips credentials from u.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Claims is the payload of an access token.
type Claims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.StandardClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   Role
}
