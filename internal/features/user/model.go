package user

import (
	"time"

	"go-temple/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a secondary principal scoped to one temple, gated by its roles.
type User struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	TempleID       primitive.ObjectID   `json:"templeId" bson:"temple_id"`
	Username       string               `json:"username" bson:"username"`
	Email          string               `json:"email" bson:"email"`
	Password       string               `json:"-" bson:"password"`
	PhoneNumber    string               `json:"phoneNumber,omitempty" bson:"phone_number,omitempty"`
	ProfilePicture string               `json:"profilePicture" bson:"profile_picture"`
	RoleIDs        []primitive.ObjectID `json:"roleIds" bson:"roles"`
	CreatedAt      time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updated_at"`
}

// View is a user with roles and their permissions resolved.
type View struct {
	ID             primitive.ObjectID `json:"id"`
	TempleID       primitive.ObjectID `json:"templeId"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	PhoneNumber    string             `json:"phoneNumber,omitempty"`
	ProfilePicture string             `json:"profilePicture"`
	Roles          []role.View        `json:"roles"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// DefaultProfilePicture is used when creation supplies no picture.
const DefaultProfilePicture = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSXNChij9NGxfXhZQeEwg0TG9WAK6vm4vVm-e0EncJcCQ&s"

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Roles       []string `json:"roles"`
}

type EditUserRequest struct {
	Username       string   `json:"username,omitempty"`
	Email          string   `json:"email,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Password       string   `json:"password,omitempty"`
	Roles          []string `json:"roles,omitempty"`
}
