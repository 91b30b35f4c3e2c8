package superadmin

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuperAdmin is the single top-level principal of a temple. It bypasses
// all permission checks; its token carries no action list.
type SuperAdmin struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID       primitive.ObjectID `json:"templeId" bson:"temple_id"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	PhoneNumber    string             `json:"phoneNumber,omitempty" bson:"phone_number,omitempty"`
	IsAdmin        bool               `json:"isAdmin" bson:"is_admin"`
	ProfilePicture string             `json:"profilePicture" bson:"profile_picture"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DefaultProfilePicture is used when registration supplies no picture.
const DefaultProfilePicture = "https://www.clipartmax.com/png/middle/82-820644_author-image-admin-icon.png"

type CreateSuperAdminRequest struct {
	TempleID    string `json:"templeId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditSuperAdminRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
