package temple

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deity is a god or goddess enshrined in the temple.
type Deity struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image" bson:"image"`
}

// Festival is a recurring celebration hosted by the temple.
type Festival struct {
	FestivalName       string   `json:"festivalName" bson:"festival_name"`
	FestivalImportance string   `json:"festivalImportance,omitempty" bson:"festival_importance,omitempty"`
	FestivalImages     []string `json:"festivalImages,omitempty" bson:"festival_images,omitempty"`
}

// Pujari is a member of the temple clergy.
type Pujari struct {
	Name           string `json:"name" bson:"name"`
	Profile        string `json:"profile,omitempty" bson:"profile,omitempty"`
	Experience     int    `json:"experience" bson:"experience"`
	Designation    string `json:"designation,omitempty" bson:"designation,omitempty"`
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	ContactInfo    string `json:"contactInfo,omitempty" bson:"contact_info,omitempty"`
}

// ManagementMember is part of the temple's administrative staff.
type ManagementMember struct {
	Name    string `json:"name" bson:"name"`
	Role    string `json:"role" bson:"role"`
	Profile string `json:"profile,omitempty" bson:"profile,omitempty"`
}

// Temple is the tenant root. Every scoped entity references one temple.
type Temple struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	AlternateName    string             `json:"alternateName,omitempty" bson:"alternate_name,omitempty"`
	Location         string             `json:"location" bson:"location"`
	Image            string             `json:"image" bson:"image"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	FoundedYear      int                `json:"foundedYear,omitempty" bson:"founded_year,omitempty"`
	HistoryImages    []string           `json:"historyImages,omitempty" bson:"history_images,omitempty"`
	GodsAndGoddesses []Deity            `json:"godsAndGoddesses,omitempty" bson:"gods_and_goddesses,omitempty"`
	Festivals        []Festival         `json:"festivals,omitempty" bson:"festivals,omitempty"`
	Pujaris          []Pujari           `json:"pujaris,omitempty" bson:"pujaris,omitempty"`
	Management       []ManagementMember `json:"management,omitempty" bson:"management,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DefaultImage is used when onboarding supplies no temple image.
const DefaultImage = "https://png.pngtree.com/png-vector/20230207/ourmid/pngtree-om-logo-design-with-flower-mandala-png-image_6590267.png"

type CreateTempleRequest struct {
	Name          string `json:"name"`
	AlternateName string `json:"alternateName,omitempty"`
	Location      string `json:"location"`
	Image         string `json:"image,omitempty"`
	Description   string `json:"description,omitempty"`
	FoundedYear   int    `json:"foundedYear,omitempty"`
}

type UpdateTempleRequest struct {
	Name             string             `json:"name,omitempty"`
	AlternateName    string             `json:"alternateName,omitempty"`
	Location         string             `json:"location,omitempty"`
	Image            string             `json:"image,omitempty"`
	Description      string             `json:"description,omitempty"`
	FoundedYear      int                `json:"foundedYear,omitempty"`
	HistoryImages    []string           `json:"historyImages,omitempty"`
	GodsAndGoddesses []Deity            `json:"godsAndGoddesses,omitempty"`
	Festivals        []Festival         `json:"festivals,omitempty"`
	Pujaris          []Pujari           `json:"pujaris,omitempty"`
	Management       []ManagementMember `json:"management,omitempty"`
}
