package donation

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation records one seva offering made to a temple.
type Donation struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID       primitive.ObjectID `json:"templeId" bson:"temple_id"`
	DonorName      string             `json:"donorName" bson:"donor_name"`
	SevaName       string             `json:"sevaName" bson:"seva_name"`
	Country        string             `json:"country,omitempty" bson:"country,omitempty"`
	State          string             `json:"state,omitempty" bson:"state,omitempty"`
	District       string             `json:"district,omitempty" bson:"district,omitempty"`
	Tehsil         string             `json:"tehsil,omitempty" bson:"tehsil,omitempty"`
	Village        string             `json:"village,omitempty" bson:"village,omitempty"`
	ContactInfo    string             `json:"contactInfo,omitempty" bson:"contact_info,omitempty"`
	PaymentMethod  string             `json:"paymentMethod" bson:"payment_method"`
	DonationAmount float64            `json:"donationAmount" bson:"donation_amount"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// PaymentMethods is the closed vocabulary of payment methods.
var PaymentMethods = []string{"cash", "bank", "upi"}

func validPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

type CreateDonationRequest struct {
	DonorName      string  `json:"donorName"`
	SevaName       string  `json:"sevaName"`
	Country        string  `json:"country,omitempty"`
	State          string  `json:"state,omitempty"`
	District       string  `json:"district,omitempty"`
	Tehsil         string  `json:"tehsil,omitempty"`
	Village        string  `json:"village,omitempty"`
	ContactInfo    string  `json:"contactInfo,omitempty"`
	PaymentMethod  string  `json:"paymentMethod"`
	DonationAmount float64 `json:"donationAmount"`
}

func (r CreateDonationRequest) Validate() error {
	if r.DonorName == "" || r.SevaName == "" {
		return apperr.Validation("Donation fields cant be empty!")
	}
	if !validPaymentMethod(r.PaymentMethod) {
		return apperr.Validation("Invalid payment method.")
	}
	if r.DonationAmount <= 0 {
		return apperr.Validation("Donation amount must be positive.")
	}
	return nil
}

// UpdateDonationRequest carries a partial update; empty fields are left
// untouched, matching the original API's empty-field stripping.
type UpdateDonationRequest struct {
	DonorName      string  `json:"donorName,omitempty"`
	SevaName       string  `json:"sevaName,omitempty"`
	Country        string  `json:"country,omitempty"`
	State          string  `json:"state,omitempty"`
	District       string  `json:"district,omitempty"`
	Tehsil         string  `json:"tehsil,omitempty"`
	Village        string  `json:"village,omitempty"`
	ContactInfo    string  `json:"contactInfo,omitempty"`
	PaymentMethod  string  `json:"paymentMethod,omitempty"`
	DonationAmount float64 `json:"donationAmount,omitempty"`
}

// ListQuery holds the supported list filters.
type ListQuery struct {
	PaymentMethod string
	Tehsil        string
	SearchTerm    string
	StartIndex    int64
	SortAsc       bool
}

// ListResult is the list payload: the page plus the temple-wide totals.
type ListResult struct {
	Donations     []Donation `json:"donations"`
	Total         int64      `json:"total"`
	LastMonthDaan int64      `json:"lastMonthDonations"`
}
