package donation

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter(t *testing.T) {
	templeID := primitive.NewObjectID()

	tests := []struct {
		name  string
		query ListQuery
		want  bson.M
	}{
		{
			name:  "temple scope only",
			query: ListQuery{},
			want:  bson.M{"temple_id": templeID},
		},
		{
			name:  "payment method",
			query: ListQuery{PaymentMethod: "upi"},
			want:  bson.M{"temple_id": templeID, "payment_method": "upi"},
		},
		{
			name:  "tehsil",
			query: ListQuery{Tehsil: "Anand"},
			want:  bson.M{"temple_id": templeID, "tehsil": "Anand"},
		},
		{
			name:  "search term",
			query: ListQuery{SearchTerm: "ram"},
			want: bson.M{
				"temple_id": templeID,
				"$or": []bson.M{
					{"donor_name": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
					{"seva_name": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
					{"village": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
				},
			},
		},
		{
			name:  "regex metacharacters searched literally",
			query: ListQuery{SearchTerm: "(a+)+$"},
			want: bson.M{
				"temple_id": templeID,
				"$or": []bson.M{
					{"donor_name": bson.M{"$regex": primitive.Regex{Pattern: `\(a\+\)\+\$`, Options: "i"}}},
					{"seva_name": bson.M{"$regex": primitive.Regex{Pattern: `\(a\+\)\+\$`, Options: "i"}}},
					{"village": bson.M{"$regex": primitive.Regex{Pattern: `\(a\+\)\+\$`, Options: "i"}}},
				},
			},
		},
		{
			name:  "combined",
			query: ListQuery{PaymentMethod: "cash", Tehsil: "Anand", SearchTerm: "ram"},
			want: bson.M{
				"temple_id":      templeID,
				"payment_method": "cash",
				"tehsil":         "Anand",
				"$or": []bson.M{
					{"donor_name": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
					{"seva_name": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
					{"village": bson.M{"$regex": primitive.Regex{Pattern: "ram", Options: "i"}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildListFilter(templeID, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildListFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateDonationRequestValidate(t *testing.T) {
	valid := CreateDonationRequest{
		DonorName:      "Ramesh",
		SevaName:       "Annadanam",
		PaymentMethod:  "cash",
		DonationAmount: 501,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateDonationRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateDonationRequest) {}, wantErr: false},
		{name: "missing donor", mutate: func(r *CreateDonationRequest) { r.DonorName = "" }, wantErr: true},
		{name: "missing seva", mutate: func(r *CreateDonationRequest) { r.SevaName = "" }, wantErr: true},
		{name: "bad payment method", mutate: func(r *CreateDonationRequest) { r.PaymentMethod = "cheque" }, wantErr: true},
		{name: "zero amount", mutate: func(r *CreateDonationRequest) { r.DonationAmount = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(r *CreateDonationRequest) { r.DonationAmount = -5 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
