package tenant

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilter(t *testing.T) {
	templeID := primitive.NewObjectID()

	got := buildSearchFilter(templeID, "")
	if !reflect.DeepEqual(got, bson.M{"temple_id": templeID}) {
		t.Errorf("empty search = %v, want temple scope only", got)
	}

	regex := primitive.Regex{Pattern: "shah", Options: "i"}
	want := bson.M{
		"temple_id": templeID,
		"$or": []bson.M{
			{"name": bson.M{"$regex": regex}},
			{"contact_info": bson.M{"$regex": regex}},
			{"email": bson.M{"$regex": regex}},
			{"address": bson.M{"$regex": regex}},
			{"status": bson.M{"$regex": regex}},
		},
	}
	got = buildSearchFilter(templeID, "shah")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildSearchFilter() = %v, want %v", got, want)
	}

	// Metacharacters in the term must be escaped before they reach Mongo.
	got = buildSearchFilter(templeID, "a.b*")
	or, ok := got["$or"].([]bson.M)
	if !ok || len(or) == 0 {
		t.Fatalf("no $or clause for metacharacter search: %v", got)
	}
	pattern := or[0]["name"].(bson.M)["$regex"].(primitive.Regex).Pattern
	if pattern != `a\.b\*` {
		t.Errorf("pattern = %q, want %q", pattern, `a\.b\*`)
	}
}

func TestCreateTenantRequestValidate(t *testing.T) {
	valid := CreateTenantRequest{
		Name:        "Mahesh Shah",
		ContactInfo: "9876543210",
		Address:     "12 Mandir Road",
		PinCode:     388001,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateTenantRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateTenantRequest) {}, wantErr: false},
		{name: "missing name", mutate: func(r *CreateTenantRequest) { r.Name = "" }, wantErr: true},
		{name: "short contact", mutate: func(r *CreateTenantRequest) { r.ContactInfo = "12345" }, wantErr: true},
		{name: "missing address", mutate: func(r *CreateTenantRequest) { r.Address = "" }, wantErr: true},
		{name: "missing pin code", mutate: func(r *CreateTenantRequest) { r.PinCode = 0 }, wantErr: true},
		{name: "bad status", mutate: func(r *CreateTenantRequest) { r.Status = "Suspended" }, wantErr: true},
		{name: "valid status", mutate: func(r *CreateTenantRequest) { r.Status = "Inactive" }, wantErr: false},
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
