package asset

import "testing"

func TestCreateAssetRequestValidate(t *testing.T) {
	valid := CreateAssetRequest{
		AssetType: "Shop",
		Name:      "Market shop 3",
		Address:   "Temple Street",
		Pincode:   388001,
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateAssetRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateAssetRequest) {}, wantErr: false},
		{name: "unknown type", mutate: func(r *CreateAssetRequest) { r.AssetType = "Boat" }, wantErr: true},
		{name: "missing name", mutate: func(r *CreateAssetRequest) { r.Name = "" }, wantErr: true},
		{name: "missing address", mutate: func(r *CreateAssetRequest) { r.Address = "" }, wantErr: true},
		{name: "missing pincode", mutate: func(r *CreateAssetRequest) { r.Pincode = 0 }, wantErr: true},
		{name: "bad status", mutate: func(r *CreateAssetRequest) { r.Status = "Sold" }, wantErr: true},
		{
			name: "bad payment status",
			mutate: func(r *CreateAssetRequest) {
				r.RentDetails = &RentDetailsRequest{PaymentStatus: "Late"}
			},
			wantErr: true,
		},
		{
			name: "valid rent details",
			mutate: func(r *CreateAssetRequest) {
				r.RentDetails = &RentDetailsRequest{RentAmount: 5000, PaymentStatus: "Paid"}
			},
			wantErr: false,
		},
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
