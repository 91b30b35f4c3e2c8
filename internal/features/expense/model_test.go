package expense

import "testing"

func TestCreateExpenseRequestValidate(t *testing.T) {
	valid := CreateExpenseRequest{
		Title:    "Diwali decorations",
		Amount:   2500,
		Category: "Decorations & Flowers",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateExpenseRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateExpenseRequest) {}, wantErr: false},
		{name: "valid with status", mutate: func(r *CreateExpenseRequest) { r.Status = "approved" }, wantErr: false},
		{name: "missing title", mutate: func(r *CreateExpenseRequest) { r.Title = "" }, wantErr: true},
		{name: "zero amount", mutate: func(r *CreateExpenseRequest) { r.Amount = 0 }, wantErr: true},
		{name: "unknown category", mutate: func(r *CreateExpenseRequest) { r.Category = "Travel" }, wantErr: true},
		{name: "unknown status", mutate: func(r *CreateExpenseRequest) { r.Status = "archived" }, wantErr: true},
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
