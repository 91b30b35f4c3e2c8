package permission

import (
	"errors"
	"testing"

	"go-temple/internal/common/apperr"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		permName string
		actions  []string
		wantErr  bool
	}{
		{name: "valid name and actions", permName: "donation-creator", actions: []string{"create"}, wantErr: false},
		{name: "all actions", permName: "donation-manager", actions: []string{"create", "read", "update", "delete"}, wantErr: false},
		{name: "empty action list allowed", permName: "donation-viewer", actions: []string{}, wantErr: false},
		{name: "unknown name", permName: "expense-creator", actions: []string{"create"}, wantErr: true},
		{name: "unknown action", permName: "donation-creator", actions: []string{"approve"}, wantErr: true},
		{name: "nil actions", permName: "donation-creator", actions: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.permName, tt.actions)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("error kind = %v, want ErrValidation", err)
			}
		})
	}
}
