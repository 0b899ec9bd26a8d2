package user

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-layout/core"
)

func TestInitValidators(t *testing.T) {
	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)

	type payload struct {
		Role  string   `json:"role" validate:"omitempty,role"`
		Roles []string `json:"roles" validate:"role"`
	}
	tests := []struct {
		name    string
		data    payload
		wantErr string
	}{
		{name: "valid", data: payload{Role: RoleTeacher, Roles: []string{RoleStudent, RoleAdminOwner}}},
		{name: "empty role", data: payload{Roles: []string{}}},
		{name: "unknown role", data: payload{Role: "teacher", Roles: nil}, wantErr: "role must be a known role"},
		{name: "unknown role in list", data: payload{Roles: []string{RoleAdmin, "admin:janitor"}}, wantErr: "roles must be a known role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate.Struct() error = %v", err)
				}
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			if !ok || len(vErrs) != 1 {
				t.Fatalf("validate.Struct() error = %v, want one field error", err)
			}
			if got := vErrs[0].Translate(translator); got != tt.wantErr {
				t.Errorf("Translate() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}
