package domain

import (
	"errors"
	"testing"
)

func TestRegisterInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr bool
	}{
		{
			name:    "valid",
			input:   RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "correcthorse"},
			wantErr: false,
		},
		{
			name:    "missing name",
			input:   RegisterInput{Email: "alice@example.com", Password: "correcthorse"},
			wantErr: true,
		},
		{
			name:    "bad email",
			input:   RegisterInput{Name: "Alice", Email: "not-an-email", Password: "correcthorse"},
			wantErr: true,
		},
		{
			name:    "short password",
			input:   RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestRegisterInputNormalize(t *testing.T) {
	in := RegisterInput{Name: "  Bob  ", Email: " Bob@Example.COM "}
	in.Normalize()

	if in.Name != "Bob" {
		t.Errorf("Name = %q", in.Name)
	}
	if in.Email != "bob@example.com" {
		t.Errorf("Email = %q, want lowercased", in.Email)
	}
}
