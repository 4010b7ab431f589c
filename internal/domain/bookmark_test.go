package domain

import (
	"errors"
	"testing"
)

func TestNewBookmarkInputValidate(t *testing.T) {
	valid := NewBookmarkInput{
		Title:    "Go Concurrency Patterns",
		URL:      "https://go.dev/blog/pipelines",
		Category: "dev",
	}

	tests := []struct {
		name    string
		mutate  func(in *NewBookmarkInput)
		wantErr bool
	}{
		{
			name:    "valid input",
			mutate:  func(in *NewBookmarkInput) {},
			wantErr: false,
		},
		{
			name:    "missing title",
			mutate:  func(in *NewBookmarkInput) { in.Title = "  " },
			wantErr: true,
		},
		{
			name:    "missing category",
			mutate:  func(in *NewBookmarkInput) { in.Category = "" },
			wantErr: true,
		},
		{
			name:    "missing url",
			mutate:  func(in *NewBookmarkInput) { in.URL = "" },
			wantErr: true,
		},
		{
			name:    "url without scheme",
			mutate:  func(in *NewBookmarkInput) { in.URL = "go.dev/blog" },
			wantErr: true,
		},
		{
			name:    "non-http scheme",
			mutate:  func(in *NewBookmarkInput) { in.URL = "ftp://example.com/file" },
			wantErr: true,
		},
		{
			name:    "plain http accepted",
			mutate:  func(in *NewBookmarkInput) { in.URL = "http://example.com" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected a validation error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error %v should wrap ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestNewBookmarkInputNormalize(t *testing.T) {
	in := NewBookmarkInput{
		Title:    "  Rust Ownership  ",
		URL:      " https://doc.rust-lang.org/book/ch04-00-understanding-ownership.html ",
		Note:     "\tre-read chapter 4\n",
		Category: " learning ",
		Tags:     []string{" rust ", "", "  ", "memory"},
	}

	in.Normalize()

	if in.Title != "Rust Ownership" {
		t.Errorf("Title = %q", in.Title)
	}
	if in.Category != "learning" {
		t.Errorf("Category = %q", in.Category)
	}
	if in.Note != "re-read chapter 4" {
		t.Errorf("Note = %q", in.Note)
	}
	if len(in.Tags) != 2 || in.Tags[0] != "rust" || in.Tags[1] != "memory" {
		t.Errorf("Tags = %v, want [rust memory]", in.Tags)
	}
}
