package usecase

import (
	"context"
	"testing"

	"emergency-triage/internal/knowledge"
	"emergency-triage/pkg/log"
)

func TestSearch(t *testing.T) {
	uc := New(knowledge.NewDefault(), log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantErr   error
		wantFound bool
		wantCat   knowledge.Category
	}{
		{name: "boiler pressure", query: "Why is my boiler pressure dropping?", wantFound: true, wantCat: knowledge.CategoryPlumbing},
		{name: "locked out", query: "I'm locked out of my flat", wantFound: true, wantCat: knowledge.CategoryLocksmith},
		{name: "no category", query: "xyzzy", wantFound: false},
		{name: "blank", query: "   ", wantErr: knowledge.ErrEmptyQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Search(ctx, knowledge.SearchInput{Query: tt.query})
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if out.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", out.Found, tt.wantFound)
			}
			if out.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", out.Category, tt.wantCat)
			}
			if tt.wantFound && out.Text == "" {
				t.Error("expected text")
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	uc := New(knowledge.NewDefault(), log.NewNop())

	out, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Entries) != 7 {
		t.Fatalf("got %d entries, want 7", len(out.Entries))
	}
	if out.Entries[0].Category != knowledge.CategoryElectrical {
		t.Errorf("first category = %q, want ELECTRICAL", out.Entries[0].Category)
	}
}
