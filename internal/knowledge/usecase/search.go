package usecase

import (
	"context"
	"strings"

	"emergency-triage/internal/knowledge"
)

// Search looks up safety advice. A query that matches no category is not
// an error: Found is false and Text is empty.
func (uc *implUseCase) Search(ctx context.Context, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return knowledge.SearchOutput{}, knowledge.ErrEmptyQuery
	}

	text, ok := uc.kb.Search(input.Query)
	if !ok {
		uc.l.Debugf(ctx, "uc.Search: no category for %q", input.Query)
		return knowledge.SearchOutput{}, nil
	}

	m, _ := uc.kb.Match(input.Query)
	return knowledge.SearchOutput{
		Found:    true,
		Category: m.Category,
		Text:     text,
	}, nil
}

// ListCategories returns the knowledge table in order.
func (uc *implUseCase) ListCategories(ctx context.Context) (knowledge.ListCategoriesOutput, error) {
	cats := uc.kb.Categories()
	out := knowledge.ListCategoriesOutput{Entries: make([]knowledge.Entry, 0, len(cats))}
	for _, c := range cats {
		if e, ok := uc.kb.Entry(c); ok {
			out.Entries = append(out.Entries, e)
		}
	}
	return out, nil
}
