package knowledge

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Search returns safety advice for a free-text query.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	// ListCategories returns every category with its tips in table order.
	ListCategories(ctx context.Context) (ListCategoriesOutput, error)
}
