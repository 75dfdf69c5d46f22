package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vistastore/storefront/internal/catalog"
	"github.com/vistastore/storefront/internal/model"
	"github.com/vistastore/storefront/internal/storage"
)

// ProductRepository serves the effective catalog: the base document with
// the local edit log replayed over it and review aggregates overlaid.
// Writes only ever append to the edit log; the base document is never
// touched.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

type kvProductRepo struct {
	source catalog.Source
	store  storage.Store
}

func NewProductRepository(source catalog.Source, store storage.Store) ProductRepository {
	return &kvProductRepo{source: source, store: store}
}

func (r *kvProductRepo) List(ctx context.Context) ([]model.Product, error) {
	base, err := r.source.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	merged := replayEdits(base, r.edits(ctx))

	reviews := map[string][]model.Review{}
	if !r.store.Get(ctx, storage.KeyReviews, &reviews) {
		reviews = map[string][]model.Review{}
	}
	for i := range merged {
		overlayReviews(&merged[i], reviews[merged[i].ID])
	}
	return merged, nil
}

func (r *kvProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *kvProductRepo) Create(ctx context.Context, product model.Product) (model.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	err := r.append(ctx, model.ProductEdit{Action: model.EditCreate, Product: &product})
	if err != nil {
		return model.Product{}, err
	}
	return product, nil
}

func (r *kvProductRepo) Update(ctx context.Context, id string, patch model.ProductPatch) error {
	// No existence check: a stale id simply produces an edit that replay
	// drops.
	return r.append(ctx, model.ProductEdit{Action: model.EditUpdate, ID: id, Patch: &patch})
}

func (r *kvProductRepo) Delete(ctx context.Context, id string) error {
	return r.append(ctx, model.ProductEdit{Action: model.EditDelete, ID: id})
}

func (r *kvProductRepo) edits(ctx context.Context) []model.ProductEdit {
	edits := []model.ProductEdit{}
	if !r.store.Get(ctx, storage.KeyProductEdits, &edits) {
		return []model.ProductEdit{}
	}
	return edits
}

func (r *kvProductRepo) append(ctx context.Context, edit model.ProductEdit) error {
	edits := append(r.edits(ctx), edit)
	if err := r.store.Set(ctx, storage.KeyProductEdits, edits); err != nil {
		return fmt.Errorf("append product edit: %w", err)
	}
	return nil
}

// replayEdits applies the edit log in insertion order. The result keeps
// base order first; created ids follow in log order. Re-creating an
// existing id overwrites it in place, updating a missing id is dropped,
// and a create after a delete appends at the end.
func replayEdits(base []model.Product, edits []model.ProductEdit) []model.Product {
	order := make([]string, 0, len(base))
	byID := make(map[string]model.Product, len(base))
	for _, p := range base {
		if _, ok := byID[p.ID]; !ok {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}

	for _, e := range edits {
		switch e.Action {
		case model.EditCreate:
			if e.Product == nil {
				continue
			}
			if _, ok := byID[e.Product.ID]; !ok {
				order = append(order, e.Product.ID)
			}
			byID[e.Product.ID] = *e.Product
		case model.EditUpdate:
			cur, ok := byID[e.ID]
			if !ok || e.Patch == nil {
				continue
			}
			e.Patch.Apply(&cur)
			byID[e.ID] = cur
		case model.EditDelete:
			if _, ok := byID[e.ID]; !ok {
				continue
			}
			delete(byID, e.ID)
			for i, id := range order {
				if id == e.ID {
					order = append(order[:i], order[i+1:]...)
					break
				}
			}
		}
	}

	out := make([]model.Product, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// overlayReviews folds locally recorded reviews into the derived rating
// fields. With no local reviews the base values pass through untouched.
func overlayReviews(p *model.Product, reviews []model.Review) {
	if len(reviews) == 0 {
		return
	}
	sum := decimal.Zero
	for _, rev := range reviews {
		sum = sum.Add(rev.Rating)
	}
	p.Rating = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
	p.ReviewsCount += len(reviews)
}

// searchLimit caps suggestion results; the search box shows at most six.
const searchLimit = 6

// Search is a case-insensitive substring match on title or any tag. An
// empty query yields nothing: this backs the suggestion dropdown, not the
// catalog filter.
func Search(all []model.Product, query string) []model.Product {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	out := make([]model.Product, 0, searchLimit)
	for _, p := range all {
		if len(out) == searchLimit {
			break
		}
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p model.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
