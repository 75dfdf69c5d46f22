// Package catalog loads the read-only base documents the local overlays
// merge against. Documents are re-read on every call so edits to the source
// show up without a restart.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"

	"github.com/vistastore/storefront/internal/model"
)

// ErrLoad indicates the base products document was unreachable or not
// well-formed. Callers check it with errors.Is.
var ErrLoad = errors.New("catalog load failed")

// Source provides the base documents. Products failing to load is fatal to
// catalog reads; callers of Users and Orders treat a failure as an empty
// base list.
type Source interface {
	Products(ctx context.Context) ([]model.Product, error)
	Users(ctx context.Context) ([]model.User, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

const (
	productsDoc = "products.json"
	usersDoc    = "users.json"
	ordersDoc   = "orders.json"
)

// FileSource reads the base documents from a local directory.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.load(productsDoc, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return products, nil
}

func (s *FileSource) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.load(usersDoc, &users); err != nil {
		return nil, fmt.Errorf("load base users: %w", err)
	}
	return users, nil
}

func (s *FileSource) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.load(ordersDoc, &orders); err != nil {
		return nil, fmt.Errorf("load base orders: %w", err)
	}
	return orders, nil
}

func (s *FileSource) load(name string, out any) error {
	raw, err := os.ReadFile(path.Join(s.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// HTTPSource fetches the base documents from a remote base URL, always
// bypassing intermediate caches.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: baseURL, client: client}
}

func (s *HTTPSource) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.fetch(ctx, productsDoc, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return products, nil
}

func (s *HTTPSource) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.fetch(ctx, usersDoc, &users); err != nil {
		return nil, fmt.Errorf("fetch base users: %w", err)
	}
	return users, nil
}

func (s *HTTPSource) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.fetch(ctx, ordersDoc, &orders); err != nil {
		return nil, fmt.Errorf("fetch base orders: %w", err)
	}
	return orders, nil
}

func (s *HTTPSource) fetch(ctx context.Context, name string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+name, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, name)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
