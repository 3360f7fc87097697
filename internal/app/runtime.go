// Package app provides the CLI use-cases and the wiring that builds the
// catalog flows from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/shelf/internal/api"
	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/cristianoliveira/shelf/internal/logging"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/search"
	"github.com/cristianoliveira/shelf/internal/storage"
	"github.com/cristianoliveira/shelf/internal/wishlist"
)

// CatalogClient is the set of flows the use-cases and the TUI drive.
type CatalogClient interface {
	Fetch(ctx context.Context, useAPI bool) (catalog.Snapshot, error)
	Submit(ctx context.Context, f catalog.Form, useAPI bool) (catalog.Mutation, error)
	Delete(ctx context.Context, id product.ID, useAPI bool) (catalog.Mutation, error)
	ToggleFavorite(st *catalog.State, id string) (wishlist.Icon, error)
}

var _ CatalogClient = (*catalog.Service)(nil)

// Runtime holds the configured flows and the store backing the wishlist.
type Runtime struct {
	Service *catalog.Service
	Search  search.Provider
	UseAPI  bool

	store storage.KV
}

// Open builds a Runtime from the loaded configuration.
func Open() (*Runtime, error) {
	store, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("open wishlist store: %w", err)
	}
	client := api.NewFromConfig()
	logging.Debug("catalog runtime opened", "api_base_url", client.BaseURL())
	return NewRuntime(client, store), nil
}

// NewRuntime wires a remote and a key/value store into a Runtime. The
// source and search mode come from configuration.
func NewRuntime(remote catalog.Remote, store storage.KV) *Runtime {
	return &Runtime{
		Service: catalog.NewService(remote, wishlist.NewManager(store)),
		Search:  search.New(config.Get("search_mode", search.ModeSubstring)),
		UseAPI:  config.GetBool("use_api", true),
		store:   store,
	}
}

// Close releases the store.
func (r *Runtime) Close() error {
	if r == nil || r.store == nil {
		return nil
	}
	return r.store.Close()
}

// loadState fetches a snapshot into a new state. A load failure leaves the
// fallback data in place and is returned for the caller to report.
func loadState(ctx context.Context, client CatalogClient, useAPI bool) (*catalog.State, error) {
	st := catalog.NewState(useAPI)
	snap, err := client.Fetch(ctx, useAPI)
	st.ApplySnapshot(snap)
	return st, err
}
