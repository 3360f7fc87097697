package app

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/shelf/internal/api"
	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/input"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/search"
	"github.com/cristianoliveira/shelf/internal/settings"
	"github.com/cristianoliveira/shelf/internal/storage"
	"github.com/cristianoliveira/shelf/internal/wishlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	items     []product.Product
	fetchErr  error
	writeErr  error
	created   []product.Payload
	updated   []string
	deleted   []string
	createdID *product.ID
}

func (f *fakeRemote) FetchProducts(context.Context) ([]product.Product, error) {
	return f.items, f.fetchErr
}

func (f *fakeRemote) CreateProduct(_ context.Context, payload product.Payload) (product.Patch, error) {
	f.created = append(f.created, payload)
	patch := payload.Patch()
	patch.ID = f.createdID
	return patch, f.writeErr
}

func (f *fakeRemote) UpdateProduct(_ context.Context, id string, payload product.Payload) (product.Patch, error) {
	f.updated = append(f.updated, id)
	return payload.Patch(), f.writeErr
}

func (f *fakeRemote) DeleteProduct(_ context.Context, id string) (api.DeleteResult, error) {
	f.deleted = append(f.deleted, id)
	return api.DeleteResult{Success: f.writeErr == nil}, f.writeErr
}

func newService(t *testing.T, remote *fakeRemote) (*catalog.Service, *wishlist.Manager) {
	t.Helper()
	kv, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	favorites := wishlist.NewManager(kv)
	return catalog.NewService(remote, favorites), favorites
}

func catalogItems() []product.Product {
	return []product.Product{
		{ID: product.RemoteID("1"), Title: "Backpack", Price: 109.95, Description: "Fits laptops"},
		{ID: product.RemoteID("2"), Title: "Slim shirt", Price: 22.3, Description: "Cotton"},
	}
}

func strPtr(s string) *string { return &s }

func TestUseCasesPanicWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewListUseCase(nil) })
	assert.Panics(t, func() { NewSubmitUseCase(nil) })
	assert.Panics(t, func() { NewDeleteUseCase(nil) })
	assert.Panics(t, func() { NewFavoriteUseCase(nil) })
	assert.Panics(t, func() { NewSettingsUseCase(nil) })
}

func TestListPrintsJSONWithFavorites(t *testing.T) {
	svc, favorites := newService(t, &fakeRemote{items: catalogItems()})
	require.NoError(t, favorites.Save([]string{"2"}))

	var out bytes.Buffer
	err := NewListUseCase(svc).Execute(context.Background(), ListOptions{UseAPI: true, Format: "json"}, &out)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Backpack", decoded[0]["title"])
	assert.Equal(t, false, decoded[0]["favorite"])
	assert.Equal(t, true, decoded[1]["favorite"])
}

func TestListSearchAndFavoritesOnly(t *testing.T) {
	svc, favorites := newService(t, &fakeRemote{items: catalogItems()})
	require.NoError(t, favorites.Save([]string{"1"}))
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, NewListUseCase(svc).Execute(ctx, ListOptions{UseAPI: true, Search: "  cotton ", SearchProvider: search.NewSubstringProvider()}, &out))
	assert.Contains(t, out.String(), "Slim shirt")
	assert.NotContains(t, out.String(), "Backpack")

	out.Reset()
	require.NoError(t, NewListUseCase(svc).Execute(ctx, ListOptions{UseAPI: true, FavoritesOnly: true}, &out))
	assert.Contains(t, out.String(), "Backpack")
	assert.NotContains(t, out.String(), "Slim shirt")
}

func TestListFallsBackToMockDataOnLoadError(t *testing.T) {
	svc, _ := newService(t, &fakeRemote{fetchErr: stderrors.New("status 503")})

	var out bytes.Buffer
	require.NoError(t, NewListUseCase(svc).Execute(context.Background(), ListOptions{UseAPI: true}, &out))
	assert.Contains(t, out.String(), "Produit local A")
	assert.Contains(t, out.String(), "Produit local B")
}

func TestListRejectsUnknownFormat(t *testing.T) {
	svc, _ := newService(t, &fakeRemote{})
	err := NewListUseCase(svc).Execute(context.Background(), ListOptions{Format: "yaml"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown format "yaml"`)
	assert.NoError(t, ValidateFormat(""))
	assert.NoError(t, ValidateFormat("html"))
}

func TestSubmitAddOffline(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newService(t, remote)

	p, err := NewSubmitUseCase(svc).Execute(context.Background(), SubmitInput{
		Name:        strPtr("Desk lamp"),
		Price:       strPtr("12,5"),
		Description: strPtr("<warm>"),
	})
	require.NoError(t, err)
	assert.Equal(t, product.OriginLocal, p.ID.Origin())
	assert.Equal(t, "Desk lamp", p.Title)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, "&lt;warm&gt;", p.Description)
	assert.Empty(t, remote.created)
}

func TestSubmitAddRemoteWithoutIDStaysAddressable(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newService(t, remote)

	p, err := NewSubmitUseCase(svc).Execute(context.Background(), SubmitInput{UseAPI: true, Name: strPtr("Mug"), Price: strPtr("4")})
	require.NoError(t, err)
	require.Len(t, remote.created, 1)
	assert.False(t, p.ID.IsZero())
	assert.Equal(t, product.OriginLocal, p.ID.Origin())
}

func TestSubmitEditKeepsOmittedFields(t *testing.T) {
	remote := &fakeRemote{items: catalogItems()}
	svc, _ := newService(t, remote)

	p, err := NewSubmitUseCase(svc).Execute(context.Background(), SubmitInput{UseAPI: true, ID: "2", Price: strPtr("25")})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, remote.updated)
	assert.Equal(t, "2", p.ID.String())
	assert.Equal(t, "Slim shirt", p.Title)
	assert.Equal(t, 25.0, p.Price)
}

func TestSubmitErrors(t *testing.T) {
	remote := &fakeRemote{items: catalogItems()}
	svc, _ := newService(t, remote)
	uc := NewSubmitUseCase(svc)
	ctx := context.Background()

	_, err := uc.Execute(ctx, SubmitInput{UseAPI: true, ID: "99"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = uc.Execute(ctx, SubmitInput{Name: strPtr("ok"), Price: strPtr("0")})
	assert.ErrorIs(t, err, input.ErrPriceTooLow)

	remote.writeErr = &api.StatusError{Op: api.OpUpdate, StatusCode: 500}
	_, err = uc.Execute(ctx, SubmitInput{UseAPI: true, ID: "1", Name: strPtr("New name")})
	var opErr *errors.OpError
	require.True(t, stderrors.As(err, &opErr))
	assert.Equal(t, errors.OpSave, opErr.Op)
	assert.Contains(t, err.Error(), "Error saving:")
}

func TestDeleteConfirmsAndCallsRemote(t *testing.T) {
	remote := &fakeRemote{items: catalogItems()}
	svc, _ := newService(t, remote)
	uc := NewDeleteUseCase(svc)
	ctx := context.Background()
	notCI := func() bool { return false }

	var asked string
	err := uc.Execute(ctx, DeleteInput{UseAPI: true, ID: "1", IsCIOrTestEnv: notCI, Confirm: func(title string) bool {
		asked = title
		return false
	}})
	require.NoError(t, err)
	assert.Equal(t, "Backpack", asked)
	assert.Empty(t, remote.deleted)

	require.NoError(t, uc.Execute(ctx, DeleteInput{UseAPI: true, ID: "1", Yes: true, IsCIOrTestEnv: notCI}))
	assert.Equal(t, []string{"1"}, remote.deleted)
}

func TestDeleteLocalItemSkipsRemote(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newService(t, remote)

	require.NoError(t, NewDeleteUseCase(svc).Execute(context.Background(), DeleteInput{ID: "1", Yes: true}))
	assert.Empty(t, remote.deleted)
}

func TestDeleteErrors(t *testing.T) {
	remote := &fakeRemote{items: catalogItems(), writeErr: &api.StatusError{Op: api.OpDelete, StatusCode: 404}}
	svc, _ := newService(t, remote)
	uc := NewDeleteUseCase(svc)
	ctx := context.Background()

	assert.Error(t, uc.Execute(ctx, DeleteInput{}))
	assert.ErrorIs(t, uc.Execute(ctx, DeleteInput{UseAPI: true, ID: "42", Yes: true}), catalog.ErrNotFound)

	err := uc.Execute(ctx, DeleteInput{UseAPI: true, ID: "2", Yes: true})
	assert.Contains(t, err.Error(), "Error deleting:")
	assert.ErrorIs(t, err, catalog.ErrGone)
	assert.True(t, api.IsNotFound(err))
}

func TestFavoriteTogglesAndPersists(t *testing.T) {
	svc, favorites := newService(t, &fakeRemote{items: catalogItems()})
	uc := NewFavoriteUseCase(svc)
	ctx := context.Background()

	icon, err := uc.Execute(ctx, true, "2")
	require.NoError(t, err)
	assert.Equal(t, wishlist.IconSolid, icon)
	list, found, err := favorites.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"2"}, list)

	icon, err = uc.Execute(ctx, true, "2")
	require.NoError(t, err)
	assert.Equal(t, wishlist.IconOutline, icon)

	_, err = uc.Execute(ctx, true, "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

type mockSettingsClient struct {
	mock.Mock
}

func (m *mockSettingsClient) ResetSettings() (*settings.Settings, error) {
	args := m.Called()
	s, _ := args.Get(0).(*settings.Settings)
	return s, args.Error(1)
}

func (m *mockSettingsClient) LoadSettings() (*settings.Settings, error) {
	args := m.Called()
	s, _ := args.Get(0).(*settings.Settings)
	return s, args.Error(1)
}

func TestSettingsReset(t *testing.T) {
	client := new(mockSettingsClient)
	uc := NewSettingsUseCase(client)

	require.NoError(t, uc.Reset(ResetSettingsInput{ConfirmFn: func() bool { return false }}))
	client.AssertNotCalled(t, "ResetSettings")

	client.On("ResetSettings").Return(settings.DefaultSettings(), nil).Once()
	require.NoError(t, uc.Reset(ResetSettingsInput{Force: true}))

	client.On("ResetSettings").Return(nil, stderrors.New("busy")).Once()
	err := uc.Reset(ResetSettingsInput{GetEnv: func(k string) string {
		if k == "CI" {
			return "1"
		}
		return ""
	}})
	assert.ErrorContains(t, err, "failed to reset settings: busy")
	client.AssertExpectations(t)
}

func TestSettingsShow(t *testing.T) {
	client := new(mockSettingsClient)
	client.On("LoadSettings").Return(&settings.Settings{ViewMode: settings.ViewModeCompact}, nil).Once()
	client.On("LoadSettings").Return(nil, stderrors.New("bad toml")).Once()
	uc := NewSettingsUseCase(client)

	assert.NoError(t, uc.Show())
	assert.ErrorContains(t, uc.Show(), "failed to load settings: bad toml")
}

func TestNewRuntimeReadsConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("SHELF_USE_API", "false")
	t.Setenv("SHELF_SEARCH_MODE", "token")
	config.Load()

	kv, err := storage.NewFileStorage(filepath.Join(dir, "store.json"))
	require.NoError(t, err)
	rt := NewRuntime(&fakeRemote{}, kv)

	assert.False(t, rt.UseAPI)
	assert.Equal(t, search.ModeToken, rt.Search.Name())
	require.NotNil(t, rt.Service)
	assert.NoError(t, rt.Close())

	var nilRuntime *Runtime
	assert.NoError(t, nilRuntime.Close())
}
