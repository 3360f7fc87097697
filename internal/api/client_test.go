package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method      string
	path        string
	contentType string
	body        map[string]any
}

func newServer(t *testing.T, status int, respBody string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &rec.body)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/"), rec
}

func TestFetchProducts(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `[{"id":1,"title":"A","price":9.9},{"id":2,"title":"B","price":"5"}]`)

	items, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/products", rec.path)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID.String())
	assert.True(t, items[0].ID.IsRemote())
	assert.Equal(t, 5.0, items[1].Price)
}

func TestFetchProductsNonArrayIsEmpty(t *testing.T) {
	for _, body := range []string{`{"message":"nope"}`, `null`, `"text"`, `42`} {
		c, _ := newServer(t, http.StatusOK, body)
		items, err := c.FetchProducts(context.Background())
		require.NoError(t, err, body)
		assert.Empty(t, items, body)
		assert.NotNil(t, items, body)
	}
}

func TestFetchProductsSkipsMalformedElements(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[{"id":1,"title":"A"}, 7, {"id":3,"price":"abc"}, {"id":4}]`)
	items, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID.String())
	assert.Equal(t, "4", items[1].ID.String())
}

func TestFetchProductsInvalidJSON(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[{`)
	_, err := c.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), OpFetch)
}

func TestStatusErrors(t *testing.T) {
	c, _ := newServer(t, http.StatusInternalServerError, `boom`)
	ctx := context.Background()

	_, err := c.FetchProducts(ctx)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpFetch, se.Op)
	assert.Equal(t, 500, se.StatusCode)
	assert.Equal(t, "fetch products: status 500", err.Error())

	_, err = c.CreateProduct(ctx, product.Payload{Title: "x"})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpCreate, se.Op)

	_, err = c.UpdateProduct(ctx, "1", product.Payload{})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpUpdate, se.Op)

	_, err = c.DeleteProduct(ctx, "1")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, OpDelete, se.Op)
}

func TestIsNotFound(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, ``)
	_, err := c.DeleteProduct(context.Background(), "99")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(ErrMissingID))
}

func TestCreateProduct(t *testing.T) {
	c, rec := newServer(t, http.StatusCreated, `{"id":21,"title":"Mug","price":12.5,"description":"d","image":""}`)

	patch, err := c.CreateProduct(context.Background(), product.Payload{Title: "Mug", Price: 12.5, Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/products", rec.path)
	assert.Equal(t, "application/json", rec.contentType)
	assert.Equal(t, "Mug", rec.body["title"])
	assert.Equal(t, 12.5, rec.body["price"])
	assert.Contains(t, rec.body, "image")

	require.NotNil(t, patch.ID)
	assert.Equal(t, "21", patch.ID.String())
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Mug", *patch.Title)
}

func TestUpdateProduct(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"id":3,"title":"New"}`)

	patch, err := c.UpdateProduct(context.Background(), "3", product.Payload{Title: "New", Price: 1})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/products/3", rec.path)
	require.NotNil(t, patch.Title)
	assert.Nil(t, patch.Price)
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	_, err := c.UpdateProduct(context.Background(), " ", product.Payload{})
	require.ErrorIs(t, err, ErrMissingID)
	_, err = c.DeleteProduct(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingID)
}

func TestDeleteProduct(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, ``)
	res, err := c.DeleteProduct(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/products/5", rec.path)
	assert.True(t, res.Success)
	assert.Nil(t, res.Body)

	c, _ = newServer(t, http.StatusOK, `{"id":5,"title":"gone"}`)
	res, err = c.DeleteProduct(context.Background(), "5")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"id":5,"title":"gone"}`, string(res.Body))

	c, _ = newServer(t, http.StatusOK, `not json`)
	_, err = c.DeleteProduct(context.Background(), "5")
	require.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL).FetchProducts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithTimeout(t *testing.T) {
	c := NewClient("https://example.test", WithTimeout(2*time.Second))
	assert.Equal(t, 2*time.Second, c.http.Timeout)
	assert.Equal(t, "https://example.test", c.BaseURL())

	c = NewClient("https://example.test")
	assert.Zero(t, c.http.Timeout)
}
