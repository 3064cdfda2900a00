package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquispe/bodegapos/internal/core/domain"
)

func TestPage_ClampsBounds(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(pageDTO[productDTO]{PageNumber: 1, PageSize: 25, First: true, Last: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Products().Page(context.Background(), 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/inventory/product/page/1", gotPath)
	assert.Equal(t, "limit=25", gotQuery)
}

func TestPage_ClampsUpperBound(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(pageDTO[productDTO]{})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Products().Page(context.Background(), 2, 5000)
	require.NoError(t, err)

	assert.Equal(t, "limit=100", gotQuery)
}

func TestList_DecodesProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/inventory/product/all", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "name": "Arroz", "stock": 40, "price": 4.5, "category": {"id": 2, "name": "Abarrotes"}},
			{"id": 2, "name": "Aceite", "stock": 25, "price": 9.9, "category": null}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	products, err := client.Products().List(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Arroz", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("4.5")))
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Abarrotes", products[0].Category.Name)
	assert.Nil(t, products[1].Category)
}

func TestCreate_PostsAndReturnsAssignedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/inventory/product/add", r.URL.Path)

		var dto productDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Nil(t, dto.ID)

		id := int64(42)
		dto.ID = &id
		json.NewEncoder(w).Encode(dto)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	created, err := client.Products().Create(context.Background(), domain.Product{
		Name:  "Nuevo",
		Stock: 5,
		Price: decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestUpdate_RequiresID(t *testing.T) {
	client := NewClient("http://localhost:0", nil)
	_, err := client.Products().Update(context.Background(), domain.Product{Name: "Sin id"})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestDelete_SoftFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/inventory/product/delete/7", r.URL.Path)
		w.Write([]byte(`{"complete": false, "message": "product is referenced by a sale"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	status, err := client.Products().Delete(context.Background(), 7)
	require.NoError(t, err, "2xx with complete=false must not be an error")
	assert.False(t, status.Complete)
	assert.Equal(t, "product is referenced by a sale", status.Message)
}

func TestGet_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Products().Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerError_SurfacesStatusAndMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "constraint violation", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Products().List(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Contains(t, statusErr.Message, "constraint violation")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNetworkError_Wrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, nil)
	_, err := client.Products().List(context.Background())

	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failure must not look like a server response")
}

func TestSaleCreate_SendsBoucherShape(t *testing.T) {
	var got boucherDTO
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sell/add", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		id := int64(9)
		got.ID = &id
		json.NewEncoder(w).Encode(got)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	sale, err := client.Sales().Create(context.Background(), domain.Sale{
		Type:           domain.VoucherBoleta,
		DocumentNumber: "B001-00001",
		Subtotal:       decimal.RequireFromString("30.00"),
		Total:          decimal.RequireFromString("35.40"),
		Lines: []domain.SaleLine{
			{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "BOLETA", got.BoucherType)
	assert.Equal(t, "B001-00001", got.NroDocument)
	require.Len(t, got.Products, 1)
	assert.Equal(t, int64(1), got.Products[0].ProductID)
	assert.Equal(t, 3, got.Products[0].Quantity)
	require.NotNil(t, got.TotalMount)
	assert.InDelta(t, 30.00, *got.TotalMount, 0.001)
	require.NotNil(t, got.FinalMount)
	assert.InDelta(t, 35.40, *got.FinalMount, 0.001)

	assert.Equal(t, int64(9), sale.ID)
}
