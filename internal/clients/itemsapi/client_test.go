package itemsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

type testConfig struct {
	url string
}

func (c testConfig) BaseURL() string {
	return c.url
}

func (c testConfig) RequestTimeout() time.Duration {
	return time.Second
}

func Test_OnGetAll_ShouldDecodeItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id":1,"payeeName":"Ajay","product":"Rent","price":100,"setDate":"2023-01-01"},
			{"id":2,"payeeName":"Tom","product":"Food","price":40.5,"setDate":"2023-01-02"}
		]`)
	}))
	defer srv.Close()

	client := New(testConfig{url: srv.URL + "/"})
	records, err := client.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, expense.ID("1"), records[0].ID)
	assert.Equal(t, "Tom", records[1].PayeeName)
	assert.True(t, decimal.RequireFromString("40.5").Equal(records[1].Price))
}

func Test_OnGetAll_ShouldReturnStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).GetAll(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func Test_OnGetAll_ShouldFailOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not":"a list"}`)
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).GetAll(context.Background())

	assert.Error(t, err)
}

func Test_OnCreate_ShouldPostDraftAndReturnIssuedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Tom", body["payeeName"])
		assert.Equal(t, 12.5, body["price"])
		assert.Equal(t, "2023-02-03", body["setDate"])
		_, hasID := body["id"]
		assert.False(t, hasID)

		body["id"] = 9
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	draft := expense.Draft{
		PayeeName: "Tom",
		Product:   "Snacks",
		Price:     decimal.RequireFromString("12.5"),
		SetDate:   expense.NewDate(2023, time.February, 3),
	}
	rec, err := New(testConfig{url: srv.URL}).Create(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, expense.ID("9"), rec.ID)
	assert.Equal(t, "Snacks", rec.Product)
	assert.Equal(t, draft.SetDate, rec.SetDate)
}

func Test_OnCreate_ShouldFailWithoutIssuedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"payeeName":"Tom","price":1,"setDate":"2023-02-03"}`)
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).Create(context.Background(), expense.Draft{
		PayeeName: "Tom",
		Price:     decimal.NewFromInt(1),
		SetDate:   expense.Today(),
	})

	assert.Error(t, err)
}
