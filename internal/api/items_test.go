package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-splitter/internal/clients/itemsapi"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/model/ledger"
	"max.ks1230/expense-splitter/internal/model/settlement"
	"max.ks1230/expense-splitter/internal/model/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testConfig struct{}

func (testConfig) AllowedOrigins() []string {
	return []string{"http://localhost:3000"}
}

type clientConfig struct {
	url string
}

func (c clientConfig) BaseURL() string {
	return c.url
}

func (c clientConfig) RequestTimeout() time.Duration {
	return time.Second
}

type failingSource struct{}

func (failingSource) GetAll(context.Context) ([]expense.Record, error) {
	return nil, errors.New("db down")
}

func (failingSource) Create(context.Context, expense.Draft) (expense.Record, error) {
	return expense.Record{}, errors.New("db down")
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	return rr
}

func Test_OnCreateItem_ShouldDefaultDateAndReturnCreated(t *testing.T) {
	router := NewRouter(storage.NewInMemStorage(), testConfig{})

	rr := do(router, http.MethodPost, "/items", `{"payeeName":"Ajay","product":"Rent","price":100}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"payeeName":"Ajay"`)
	assert.Contains(t, rr.Body.String(), `"price":100`)
	assert.Contains(t, rr.Body.String(), `"setDate":"`+expense.Today().String()+`"`)

	list := do(router, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"product":"Rent"`)
}

func Test_OnCreateItem_ShouldRejectInvalidBodies(t *testing.T) {
	router := NewRouter(storage.NewInMemStorage(), testConfig{})

	for _, body := range []string{
		`{"payeeName":"Ajay","price":-1}`,
		`{"payeeName":"","price":1}`,
		`{"payeeName":"Ajay","price":"abc"}`,
		`not json`,
	} {
		rr := do(router, http.MethodPost, "/items", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func Test_OnSourceFailure_ShouldAnswerInternalError(t *testing.T) {
	router := NewRouter(failingSource{}, testConfig{})

	assert.Equal(t, http.StatusInternalServerError, do(router, http.MethodGet, "/items", "").Code)
	assert.Equal(t, http.StatusInternalServerError,
		do(router, http.MethodPost, "/items", `{"payeeName":"Tom","price":1}`).Code)
}

func Test_OnHealth_ShouldAnswerOK(t *testing.T) {
	router := NewRouter(storage.NewInMemStorage(), testConfig{})
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "").Code)
}

func Test_OnClientAgainstServer_ShouldSettleServedRecords(t *testing.T) {
	srv := httptest.NewServer(NewRouter(storage.NewInMemStorage(), testConfig{}))
	defer srv.Close()

	ctx := context.Background()
	store := ledger.NewStore(itemsapi.New(clientConfig{url: srv.URL}))
	require.NoError(t, store.Load(ctx))

	_, err := store.Create(ctx, expense.Draft{PayeeName: "Ajay", Product: "Rent", Price: decimal.NewFromInt(100), SetDate: expense.Today()})
	require.NoError(t, err)
	_, err = store.Create(ctx, expense.Draft{PayeeName: "Tom", Product: "Food", Price: decimal.NewFromInt(40), SetDate: expense.Today()})
	require.NoError(t, err)

	fresh := ledger.NewStore(itemsapi.New(clientConfig{url: srv.URL}))
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, store.Records()[0].ID, fresh.Records()[0].ID)
	assert.Equal(t, 2, fresh.Len())

	res := settlement.DefaultPair.Settle(fresh.Records())
	assert.Equal(t, "Tom", res.Owing)
	assert.True(t, decimal.NewFromInt(30).Equal(res.Amount), res.Amount.String())
}

func useMockTracer(t *testing.T) *mocktracer.MockTracer {
	t.Helper()
	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() {
		opentracing.SetGlobalTracer(opentracing.NoopTracer{})
	})
	return tracer
}

func Test_OnRequest_ShouldRecordServerSpan(t *testing.T) {
	tracer := useMockTracer(t)
	router := NewRouter(storage.NewInMemStorage(), testConfig{})

	rec := do(router, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusOK, rec.Code)
	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /items", spans[0].OperationName)
	assert.Equal(t, uint16(http.StatusOK), spans[0].Tag("http.status_code"))
	assert.Nil(t, spans[0].Tag("error"))
}

func Test_OnFailingSource_ShouldMarkSpanAsError(t *testing.T) {
	tracer := useMockTracer(t)
	router := NewRouter(failingSource{}, testConfig{})

	rec := do(router, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, true, spans[0].Tag("error"))
}

func Test_OnClientCall_ShouldContinueTraceOnServer(t *testing.T) {
	tracer := useMockTracer(t)
	srv := httptest.NewServer(NewRouter(storage.NewInMemStorage(), testConfig{}))
	defer srv.Close()

	_, err := itemsapi.New(clientConfig{url: srv.URL}).GetAll(context.Background())
	require.NoError(t, err)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 2)
	server, client := spans[0], spans[1]
	assert.Equal(t, "GET /items", server.OperationName)
	assert.Equal(t, "itemsapi GET", client.OperationName)
	assert.Equal(t, client.SpanContext.TraceID, server.SpanContext.TraceID)
	assert.Equal(t, client.SpanContext.SpanID, server.ParentID)
}
