// Package mock holds hand-maintained test doubles that follow the minimock v3
// layout and plug into minimock.Controller.
package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

// RecordSourceMock implements ledger.recordSource
type RecordSourceMock struct {
	t minimock.Tester

	GetAllMock mRecordSourceMockGetAll
	CreateMock mRecordSourceMockCreate
}

// NewRecordSourceMock returns a mock for ledger.recordSource
func NewRecordSourceMock(t minimock.Tester) *RecordSourceMock {
	m := &RecordSourceMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetAllMock = mRecordSourceMockGetAll{mock: m}
	m.CreateMock = mRecordSourceMockCreate{mock: m}

	return m
}

type mRecordSourceMockGetAll struct {
	mock    *RecordSourceMock
	results *RecordSourceMockGetAllResults
	inspect func(ctx context.Context)
	fn      func(ctx context.Context) ([]expense.Record, error)

	calls uint64
}

// RecordSourceMockGetAllResults contains results of the recordSource.GetAll
type RecordSourceMockGetAllResults struct {
	records []expense.Record
	err     error
}

// Inspect accepts an inspector function that has same arguments as the recordSource.GetAll
func (mmGetAll *mRecordSourceMockGetAll) Inspect(f func(ctx context.Context)) *mRecordSourceMockGetAll {
	mmGetAll.inspect = f
	return mmGetAll
}

// Return sets up results that will be returned by recordSource.GetAll
func (mmGetAll *mRecordSourceMockGetAll) Return(records []expense.Record, err error) *RecordSourceMock {
	if mmGetAll.fn != nil {
		mmGetAll.mock.t.Fatalf("RecordSourceMock.GetAll mock is already set by Set")
	}
	mmGetAll.results = &RecordSourceMockGetAllResults{records, err}
	return mmGetAll.mock
}

// Set uses given function f to mock the recordSource.GetAll method
func (mmGetAll *mRecordSourceMockGetAll) Set(f func(ctx context.Context) ([]expense.Record, error)) *RecordSourceMock {
	if mmGetAll.results != nil {
		mmGetAll.mock.t.Fatalf("RecordSourceMock.GetAll mock is already set by Return")
	}
	mmGetAll.fn = f
	return mmGetAll.mock
}

func (mmGetAll *mRecordSourceMockGetAll) expected() bool {
	return mmGetAll.results != nil || mmGetAll.fn != nil
}

// GetAll implements ledger.recordSource
func (mmGetAll *RecordSourceMock) GetAll(ctx context.Context) ([]expense.Record, error) {
	atomic.AddUint64(&mmGetAll.GetAllMock.calls, 1)

	if mmGetAll.GetAllMock.inspect != nil {
		mmGetAll.GetAllMock.inspect(ctx)
	}
	if mmGetAll.GetAllMock.fn != nil {
		return mmGetAll.GetAllMock.fn(ctx)
	}
	if mmGetAll.GetAllMock.results == nil {
		mmGetAll.t.Fatalf("Unexpected call to RecordSourceMock.GetAll. %v", ctx)
		return nil, nil
	}
	return mmGetAll.GetAllMock.results.records, mmGetAll.GetAllMock.results.err
}

// GetAllAfterCounter returns a count of finished RecordSourceMock.GetAll invocations
func (mmGetAll *RecordSourceMock) GetAllAfterCounter() uint64 {
	return atomic.LoadUint64(&mmGetAll.GetAllMock.calls)
}

type mRecordSourceMockCreate struct {
	mock        *RecordSourceMock
	expectation *expense.Draft
	results     *RecordSourceMockCreateResults
	inspect     func(ctx context.Context, draft expense.Draft)
	fn          func(ctx context.Context, draft expense.Draft) (expense.Record, error)

	calls uint64
}

// RecordSourceMockCreateResults contains results of the recordSource.Create
type RecordSourceMockCreateResults struct {
	rec expense.Record
	err error
}

// Expect sets up expected params for recordSource.Create
func (mmCreate *mRecordSourceMockCreate) Expect(draft expense.Draft) *mRecordSourceMockCreate {
	mmCreate.expectation = &draft
	return mmCreate
}

// Inspect accepts an inspector function that has same arguments as the recordSource.Create
func (mmCreate *mRecordSourceMockCreate) Inspect(f func(ctx context.Context, draft expense.Draft)) *mRecordSourceMockCreate {
	mmCreate.inspect = f
	return mmCreate
}

// Return sets up results that will be returned by recordSource.Create
func (mmCreate *mRecordSourceMockCreate) Return(rec expense.Record, err error) *RecordSourceMock {
	if mmCreate.fn != nil {
		mmCreate.mock.t.Fatalf("RecordSourceMock.Create mock is already set by Set")
	}
	mmCreate.results = &RecordSourceMockCreateResults{rec, err}
	return mmCreate.mock
}

// Set uses given function f to mock the recordSource.Create method
func (mmCreate *mRecordSourceMockCreate) Set(f func(ctx context.Context, draft expense.Draft) (expense.Record, error)) *RecordSourceMock {
	if mmCreate.results != nil {
		mmCreate.mock.t.Fatalf("RecordSourceMock.Create mock is already set by Return")
	}
	mmCreate.fn = f
	return mmCreate.mock
}

func (mmCreate *mRecordSourceMockCreate) expected() bool {
	return mmCreate.results != nil || mmCreate.fn != nil
}

// Create implements ledger.recordSource
func (mmCreate *RecordSourceMock) Create(ctx context.Context, draft expense.Draft) (expense.Record, error) {
	atomic.AddUint64(&mmCreate.CreateMock.calls, 1)

	if mmCreate.CreateMock.inspect != nil {
		mmCreate.CreateMock.inspect(ctx, draft)
	}
	if want := mmCreate.CreateMock.expectation; want != nil && !draftsEqual(*want, draft) {
		mmCreate.t.Errorf("RecordSourceMock.Create got unexpected parameters, want: %#v, got: %#v", *want, draft)
	}
	if mmCreate.CreateMock.fn != nil {
		return mmCreate.CreateMock.fn(ctx, draft)
	}
	if mmCreate.CreateMock.results == nil {
		mmCreate.t.Fatalf("Unexpected call to RecordSourceMock.Create. %v %v", ctx, draft)
		return expense.Record{}, nil
	}
	return mmCreate.CreateMock.results.rec, mmCreate.CreateMock.results.err
}

// CreateAfterCounter returns a count of finished RecordSourceMock.Create invocations
func (mmCreate *RecordSourceMock) CreateAfterCounter() uint64 {
	return atomic.LoadUint64(&mmCreate.CreateMock.calls)
}

func draftsEqual(a, b expense.Draft) bool {
	return a.PayeeName == b.PayeeName &&
		a.Product == b.Product &&
		a.Price.Equal(b.Price) &&
		a.SetDate.Equal(b.SetDate.Time)
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *RecordSourceMock) MinimockFinish() {
	if !m.minimockDone() {
		if m.GetAllMock.expected() && m.GetAllAfterCounter() == 0 {
			m.t.Error("Expected call to RecordSourceMock.GetAll")
		}
		if m.CreateMock.expected() && m.CreateAfterCounter() == 0 {
			m.t.Error("Expected call to RecordSourceMock.Create")
		}
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *RecordSourceMock) MinimockWait(timeout time.Duration) {
	timeoutCh := time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (m *RecordSourceMock) minimockDone() bool {
	return (!m.GetAllMock.expected() || m.GetAllAfterCounter() > 0) &&
		(!m.CreateMock.expected() || m.CreateAfterCounter() > 0)
}
