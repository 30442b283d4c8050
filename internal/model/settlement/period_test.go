package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

func Test_OnPeriodStart_ShouldFindMonthStart(t *testing.T) {
	at := time.Date(2023, time.March, 15, 12, 30, 0, 0, time.UTC)

	start, err := PeriodStart(PeriodMonth, at)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), start)
}

func Test_OnPeriodStart_ShouldRejectUnknownPeriod(t *testing.T) {
	_, err := PeriodStart("decade", time.Now())
	assert.Error(t, err)
}

func Test_OnSince_ShouldKeepRecordsFromStartDay(t *testing.T) {
	records := []expense.Record{
		{ID: "1", PayeeName: "Ajay", SetDate: expense.NewDate(2023, time.February, 28)},
		{ID: "2", PayeeName: "Tom", SetDate: expense.NewDate(2023, time.March, 1)},
		{ID: "3", PayeeName: "Ajay", SetDate: expense.NewDate(2023, time.March, 9)},
	}

	got := Since(records, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, got, 2)
	assert.Equal(t, expense.ID("2"), got[0].ID)
	assert.Equal(t, expense.ID("3"), got[1].ID)
}

func Test_OnSince_WithZeroStart_ShouldKeepAll(t *testing.T) {
	records := []expense.Record{{ID: "1"}, {ID: "2"}}
	assert.Len(t, Since(records, time.Time{}), 2)
}
