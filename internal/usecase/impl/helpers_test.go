package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	mockService "myetician/internal/mocks/service"

	"cloud.google.com/go/civil"
)

var (
	testToday = civil.Date{Year: 2024, Month: time.June, Day: 1}
	testNow   = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClock(t *testing.T) *mockService.MockClock {
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Today().Return(testToday).Maybe()
	clock.EXPECT().Now().Return(testNow).Maybe()

	return clock
}

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}
