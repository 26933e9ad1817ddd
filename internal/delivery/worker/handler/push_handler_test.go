package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "myetician/internal/delivery/context"
	domainerrors "myetician/internal/domain/errors"
	"myetician/internal/domain/service"
	"myetician/internal/errors"
	"myetician/internal/infra/pubsub"
	mockService "myetician/internal/mocks/service"
	mockUsecase "myetician/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T) (*PushHandler, *mockUsecase.MockGoalAlertUsecase) {
	h, uc, _ := newTestHandlerWithReporter(t)

	return h, uc
}

func newTestHandlerWithReporter(t *testing.T) (*PushHandler, *mockUsecase.MockGoalAlertUsecase, *mockService.MockErrorReporter) {
	uc := mockUsecase.NewMockGoalAlertUsecase(t)
	reporter := mockService.NewMockErrorReporter(t)

	return &PushHandler{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		reporter:    reporter,
		goalAlertUC: uc,
	}, uc, reporter
}

func pushBody(t *testing.T, event *service.LogEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/meal-log-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_ProcessesEvent(t *testing.T) {
	h, uc := newTestHandler(t)
	event := &service.LogEvent{
		Type:     service.EventMealLogged,
		UserID:   "user-1",
		MealID:   "0190f7a4-0000-7000-8000-000000000001",
		Date:     "2024-06-01",
		Calories: 700,
	}

	uc.EXPECT().
		HandleLogEvent(mock.Anything, mock.MatchedBy(func(e *service.LogEvent) bool {
			return e.UserID == "user-1" && e.Calories == 700 && e.Date == "2024-06-01"
		})).
		Run(func(ctx context.Context, _ *service.LogEvent) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(true, nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := map[string]string{
		"not json":           `{"message":`,
		"bad base64":         `{"message":{"data":"%%%"}}`,
		"bad event json":     `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
		"event without user": `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"type":"meal.logged"}`)) + `"}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := servePush(h, body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_FailureStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "storage failure is retried", err: domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to list meals"), status: http.StatusServiceUnavailable},
		{name: "notification failure is retried", err: domainerrors.ErrNotificationFailed, status: http.StatusServiceUnavailable},
		{name: "unknown error is retried", err: errors.New("boom"), status: http.StatusServiceUnavailable},
		{name: "missing profile is dropped", err: errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found"), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc, reporter := newTestHandlerWithReporter(t)
			uc.EXPECT().HandleLogEvent(mock.Anything, mock.Anything).Return(false, tt.err)
			if tt.status == http.StatusServiceUnavailable {
				reporter.EXPECT().Report(mock.Anything, tt.err).Once()
			}

			rec := servePush(h, pushBody(t, &service.LogEvent{Type: service.EventMealLogged, UserID: "user-1"}, nil), nil)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	body := func(t *testing.T) string {
		return pushBody(t, &service.LogEvent{Type: service.EventProfileSaved, UserID: "user-1"}, nil)
	}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestHandler(t)
		h.verifyPushAuth = true

		rec := servePush(h, body(t), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, body(t), http.Header{"Authorization": {"Bearer tok"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, uc := newTestHandler(t)
		h.verifyPushAuth = true
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		uc.EXPECT().HandleLogEvent(mock.Anything, mock.Anything).Return(false, nil)

		rec := servePush(h, body(t), http.Header{"Authorization": {"Bearer tok"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
