package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/service"
	"bookstore/internal/mail"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEmailService mocks the EmailService interface
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Broadcast(ctx context.Context, senderID string, recipientIDs []string, subject, body string) error {
	args := m.Called(ctx, senderID, recipientIDs, subject, body)
	return args.Error(0)
}

func emailRouter(svc service.EmailService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewEmailHandler(svc).RegisterRoutes(router.Group("/email", asUser("worker-1", models.RoleWorker)))
	return router
}

func postEmail(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/email", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBroadcastHandler_Success(t *testing.T) {
	mockEmailService := new(MockEmailService)
	router := emailRouter(mockEmailService)

	mockEmailService.On("Broadcast", mock.Anything, "worker-1", []string{"u1", "u2"},
		"Overdue", "Return the books.").Return(nil)

	w := postEmail(router, `{"recipients":["u1","u2"],"subject":"Overdue","message":"Return the books."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockEmailService.AssertExpectations(t)
}

func TestBroadcastHandler_BadSubject(t *testing.T) {
	mockEmailService := new(MockEmailService)
	router := emailRouter(mockEmailService)

	mockEmailService.On("Broadcast", mock.Anything, "worker-1", []string{"u1"},
		mock.Anything, mock.Anything).Return(mail.ErrBadHeader)

	w := postEmail(router, `{"recipients":["u1"],"subject":"x\r\nBcc: v","message":"m"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid input", fieldErrors(t, w)["subject"])
}

func TestBroadcastHandler_NoRecipientsSelected(t *testing.T) {
	mockEmailService := new(MockEmailService)
	router := emailRouter(mockEmailService)

	w := postEmail(router, `{"subject":"s","message":"m"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockEmailService.AssertNotCalled(t, "Broadcast",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
