package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fara3/fara3-backend/internal/app/model"
	"github.com/fara3/fara3-backend/internal/app/repository"
	"github.com/fara3/fara3-backend/internal/app/service"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContactControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	contactService := service.NewContactService(repository.NewContactRepository(testDB))
	contactController := NewContactController(contactService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", contactController.SubmitMessage)

	return router, testDB
}

func TestContactController_SubmitMessage_Success(t *testing.T) {
	router, testDB := setupContactControllerTest(t)

	w := postJSON(t, router, "/contact", ContactRequest{
		Name:    "Test User",
		Email:   "test@example.com",
		Message: "Where is my order?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Message sent successfully", response["message"])

	var stored model.ContactMessage
	require.NoError(t, testDB.First(&stored).Error)
	assert.Equal(t, "Where is my order?", stored.Message)
	assert.False(t, stored.IsRead)
}

func TestContactController_SubmitMessage_MissingFields(t *testing.T) {
	router, _ := setupContactControllerTest(t)

	tests := []struct {
		name    string
		reqBody map[string]interface{}
	}{
		{name: "Missing name", reqBody: map[string]interface{}{"email": "a@b.com", "message": "hi"}},
		{name: "Missing email", reqBody: map[string]interface{}{"name": "A", "message": "hi"}},
		{name: "Missing message", reqBody: map[string]interface{}{"name": "A", "email": "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/contact", tt.reqBody)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Name, email, and message are required", response["error"])
		})
	}
}
