package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func setupAuthControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo)
	authController := NewAuthController(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", authController.Register)
	router.POST("/auth/login", authController.Login)

	return router, testDB
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_Register_Success(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "User registered successfully", response["message"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "test@example.com", user["email"])
	assert.NotContains(t, user, "password")

	var stored model.User
	require.NoError(t, testDB.Where("email = ?", "test@example.com").First(&stored).Error)
	assert.True(t, stored.IsActive)
}

func TestAuthController_Register_MissingFields(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	tests := []struct {
		name    string
		reqBody map[string]interface{}
	}{
		{name: "Missing name", reqBody: map[string]interface{}{"email": "a@b.com", "password": "x"}},
		{name: "Missing email", reqBody: map[string]interface{}{"name": "A", "password": "x"}},
		{name: "Missing password", reqBody: map[string]interface{}{"name": "A", "email": "a@b.com"}},
		{name: "Empty body", reqBody: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/auth/register", tt.reqBody)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Name, email, and password are required", response["error"])
		})
	}
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	first := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "First", Email: "dup@example.com", Password: "pass1",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	w := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Second", Email: "dup@example.com", Password: "pass2",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User with this email already exists", response["error"])
}

func TestAuthController_Login_Success(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Test User", Email: "test@example.com", Password: "secret123",
	})

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "test@example.com", Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "Login successful", response["message"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "Test User", user["name"])
	assert.NotContains(t, user, "password")
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Test User", Email: "test@example.com", Password: "secret123",
	})

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "test@example.com", Password: "wrongpass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid email or password", response["error"])
}

func TestAuthController_Login_UnknownEmail(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "missing@example.com", Password: "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Invalid email or password", response["error"])
}

func TestAuthController_Login_DeactivatedAccount(t *testing.T) {
	router, testDB := setupAuthControllerTest(t)

	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Test User", Email: "test@example.com", Password: "secret123",
	})
	require.NoError(t, testDB.Model(&model.User{}).
		Where("email = ?", "test@example.com").
		Update("is_active", false).Error)

	w := postJSON(t, router, "/auth/login", LoginRequest{
		Email: "test@example.com", Password: "secret123",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Account is deactivated", response["error"])
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postJSON(t, router, "/auth/login", map[string]interface{}{
		"email": "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Email and password are required", response["error"])
}
