package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_getSignedOut(t *testing.T) {
	store := &MockPreferencesUseCase{}
	handler := NewProfileHandler(store)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/profile", nil)

	store.On("Profile").Return(nil, domain.ErrNotLoggedIn)
	store.On("Theme").Return(domain.ThemeLight)
	store.On("Language").Return(domain.LanguageEnglish)
	store.On("ShouldShowTour").Return(false)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response profileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Nil(t, response.User)
	assert.Equal(t, domain.ThemeLight, response.Theme)
	store.AssertExpectations(t)
}

func TestProfileHandler_getStoreFailure(t *testing.T) {
	store := &MockPreferencesUseCase{}
	handler := NewProfileHandler(store)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/profile", nil)

	store.On("Profile").Return(nil, errors.New("corrupt profile"))

	handler.get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "corrupt profile")
	store.AssertNotCalled(t, "Theme")
	store.AssertExpectations(t)
}
