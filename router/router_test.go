package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/config"
	"github.com/user/fitfusion-go/store/memory"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Database: &config.DatabaseConfig{Driver: config.DriverMemory},
		Auth: &config.AuthConfig{
			JWTSecret:           "router-test-secret",
			AccessTokenDuration: time.Hour,
			Issuer:              "fitfusion",
		},
		Server: &config.ServerConfig{Port: "5555", AllowedOrigins: []string{"*"}},
		Log:    &config.LogConfig{Level: "info", Env: "test"},
	}
}

type client struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newClient(t *testing.T) *client {
	return &client{t: t, handler: New(testConfig(), memory.New())}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *client) login(username, password string) {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"`+password+`"}`)
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, "/login", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(c.t, body.AccessToken)
	c.token = body.AccessToken
}

func TestWelcome(t *testing.T) {
	rec := newClient(t).do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, FitFusion!", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newClient(t)
	paths := []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodGet, "/exercises"},
		{http.MethodPost, "/exercises"},
		{http.MethodGet, "/workouts"},
		{http.MethodDelete, "/workouts/1"},
		{http.MethodGet, "/userworkouts"},
		{http.MethodPut, "/workouts/1"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := c.do(p.method, p.path, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	c.token = "not.a.jwt"
	rec := c.do(http.MethodGet, "/workouts", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWorkoutFlow(t *testing.T) {
	c := newClient(t)
	c.login("alice", "s3cret")

	rec := c.do(http.MethodPost, "/workouts", `{"name":"Leg Day","date":"2024-01-15","duration":45,"type":"strength"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Workout created successfully","id":1}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/workouts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Leg Day","date":"2024-01-15","duration":45,"type":"strength"}`, rec.Body.String())

	rec = c.do(http.MethodPut, "/workouts/1", `{"name":"Arm Day"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = c.do(http.MethodGet, "/workouts/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Workout not found"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/workouts", `{"name":"Leg Day","date":"15/01/2024","duration":45,"type":"strength"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodDelete, "/workouts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Workout deleted successfully"}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/workouts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestExerciseFlow(t *testing.T) {
	c := newClient(t)
	c.login("bob", "pw")

	rec := c.do(http.MethodPost, "/exercises", `{"name":"Squat","description":"Back squat"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPut, "/exercises/1", `{"description":"Front squat"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Exercise updated successfully"}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/exercises/1", "")
	assert.JSONEq(t, `{"id":1,"name":"Squat","description":"Front squat"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/exercises", `{"name":"Plank"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required fields: description"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/exercises", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodDelete, "/exercises/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersNeverExposePassword(t *testing.T) {
	c := newClient(t)
	c.login("carol", "hunter2")

	rec := c.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"username":"carol","email":"carol@example.com"}]`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestUserWorkoutFlow(t *testing.T) {
	c := newClient(t)
	c.login("dave", "pw")

	rec := c.do(http.MethodPost, "/userworkouts", `{"user_id":1,"workout_id":42}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"UserWorkout created successfully","id":1}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/userworkouts/1", "")
	assert.JSONEq(t, `{"id":1,"user_id":1,"workout_id":42}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/userworkouts", `{"user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAndLoginErrors(t *testing.T) {
	c := newClient(t)

	rec := c.do(http.MethodPost, "/register", `{"username":"erin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required fields: email, password"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/login", `{"username":"nobody","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid username or password"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	rec := newClient(t).do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestFractionalDurationNamesField(t *testing.T) {
	c := newClient(t)
	c.login("frank", "pw")

	rec := c.do(http.MethodPost, "/workouts", `{"name":"Leg Day","date":"2024-01-15","duration":45.5,"type":"strength"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid fields: duration"}`, rec.Body.String())

	rec = c.do(http.MethodGet, "/workouts", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOverlongPasswordIsRejected(t *testing.T) {
	long := strings.Repeat("x", 80)
	multibyte := strings.Repeat("é", 40)

	c := newClient(t)
	rec := c.do(http.MethodPost, "/register", `{"username":"gina","email":"gina@example.com","password":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid fields: password"}`, rec.Body.String())

	rec = c.do(http.MethodPost, "/register", `{"username":"gina","email":"gina@example.com","password":"`+multibyte+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid fields: password"}`, rec.Body.String())

	c.login("gina", "short")
	for _, password := range []string{long, multibyte} {
		rec = c.do(http.MethodPut, "/users/1", `{"password":"`+password+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid fields: password"}`, rec.Body.String())
	}

	// The stored password is unchanged.
	rec = c.do(http.MethodPost, "/login", `{"username":"gina","password":"short"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
