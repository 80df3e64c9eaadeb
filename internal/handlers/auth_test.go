package handlers

import (
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trellium-dev/trellium/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	return r
}

func userRows(id uint, name, email, passwordHash string, isAdmin bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email", "password_hash", "is_admin"}).
		AddRow(id, time.Now(), time.Now(), name, email, passwordHash, isAdmin)
}

// bcryptHashOf matches an insert argument that is a bcrypt hash of the given
// plaintext, and therefore never the plaintext itself.
type bcryptHashOf struct {
	plaintext string
}

func (m bcryptHashOf) Match(v driver.Value) bool {
	hash, ok := v.(string)
	if !ok || hash == m.plaintext {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(m.plaintext)) == nil
}

func TestRegister(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Alice", "alice@example.com", bcryptHashOf{plaintext: "hunter22"}, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/register",
		`{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, false, body["is_admin"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rec.Body.String(), "hunter22")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/register",
		`{"email": "alice@example.com", "password": "hunter22"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email address already in use")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterMissingFields(t *testing.T) {
	setupMockDB(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "no password", body: `{"email": "alice@example.com"}`},
		{name: "no email", body: `{"password": "hunter22"}`},
		{name: "bad email", body: `{"email": "not-an-email", "password": "hunter22"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	mock := setupMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
		WillReturnRows(userRows(7, "Alice", "alice@example.com", string(hash), true))

	rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/login",
		`{"email": "alice@example.com", "password": "hunter22"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Email   string `json:"email"`
		Token   string `json:"token"`
		IsAdmin bool   `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "alice@example.com", body.Email)
	assert.True(t, body.IsAdmin)

	token, err := auth.VerifyJWT(body.Token)
	require.NoError(t, err)

	userID, err := auth.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(userRows(7, "Alice", "alice@example.com", string(hash), false))

		rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/login",
			`{"email": "alice@example.com", "password": "wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid email or password"}`, rec.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email", "password_hash", "is_admin"}))

		rec := performRequest(newAuthRouter(), http.MethodPost, "/auth/login",
			`{"email": "nobody@example.com", "password": "hunter22"}`)

		// Identical response either way, so the endpoint does not reveal
		// whether the email exists.
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid email or password"}`, rec.Body.String())
	})
}
