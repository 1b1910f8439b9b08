// Package testutils wires an in-memory SQLite store and a bare Fiber app
// for handler tests; the schema matches production via the shared
// AutoMigrate list.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "traininghub_backend/internals/databases"
)

// NewTestDB opens a fresh in-memory database with the full schema. Each
// test gets its own named memory store so parallel tests cannot collide.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(database.Tables()...))
	return db
}

// NewTestApp returns a Fiber app with the same error handling defaults as
// production but no middleware chain.
func NewTestApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

// DoJSON performs a request with a JSON body against the app and decodes
// the response envelope into out (when out is non-nil).
func DoJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// Envelope mirrors the helper response shape with a deferred data payload.
type Envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DataAs decodes the envelope payload into dst.
func (e *Envelope) DataAs(t *testing.T, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(e.Data, dst))
}
