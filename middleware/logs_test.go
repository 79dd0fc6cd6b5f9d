package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareWritesJSONLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "requests.log")

	app := fiber.New()
	app.Use(LoggingMiddleware(LogConfig{
		File:        true,
		LogFilePath: logPath,
		Format:      "json",
		SkipPaths:   []string{"/health"},
	}))
	app.Get("/employees", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err := app.Test(httptest.NewRequest("GET", "/employees", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry LogData
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "GET", entry.Method)
	assert.Equal(t, "/employees", entry.Path)
	assert.Equal(t, fiber.StatusOK, entry.Status)
}

func TestErrorLoggerOnlyLogsFailures(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "errors.log")

	app := fiber.New()
	app.Use(ErrorLogger(logPath))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/broken", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad input") })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/broken", nil))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry LogData
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "/broken", entry.Path)
	assert.Equal(t, fiber.StatusBadRequest, entry.Status)
	assert.Equal(t, "bad input", entry.Error)
}

func TestRecoveryReturns500(t *testing.T) {
	app := fiber.New()
	app.Use(Recovery())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFormatTextLog(t *testing.T) {
	line := formatTextLog(LogData{Method: "POST", Path: "/overtime", Status: 400, Error: "hours must be a number"})
	assert.Contains(t, line, "POST /overtime")
	assert.Contains(t, line, "error=hours must be a number")
}
