package httpserver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"weather-widget/pkg/logger"
)

func call(t *testing.T, app *fiber.App, target string) (int, ErrorResponse) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var e ErrorResponse
	_ = json.Unmarshal(body, &e)
	return resp.StatusCode, e
}

func TestInitFiberServer_ErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	app := InitFiberServer(Options{AppName: "test", Logger: logger.NewZapLogger("test", "test", "debug", &buf)})
	app.Get("/fiber-error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "widget not found")
	})
	app.Get("/plain-error", func(c *fiber.Ctx) error {
		return errors.New("database on fire")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	status, body := call(t, app, "/fiber-error")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "widget not found", body.Error)

	status, body = call(t, app, "/plain-error")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Contains(t, buf.String(), "database on fire")

	status, _ = call(t, app, "/panic")
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, body = call(t, app, "/missing")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NotEmpty(t, body.Error)
}

func TestInitFiberServer_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	app := InitFiberServer(Options{AppName: "test", Logger: logger.NewZapLogger("test", "test", "debug", &buf)})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	status, _ := call(t, app, "/ok")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, buf.String(), `"msg":"request served"`)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestInitFiberServer_HealthChecks(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test"})

	for _, target := range []string{"/manage/health", "/manage/ready"} {
		status, _ := call(t, app, target)
		assert.Equal(t, fiber.StatusOK, status, target)
	}
}

func TestInitFiberServer_SpansNamedByRoute(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	app := InitFiberServer(Options{AppName: "test", TracerProvider: tp})
	app.Get("/widgets/:id", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("id"))
	})

	for _, target := range []string{"/widgets/01HZX4", "/widgets/01HZX5", "/widgets/01HZX6"} {
		status, _ := call(t, app, target)
		require.Equal(t, fiber.StatusOK, status)
	}

	spans := sr.Ended()
	require.Len(t, spans, 3)
	for _, span := range spans {
		assert.Equal(t, "GET /widgets/:id", span.Name())
		assert.Contains(t, span.Attributes(), attribute.String("http.route", "/widgets/:id"))
	}
}
