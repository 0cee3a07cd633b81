package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run(`access log fields check`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger := logrus.New()
		logger.SetOutput(buf)
		logger.SetFormatter(&logrus.JSONFormatter{})

		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagMethod, TagPath, TagStatus, TagBody},
		}))
		app.Post("/roles/list", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).SendString("nope")
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/roles/list", bytes.NewBufferString(`{"page":1}`)))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "POST", entry[TagMethod])
		require.Equal(t, "/roles/list", entry[TagPath])
		require.Equal(t, float64(fiber.StatusNotFound), entry[TagStatus])
		require.Equal(t, `{"page":1}`, entry[TagBody])
	})

	t.Run(`skip check`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger := logrus.New()
		logger.SetOutput(buf)

		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagPath},
			Skip:   func(path string) bool { return path == "/health" },
		}))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Nil(t, err)
		require.Equal(t, 0, buf.Len())
	})

	t.Run(`truncate check`, func(t *testing.T) {
		long := bytes.Repeat([]byte("a"), maxBodyLen+10)
		require.Len(t, truncate(long), maxBodyLen+3)
		require.Equal(t, "short", truncate([]byte("short")))
	})
}
