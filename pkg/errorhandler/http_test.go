package errorhandler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: NewHTTPErrorHandler()})
	app.Get("/public", func(c *fiber.Ctx) error {
		return errors.Wrap(errs.NewPublicError("token not found"), "lookup")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusTeapot, "short and stout")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return errors.New("connection refused")
	})

	testCases := []struct {
		path     string
		status   int
		expected string
	}{
		{path: "/public", status: http.StatusBadRequest, expected: `{"error":"token not found"}`},
		{path: "/fiber", status: http.StatusTeapot, expected: `{"error":"short and stout"}`},
		{path: "/internal", status: http.StatusInternalServerError, expected: `{"error":"Internal Server Error"}`},
		{path: "/missing", status: http.StatusNotFound, expected: `{"error":"Cannot GET /missing"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.JSONEq(t, tc.expected, string(body))
		})
	}
}
