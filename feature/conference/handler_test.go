package conference

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *fixture) {
	f := setupFixture(t, nil)
	app := fiber.New()
	NewHandler(f.service).RegisterRoutes(app)
	return app, f
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestHandler_Lifecycle(t *testing.T) {
	app, f := setupTestApp(t)

	resp, body := doJSON(t, app, "POST", "/conferences", `{"title":"Audit","targetLocation":"RoomX","creatorId":1}`)
	require.Equal(t, 201, resp.StatusCode)
	id := body["id"].(string)
	assert.Equal(t, "CREATED", body["status"])

	resp, body = doJSON(t, app, "POST", "/conferences/"+id+"/participants", `{"identifier":"1002"}`)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), body["userId"])

	resp, body = doJSON(t, app, "POST", "/conferences/"+id+"/items", `{"code":"A3","userId":2}`)
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, false, body["belongs"])
	assert.Equal(t, "RoomY", body["actualLocation"])

	resp, body = doJSON(t, app, "POST", "/conferences/"+id+"/items", `{"code":"A3","userId":2}`)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "conflict", body["code"])

	resp, body = doJSON(t, app, "GET", "/conferences/"+id+"/status", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, float64(2), body["totalMissing"])
	assert.Equal(t, float64(1), body["totalForeign"])

	resp, body = doJSON(t, app, "GET", "/conferences/"+id, "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["participants"], 2)
	assert.Len(t, body["items"], 1)

	resp, body = doJSON(t, app, "POST", "/conferences/"+id+"/finalize", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["delivered"])
	assert.Equal(t, 1, f.sink.count())

	resp, body = doJSON(t, app, "POST", "/conferences/"+id+"/finalize", "")
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "invalid_state", body["code"])
	assert.Equal(t, 1, f.sink.count())

	resp, _ = doJSON(t, app, "GET", "/users/2/conferences", "")
	require.Equal(t, 200, resp.StatusCode)
}

func TestHandler_Errors(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"Create Missing Title", "POST", "/conferences", `{"targetLocation":"RoomX","creatorId":1}`, 400, "validation_error"},
		{"Create Malformed", "POST", "/conferences", `{"title":`, 400, "validation_error"},
		{"Get Unknown", "GET", "/conferences/unknown", "", 404, "not_found"},
		{"Status Unknown", "GET", "/conferences/unknown/status", "", 404, "not_found"},
		{"Finalize Unknown", "POST", "/conferences/unknown/finalize", "", 404, "not_found"},
		{"Item Unknown Conference", "POST", "/conferences/unknown/items", `{"code":"A1","userId":1}`, 404, "not_found"},
		{"Participant Unknown Conference", "POST", "/conferences/unknown/participants", `{"identifier":"1002"}`, 404, "not_found"},
		{"History Bad ID", "GET", "/users/abc/conferences", "", 400, "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestLoader(t *testing.T) {
	enabled := NewFeature(Dependencies{Repository: NewGormRepository(setupTestDB(t))})
	assert.Equal(t, "conference", enabled.Name())
	assert.True(t, enabled.IsEnabled())
	assert.NotNil(t, enabled.Service())
	assert.NoError(t, enabled.Load(fiber.New()))

	disabled := NewFeature(Dependencies{})
	assert.False(t, disabled.IsEnabled())
}
