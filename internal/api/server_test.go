package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vox/pkg/vox"
)

func newTestEcho() *echo.Echo {
	s := NewServer(nil)
	s.newID = func() string { return "req-1" }
	e := echo.New()
	s.Register(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body.Error
}

func TestEncodeScene(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doRequest(t, e, http.MethodPost, "/v1/vox",
		`{"size":[16,16,16],"voxels":[[0,0,0,1]],"palette":"gray","output":{"prefix":"cube"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMEOctetStream {
		t.Fatalf("content type: %q", ct)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="cube-req-1.vox"` {
		t.Fatalf("content disposition: %q", got)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-1" {
		t.Fatalf("request id: %q", got)
	}

	want, err := vox.Encode(vox.Scene{
		Size:    vox.Size{X: 16, Y: 16, Z: 16},
		Voxels:  []vox.Voxel{{ColorIndex: 1}},
		Palette: vox.GrayPalette(),
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(rec.Body.Bytes(), want) {
		t.Fatalf("body does not match encoder output (%d vs %d bytes)", rec.Body.Len(), len(want))
	}
}

func TestEncodeSceneErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		typ  string
	}{
		{"malformed json", `{"size":`, "invalid_scene"},
		{"unknown field", `{"size":[1,1,1],"extra":1}`, "invalid_scene"},
		{"size out of range", `{"size":[300,1,1]}`, "size_out_of_range"},
		{"color index zero", `{"size":[2,2,2],"voxels":[[0,0,0,0]]}`, "color_index_out_of_range"},
		{"color index too large", `{"size":[2,2,2],"voxels":[[0,0,0,257]]}`, "color_index_out_of_range"},
		{"short palette", `{"size":[2,2,2],"colors":[[1,2,3,4]]}`, "palette_size_mismatch"},
	}

	e := newTestEcho()
	for _, tc := range tests {
		rec := doRequest(t, e, http.MethodPost, "/v1/vox", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d body=%s", tc.name, rec.Code, rec.Body.String())
			continue
		}
		if got := decodeError(t, rec); got.Type != tc.typ {
			t.Errorf("%s: error type %q, want %q (%s)", tc.name, got.Type, tc.typ, got.Message)
		}
	}
}

func TestEncodeSceneTooLarge(t *testing.T) {
	t.Parallel()

	s := NewServer(nil)
	s.maxBodyBytes = 16
	e := echo.New()
	s.Register(e)

	rec := doRequest(t, e, http.MethodPost, "/v1/vox", `{"size":[1,1,1],"voxels":[]}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestEcho(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
