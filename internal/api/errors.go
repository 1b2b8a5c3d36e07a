package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vox/internal/scene"
	"github.com/samcharles93/vox/pkg/vox"
)

type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var errorTypes = []struct {
	err error
	typ string
}{
	{vox.ErrLengthMismatch, "length_mismatch"},
	{vox.ErrColorIndexOutOfRange, "color_index_out_of_range"},
	{vox.ErrPaletteSizeMismatch, "palette_size_mismatch"},
	{vox.ErrSizeOutOfRange, "size_out_of_range"},
	{vox.ErrUnknownChunkID, "unknown_chunk_id"},
	{scene.ErrInvalidScene, "invalid_scene"},
}

func errorType(err error) string {
	for _, et := range errorTypes {
		if errors.Is(err, et.err) {
			return et.typ
		}
	}
	return "invalid_request_error"
}

func writeSceneError(c *echo.Context, err error) error {
	return writeError(c, http.StatusBadRequest, errorType(err), err.Error())
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, typ, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ErrorBody{Type: typ, Message: msg},
	})
}
