// Package api exposes the encoder over HTTP.
package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vox/internal/logger"
	"github.com/samcharles93/vox/internal/scene"
	"github.com/samcharles93/vox/internal/version"
	"github.com/samcharles93/vox/pkg/vox"
)

// DefaultMaxBodyBytes bounds a scene request body.
const DefaultMaxBodyBytes int64 = 64 << 20

const headerRequestID = "X-Request-Id"

type Server struct {
	log          logger.Logger
	maxBodyBytes int64
	newID        func() string
}

func NewServer(log logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		log:          log,
		maxBodyBytes: DefaultMaxBodyBytes,
		newID:        uuid.NewString,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.POST("/v1/vox", s.handleEncode)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.Resolve().String(),
	})
}

// handleEncode accepts a JSON scene and responds with the encoded file.
func (s *Server) handleEncode(c *echo.Context) error {
	id := s.newID()
	log := s.log.With("request_id", id)

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, s.maxBodyBytes+1))
	if err != nil {
		return writeBadRequest(c, "read body: "+err.Error())
	}
	if int64(len(body)) > s.maxBodyBytes {
		return writeError(c, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("scene exceeds %d bytes", s.maxBodyBytes))
	}

	f, err := scene.Decode(bytes.NewReader(body), scene.FormatJSON)
	if err != nil {
		return writeSceneError(c, err)
	}
	sc, err := f.Scene()
	if err != nil {
		return writeSceneError(c, err)
	}
	data, err := vox.Encode(sc)
	if err != nil {
		log.Warn("encode rejected", "error", err)
		return writeSceneError(c, err)
	}

	prefix := strings.TrimSpace(f.Output.Prefix)
	if prefix == "" {
		prefix = "scene"
	}
	name := fmt.Sprintf("%s-%s.vox", prefix, id)
	log.Info("encoded scene", "voxels", len(sc.Voxels), "bytes", len(data))

	h := c.Response().Header()
	h.Set(headerRequestID, id)
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, data)
}
