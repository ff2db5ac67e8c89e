package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yuin/goldmark"
)

//go:embed docs/api.md
var apiDocs []byte

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/health", s.healthHandler)
	e.GET("/docs", s.docsHandler)

	api := e.Group("/api/v1")
	api.POST("/compute", s.computeHandler)
	api.GET("/ws/progress", s.progressHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}

// progressStages are the pipeline stage names a client can display
// next to a long-running compute call (spec §3 A->C->D->E->F).
var progressStages = []string{"parse", "grid", "compute", "contour", "assemble"}

// progressHandler streams illustrative stage-progress events over a
// websocket, grounded on the teacher's websocketHandler (Accept,
// CloseRead, Write loop). It is a demo surface the client can open
// alongside a compute request; it does not track any particular
// request's real progress.
func (s *Server) progressHandler(c echo.Context) error {
	w := c.Response().Writer
	r := c.Request()
	socket, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Errorf("could not open progress websocket: %v", err)
		return nil
	}
	defer socket.Close(websocket.StatusGoingAway, "server closing websocket")

	ctx := socket.CloseRead(r.Context())

	for i, stage := range progressStages {
		payload := fmt.Sprintf(`{"stage":%q,"done":%t}`, stage, i == len(progressStages)-1)
		if err := socket.Write(ctx, websocket.MessageText, []byte(payload)); err != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(300 * time.Millisecond):
		}
	}
	return nil
}

func (s *Server) docsHandler(c echo.Context) error {
	var buf bytes.Buffer
	if err := goldmark.Convert(apiDocs, &buf); err != nil {
		return c.String(http.StatusInternalServerError, "could not render documentation")
	}
	return c.HTML(http.StatusOK, buf.String())
}
