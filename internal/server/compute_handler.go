package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"isolux/internal/database"
	"isolux/internal/logger"
	"isolux/internal/models"
	"isolux/internal/photometric"

	"github.com/labstack/echo/v4"
)

// computeHandler implements POST /api/v1/compute: a multipart upload
// of the photometric file plus a JSON params field, mirroring both the
// teacher's c.FormFile/c.FormValue idiom and the shape the original
// FastAPI endpoint exposed (UploadFile + a JSON body field).
func (s *Server) computeHandler(c echo.Context) error {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	iesData, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}

	var req models.ComputeRequest
	if err := json.Unmarshal([]byte(c.FormValue("params")), &req); err != nil {
		return writeError(c, err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	result, err := photometric.Compute(c.Request().Context(), iesData, &req)
	duration := time.Since(start)

	entry := database.ComputeHistory{
		Filename:         fileHeader.Filename,
		Units:            string(req.Units),
		IlluminanceUnits: string(req.TargetIlluminanceUnits),
		DurationMs:       duration.Milliseconds(),
		Succeeded:        err == nil,
		CreatedAt:        time.Now(),
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	} else {
		entry.PointCount = result.PointCount
		entry.LevelCount = len(result.Levels)
	}
	if recordErr := s.db.RecordCompute(c.Request().Context(), entry); recordErr != nil {
		logger.Default.Warnf("failed to record compute history: %v", recordErr)
	}

	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func writeError(c echo.Context, err error) error {
	kind, status, message := classifyError(err)
	return c.JSON(status, errorResponse{Kind: kind, Message: message})
}
