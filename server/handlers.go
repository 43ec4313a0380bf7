package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/timeutil"
	"github.com/ayoisaiah/zenfocus/stats"
)

// Repository is the storage behind the aggregator endpoints.
type Repository interface {
	Record(ctx context.Context, userID, date string) (string, error)
	Range(ctx context.Context, userID, start, end string) ([]activity.Record, error)
	All(ctx context.Context, userID string) ([]activity.Record, error)
}

type sessionHandler struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type recordRequest struct {
	Date string `json:"date"`
}

func (h *sessionHandler) record(c *gin.Context) {
	var req recordRequest

	// an empty body records against the server's date
	if c.Request.ContentLength != 0 {
		err := c.ShouldBindJSON(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			writeError(c, badRequest("invalid_json", "invalid request body"))
			return
		}
	}

	if req.Date == "" {
		req.Date = timeutil.Today(h.now())
	}

	if !timeutil.ValidDate(req.Date) {
		writeError(c, badRequest("invalid_date", "date must be YYYY-MM-DD"))
		return
	}

	user := currentUser(c)

	id, err := h.repo.Record(c.Request.Context(), user.ID, req.Date)
	if err != nil {
		h.log.Error("recording session failed", slog.String("user", user.ID), slog.Any("error", err))
		writeError(c, internalError())

		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *sessionHandler) list(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	user := currentUser(c)

	var (
		records []activity.Record
		err     error
	)

	switch {
	case start == "" && end == "":
		records, err = h.repo.All(c.Request.Context(), user.ID)
	case !timeutil.ValidDate(start) || !timeutil.ValidDate(end):
		writeError(c, badRequest("invalid_range", "start and end must both be YYYY-MM-DD"))
		return
	case start > end:
		writeError(c, badRequest("invalid_range", "start must not be after end"))
		return
	default:
		records, err = h.repo.Range(c.Request.Context(), user.ID, start, end)
	}

	if err != nil {
		h.log.Error("listing sessions failed", slog.String("user", user.ID), slog.Any("error", err))
		writeError(c, internalError())

		return
	}

	if records == nil {
		records = []activity.Record{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": records})
}

func (h *sessionHandler) stats(c *gin.Context) {
	today := c.DefaultQuery("today", timeutil.Today(h.now()))
	if !timeutil.ValidDate(today) {
		writeError(c, badRequest("invalid_date", "today must be YYYY-MM-DD"))
		return
	}

	user := currentUser(c)

	records, err := h.repo.All(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("loading stats failed", slog.String("user", user.ID), slog.Any("error", err))
		writeError(c, internalError())

		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats.Compute(records, today)})
}
