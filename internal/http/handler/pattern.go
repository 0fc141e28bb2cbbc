package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patternlab/internal/service"
)

// HealthCheck reports readiness: it requires database connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListPatterns returns catalog metadata with category filter and limit/offset pagination.
func ListPatterns(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, resp := pageParams(c)
		if !ok {
			return resp
		}
		category := c.Query("category")

		res, err := svc.ListPatterns(category, limit, offset)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCategory) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", "invalid category")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetPattern returns a single demo's metadata by name.
func GetPattern(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		meta, err := svc.GetPattern(c.Params("name"))
		if err != nil {
			if errors.Is(err, service.ErrPatternNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pattern not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(meta)
	}
}

// RunPattern executes a demo and returns the stored run with its trace.
func RunPattern(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Run(c.UserContext(), c.Params("name"))
		if err != nil {
			if errors.Is(err, service.ErrPatternNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "pattern not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListRuns returns run history with limit/offset pagination.
func ListRuns(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, resp := pageParams(c)
		if !ok {
			return resp
		}

		res, err := svc.ListRuns(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetRun returns a run record by ID.
func GetRun(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, resp := runID(c)
		if !ok {
			return resp
		}
		run, err := svc.GetRun(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrRunNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "run not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(run)
	}
}

// GetRunTrace reads the archived trace back from object storage.
func GetRunTrace(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, resp := runID(c)
		if !ok {
			return resp
		}
		lines, err := svc.ReadTrace(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrRunNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "run not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": lines})
	}
}

// GetRunTraceURL returns a presigned download URL for the archived trace.
func GetRunTraceURL(svc service.PatternService, expiry time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, resp := runID(c)
		if !ok {
			return resp
		}
		url, err := svc.TraceURL(c.UserContext(), id, expiry)
		if err != nil {
			if errors.Is(err, service.ErrRunNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "run not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"url":            url,
			"expires_in_sec": int(expiry.Seconds()),
		})
	}
}

// DeleteRun removes a run's archived trace and record.
func DeleteRun(svc service.PatternService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, resp := runID(c)
		if !ok {
			return resp
		}
		if err := svc.DeleteRun(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrRunNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "run not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// pageParams parses limit/offset query parameters. When ok is false the
// 400 response has already been written and the handler should return resp.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool, resp error) {
	limitStr := c.Query("limit", "10")
	offsetStr := c.Query("offset", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, true, nil
}

// runID validates the :id path parameter as a UUID. Same convention as pageParams.
func runID(c *fiber.Ctx) (id string, ok bool, resp error) {
	id = c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}
