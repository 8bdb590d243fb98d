package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/response"
)

// UserIDHeader carries the caller's identity, supplied by the gateway
// in front of this service.
const UserIDHeader = "X-Sharer-User-Id"

// callerID extracts the caller's user id from the identity header.
// On a missing or malformed header it writes a 400 and returns false.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(UserIDHeader)
	if raw == "" {
		response.BadRequest(c, "missing "+UserIDHeader+" header")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "invalid "+UserIDHeader+" header")
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads the from/size query parameters with defaults
// 0/10. Negative from or non-positive size is a 400.
func parsePagination(c *gin.Context) (int, int, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		response.BadRequest(c, "invalid from parameter")
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		response.BadRequest(c, "invalid size parameter")
		return 0, 0, false
	}
	return from, size, true
}
