package api

import (
	"net/http"

	"hotel-ops/internal/handler/middleware"
	"hotel-ops/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondNotFoundOrInternal(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

// actorIDPtr resolves the authenticated actor, nil when the route allows
// anonymous access.
func actorIDPtr(c *gin.Context) (*uuid.UUID, bool) {
	id, ok := middleware.GetActorID(c)
	if !ok {
		return nil, false
	}
	return &id, true
}
