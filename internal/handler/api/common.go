package api

import (
	"net/http"

	"courtbook/internal/handler/middleware"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentActor reads the authenticated caller set by RequireAuth. A missing
// actor on a protected route is a wiring bug, reported as 500.
func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role}, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
