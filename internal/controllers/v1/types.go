package v1

import (
	"github.com/energy-monitoring/backend/internal/energy"
	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindID returns the ID from the URI of the request.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return uuid.Nil, err
	}

	return httputil.UUIDFromString(uri.ID)
}

// service returns the service for the current database connection.
func service() *energy.Service {
	return energy.New(models.NewStore(models.DB))
}

func baseURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

func errorString(err error) *string {
	s := err.Error()
	return &s
}
