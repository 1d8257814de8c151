package handlers

import (
	"errors"
	"log"

	"github.com/gomesdev1/portfolio-api/internal/repository"
	"github.com/gomesdev1/portfolio-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondError writes the client-facing status for err. Store failures and
// corrupt stored documents are logged and reported with a fixed message.
func respondError(c *drift.Context, err error, entity string) {
	var reqErr *services.RequestError
	switch {
	case errors.As(err, &reqErr):
		c.BadRequest(reqErr.Error())
	case errors.Is(err, repository.ErrInvalidID):
		c.BadRequest("invalid " + entity + " id")
	case errors.Is(err, repository.ErrNotFound):
		c.NotFound(entity + " not found")
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.InternalServerError("database error")
	}
}
