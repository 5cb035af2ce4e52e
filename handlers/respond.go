package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaudel/folio/internal/content/repository"
	"github.com/apaudel/folio/internal/content/service"
	"github.com/apaudel/folio/pkg/logger"
)

// Every response uses the {ok, ...} envelope; failures carry a
// user-facing message and never a stack or driver detail.

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "message": message})
}

// failStore maps store-layer errors from the read path. A missing or
// unreachable database gets an actionable message; everything else is
// generic.
func failStore(c *gin.Context, err error) {
	logger.Errorf("content store error: %v", err)
	if errors.Is(err, repository.ErrStoreUnavailable) {
		fail(c, http.StatusInternalServerError, "Content database not found. Create the MongoDB database and try again.")
		return
	}
	fail(c, http.StatusInternalServerError, "Failed to load portfolio content.")
}

// failSave maps save-path errors: the single validation error is a
// 400 with its exact message, store problems are 500s.
func failSave(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		fail(c, http.StatusBadRequest, service.ErrValidation.Error())
		return
	}
	logger.Errorf("content save error: %v", err)
	if errors.Is(err, repository.ErrStoreUnavailable) {
		fail(c, http.StatusInternalServerError, "Content database not found. Create the MongoDB database and try again.")
		return
	}
	fail(c, http.StatusInternalServerError, "Failed to save content.")
}
