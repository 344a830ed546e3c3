// Package handlers wires the JSON API onto the PocketBase router. Handlers
// stay thin: decode input, call a service, persist through the repositories
// and encode the result.
package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func badRequest(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

func serverError(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}

// projectIDFrom pulls the :id path value, the project identifier on every
// project-scoped route.
func projectIDFrom(e *core.RequestEvent) string {
	return e.Request.PathValue("id")
}
