package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
)

// respondError writes the error envelope for err. Unclassified failures get
// the operation prefix so the client sees which call failed, not a bare
// driver message.
func respondError(c echo.Context, err error, internalPrefix string) error {
	status := errors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = internalPrefix + ": " + message
	}
	return c.JSON(status, dto.Error(message))
}
