package response

import (
	"errors"
	"net/http"

	"cinepulse/internal/shared/apperror"
	"cinepulse/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError writes err using the status its kind maps to. Store and other
// unexpected failures are reported as 500 without leaking their text.
func RespondError(c *gin.Context, message string, err error) {
	code := apperror.HTTPStatus(err)

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		RespondJSON(c, "error", code, appErr.Message, nil, string(appErr.Kind))
		return
	}

	logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
	RespondJSON(c, "error", http.StatusInternalServerError, message, nil, nil)
}
