package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/models"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
)

// Envelope mirrors models.APIResponse for locally produced payloads and adds an error block.
type Envelope struct {
	Success    bool               `json:"success"`
	Status     int                `json:"status"`
	Message    string             `json:"message"`
	Timestamp  string             `json:"timestamp"`
	Data       interface{}        `json:"data"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Error      *appErrors.Error   `json:"error,omitempty"`
}

var now = time.Now

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination) {
	noStore(c)
	c.JSON(status, Envelope{
		Success:    true,
		Status:     status,
		Message:    http.StatusText(status),
		Timestamp:  timestamp(),
		Data:       data,
		Pagination: pagination,
	})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	noStore(c)
	c.JSON(appErr.Status, Envelope{
		Success:   false,
		Status:    appErr.Status,
		Message:   appErr.Message,
		Timestamp: timestamp(),
		Error:     appErr,
	})
}

// Passthrough writes an upstream JSON body byte-for-byte with status 200.
func Passthrough(c *gin.Context, body []byte) {
	noStore(c)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

func timestamp() string {
	return now().UTC().Format(time.RFC3339)
}
