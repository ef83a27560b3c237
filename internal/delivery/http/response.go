package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cardshop/internal/models"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// newCodedErrorResponse carries a machine-readable code so the UI can
// distinguish failures that need operator action (restock) from retries.
func newCodedErrorResponse(c *gin.Context, statusCode int, code, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message, Code: code})
}

type orderView struct {
	ID          string     `json:"id"`
	OrderNo     string     `json:"order_no"`
	Contact     string     `json:"contact"`
	PaymentID   string     `json:"payment_id"`
	Remark      string     `json:"remark"`
	Status      string     `json:"status"`
	FileID      *string    `json:"file_id"`
	FileContent *string    `json:"file_content"`
	CreatedAt   time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func toOrderView(o models.Order) orderView {
	return orderView(o)
}

func toOrderViews(orders []models.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return out
}

type fileView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsSold    bool      `json:"is_sold"`
	OrderID   *string   `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toFileViews(files []models.File) []fileView {
	out := make([]fileView, 0, len(files))
	for _, f := range files {
		out = append(out, fileView(f))
	}
	return out
}
