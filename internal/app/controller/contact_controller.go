package controller

import (
	"net/http"

	"github.com/fara3/fara3-backend/internal/app/service"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage stores a contact form submission
// POST /api/contact
func (ctrl *ContactController) SubmitMessage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid contact request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "Name, email, and message are required")
		return
	}

	message, err := ctrl.contactService.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		log.Error("Failed to submit contact message", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c)
		return
	}

	log.Info("Contact message received", map[string]interface{}{
		"message_id": message.ID,
		"email":      req.Email,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
	})
}
