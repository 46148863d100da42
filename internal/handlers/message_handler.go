package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agriconnect-backend/internal/dto"
	"agriconnect-backend/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send - POST /send-message
func (h *MessageHandler) Send(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.messageService.Send(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{Success: true, Message: "Message sent successfully!"})
}

// Comments - GET /get-comments?email=&product_name=
func (h *MessageHandler) Comments(c *gin.Context) {
	id, err := caller(c)
	if err != nil {
		respondError(c, err)
		return
	}

	msgs, err := h.messageService.ListForProducer(c.Request.Context(), id, c.Query("email"), c.Query("product_name"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.MessageListResponse{Success: true, Messages: msgs}
	if len(msgs) == 0 {
		resp.Message = "No comments found"
	}
	c.JSON(http.StatusOK, resp)
}
