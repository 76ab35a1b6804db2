package handlers

import (
	"net/http"

	"github.com/ao561/cues-hackathon/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the rolling group transcript. Posting a message that
// mentions the trigger word tells the client to launch a plan request.
type ChatHandler struct {
	Store *chat.Store
}

// NewChatHandler builds the chat endpoints around a transcript store.
func NewChatHandler(store *chat.Store) *ChatHandler {
	return &ChatHandler{Store: store}
}

// PostMessage appends a message and reports whether it triggered planning.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var msg chat.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if msg.Sender == "" || msg.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender and message are required"})
		return
	}

	triggered, err := h.Store.Append(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"triggered": triggered})
}

// GetHistory returns the recent transcript window, oldest first.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	messages, err := h.Store.Recent(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
