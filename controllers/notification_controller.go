package controllers

import (
	"fmt"
	"net/http"

	"github.com/Shahriar-Utchas/TrackNFresh-server/middlewares"
	"github.com/Shahriar-Utchas/TrackNFresh-server/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Store FoodStore

	// Send mails the digest; defaults to utils.SendExpiryEmail.
	Send func(to string, lines []string) error
}

func NewNotificationController(store FoodStore) *NotificationController {
	return &NotificationController{Store: store, Send: utils.SendExpiryEmail}
}

type notifyInput struct {
	FoodCreatorEmail string `json:"foodCreatorEmail" binding:"required,email"`
}

// POST /food/notify-expiring
// Emails the caller every item of theirs expiring within the window.
func (nc *NotificationController) NotifyExpiring(c *gin.Context) {
	var input notifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, input.FoodCreatorEmail, "send notifications") {
		return
	}

	items, err := nc.Store.NearestExpiringByOwner(c.Request.Context(), input.FoodCreatorEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch expiring items", "error": err.Error()})
		return
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%s) expires on %s", item.FoodName, item.Category, item.ExpiryDate))
	}
	if len(lines) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No items expiring soon"})
		return
	}

	if err := nc.Send(input.FoodCreatorEmail, lines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send expiry digest", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expiry digest sent"})
}
