package controllers

import (
	"context"
	"net/http"

	"github.com/Shahriar-Utchas/TrackNFresh-server/models"
	"github.com/Shahriar-Utchas/TrackNFresh-server/utils"

	"github.com/gin-gonic/gin"
)

// UserStore is what the controller needs from the user service.
type UserStore interface {
	Register(ctx context.Context, user models.User) (string, error)
}

type AuthController struct {
	Users UserStore

	// Mint issues a token for a verified email; defaults to utils.GenerateJWT.
	Mint func(email string) (string, error)
}

func NewAuthController(users UserStore) *AuthController {
	return &AuthController{Users: users, Mint: utils.GenerateJWT}
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	id, err := ac.Users.Register(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

type LoginInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	token, err := ac.Mint(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
