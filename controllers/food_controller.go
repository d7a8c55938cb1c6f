package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Shahriar-Utchas/TrackNFresh-server/middlewares"
	"github.com/Shahriar-Utchas/TrackNFresh-server/models"
	"github.com/Shahriar-Utchas/TrackNFresh-server/services"

	"github.com/gin-gonic/gin"
)

// FoodStore is what the controller needs from the food service.
type FoodStore interface {
	Create(ctx context.Context, item models.FoodItem) (string, error)
	All(ctx context.Context) ([]models.FoodItem, error)
	ByOwner(ctx context.Context, email string) ([]models.FoodItem, error)
	ByID(ctx context.Context, id string) (models.FoodItem, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	AddNote(ctx context.Context, id, ownerEmail, note string) (int64, error)
	RemoveNote(ctx context.Context, id, ownerEmail, note string) error
	Delete(ctx context.Context, id, ownerEmail string) error
	NearestExpiring(ctx context.Context) ([]models.FoodItem, error)
	NearestExpiringByOwner(ctx context.Context, email string) ([]models.FoodItem, error)
	Expired(ctx context.Context) ([]models.FoodItem, error)
}

type FoodController struct {
	Store FoodStore
}

func NewFoodController(store FoodStore) *FoodController {
	return &FoodController{Store: store}
}

// POST /food/add
func (fc *FoodController) Add(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, item.FoodCreatorEmail, "add items") {
		return
	}

	id, err := fc.Store.Create(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add food item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GET /food/all
func (fc *FoodController) All(c *gin.Context) {
	items, err := fc.Store.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch food items", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /food/my-items?email=
func (fc *FoodController) MyItems(c *gin.Context) {
	email := c.Query("email")
	if !middlewares.RequireOwner(c, email, "view items") {
		return
	}

	items, err := fc.Store.ByOwner(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch food items", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /food/:id
func (fc *FoodController) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Food id is required"})
		return
	}

	item, err := fc.Store.ByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch food item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /food/update/:id
func (fc *FoodController) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Food id is required"})
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	claimed, _ := fields["foodCreatorEmail"].(string)
	if !middlewares.RequireOwner(c, claimed, "update items") {
		return
	}

	modified, err := fc.Store.UpdateFields(c.Request.Context(), id, fields)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update food item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

type noteInput struct {
	Note             string `json:"note" binding:"required"`
	FoodCreatorEmail string `json:"foodCreatorEmail" binding:"required"`
}

// PUT /food/update/note/:id
func (fc *FoodController) AddNote(c *gin.Context) {
	id := c.Param("id")

	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, input.FoodCreatorEmail, "add notes") {
		return
	}

	modified, err := fc.Store.AddNote(c.Request.Context(), id, input.FoodCreatorEmail, input.Note)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add note", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// DELETE /food/:id/note
func (fc *FoodController) RemoveNote(c *gin.Context) {
	id := c.Param("id")

	var input noteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, input.FoodCreatorEmail, "remove notes") {
		return
	}

	err := fc.Store.RemoveNote(c.Request.Context(), id, input.FoodCreatorEmail, input.Note)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove note", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note removed"})
}

type deleteInput struct {
	FoodCreatorEmail string `json:"foodCreatorEmail" binding:"required"`
}

// DELETE /food/delete/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Food id is required"})
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if !middlewares.RequireOwner(c, input.FoodCreatorEmail, "delete items") {
		return
	}

	err := fc.Store.Delete(c.Request.Context(), id, input.FoodCreatorEmail)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete food item", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// GET /food/nearest-expiring
func (fc *FoodController) NearestExpiring(c *gin.Context) {
	items, err := fc.Store.NearestExpiring(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch expiring items", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /food/expired
func (fc *FoodController) Expired(c *gin.Context) {
	items, err := fc.Store.Expired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch expired items", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
