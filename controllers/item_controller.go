package controllers

import (
	"errors"
	"gin-wardrobe/constants"
	"gin-wardrobe/dto"
	"gin-wardrobe/models"
	"gin-wardrobe/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) Create(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	itemID, err := c.service.Create(input, username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Create item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemAdded, "id": itemID})
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	items, err := c.service.FindAll(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("List items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func (c *ItemController) FindById(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	item, err := c.service.FindById(ctx.Param("id"), username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
		default:
			log.Printf("Get item error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

func (c *ItemController) Update(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	var updates models.Document
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if err := c.service.Update(ctx.Param("id"), username, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
		case errors.Is(err, services.ErrItemForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrItemUpdateForbidden})
		default:
			log.Printf("Update item error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemUpdated})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Param("id"), username); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrItemNotFound})
		case errors.Is(err, services.ErrItemForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrItemDeleteForbidden})
		default:
			log.Printf("Delete item error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgItemDeleted})
}
