package controllers

import (
	"errors"
	"gin-wardrobe/constants"
	"gin-wardrobe/dto"
	"gin-wardrobe/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUsername returns the identity the auth middleware stored on the
// context, aborting when a route was wired without it.
func currentUsername(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get("username")
	if !exists {
		ctx.AbortWithStatus(http.StatusForbidden)
		return "", false
	}
	username, ok := value.(string)
	if !ok {
		ctx.AbortWithStatus(http.StatusForbidden)
		return "", false
	}
	return username, true
}

type IUserController interface {
	Me(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	DeleteMe(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

// Me returns the stored user document for the authenticated user.
func (c *UserController) Me(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	user, err := c.service.GetDetails(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Get user details error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) UpdateMe(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	if err := c.service.Update(username, input); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Update user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgUserUpdated})
}

func (c *UserController) DeleteMe(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(username); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Delete user error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgUserDeleted})
}
