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

type ISubmissionController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type SubmissionController struct {
	service services.ISubmissionService
}

func NewSubmissionController(service services.ISubmissionService) ISubmissionController {
	return &SubmissionController{service: service}
}

func (c *SubmissionController) Create(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	var input dto.CreateSubmissionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	submissionID, err := c.service.Create(input, username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("Create submission error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSubmissionAdded, "id": submissionID})
}

// FindAll lists the user's submissions; an item_id query parameter narrows
// the result to one item.
func (c *SubmissionController) FindAll(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	submissions, err := c.service.FindAll(username, ctx.Query("item_id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
			return
		}
		log.Printf("List submissions error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (c *SubmissionController) FindById(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	submission, err := c.service.FindById(ctx.Param("id"), username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrSubmissionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSubmissionNotFound})
		default:
			log.Printf("Get submission error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"submission": submission})
}

func (c *SubmissionController) Update(ctx *gin.Context) {
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
		case errors.Is(err, services.ErrSubmissionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSubmissionNotFound})
		case errors.Is(err, services.ErrSubmissionForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrSubmissionUpdateForbidden})
		default:
			log.Printf("Update submission error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSubmissionUpdated})
}

func (c *SubmissionController) Delete(ctx *gin.Context) {
	username, ok := currentUsername(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Param("id"), username); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case errors.Is(err, services.ErrSubmissionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrSubmissionNotFound})
		case errors.Is(err, services.ErrSubmissionForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrSubmissionDeleteForbidden})
		default:
			log.Printf("Delete submission error: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgSubmissionDeleted})
}
