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

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IUserService
}

func NewAuthController(service services.IUserService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	userID, err := c.service.Register(input)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrUsernameExists})
			return
		}
		log.Printf("Register error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgUserCreated, "user_id": userID})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	token, err := c.service.Login(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
}
