package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vjay-git/shivashray/services"
	"github.com/vjay-git/shivashray/utils"
)

type AuthController struct {
	Auth      *services.AuthService
	JWTSecret string
}

func NewAuthController(auth *services.AuthService, jwtSecret string) *AuthController {
	return &AuthController{Auth: auth, JWTSecret: jwtSecret}
}

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload", "details": err.Error()})
		return
	}

	user, err := ctrl.Auth.Register(services.RegisterInput{
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
		Phone:    payload.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.CreateToken(ctrl.JWTSecret, user.ID, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload"})
		return
	}

	user, err := ctrl.Auth.Authenticate(payload.Email, payload.Password)
	if err != nil {
		// Always the same body for bad credentials.
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "error": "invalid credentials"})
		return
	}

	token, err := utils.CreateToken(ctrl.JWTSecret, user.ID, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
