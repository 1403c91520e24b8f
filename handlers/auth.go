package handlers

import (
	"errors"
	"net/http"

	"urbanhelp/services/user"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes account registration and login.
type AuthHandler struct {
	Service user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration details.", err)
		return
	}

	u, token, err := h.Service.Register(c.Request.Context(), user.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Email is already registered.", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": u})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required.", err)
		return
	}

	u, token, err := h.Service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": u})
}
