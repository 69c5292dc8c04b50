package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"savanna/config"
	"savanna/constants"
	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/response"
	"savanna/services"
	"savanna/storage"
)

type AuthController struct {
	store *storage.Store
}

func NewAuthController(store *storage.Store) *AuthController {
	return &AuthController{store: store}
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func loginResponseFor(u *models.User) (*dto.LoginResponse, error) {
	token, err := services.GenerateToken(services.UserInfo{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: toUserResponse(u), AccessToken: token}, nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "name, email and password are required")
		return
	}

	user, err := services.RegisterUser(ac.store, input.Name, strings.ToLower(input.Email), input.Password, input.Phone)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := loginResponseFor(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, result)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	user, err := ac.store.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil || !services.CheckPassword(user.Password, input.Password) {
		response.FromError(c, errors.NewAppError(errors.ErrCodeUnauthorized, "invalid email or password", nil))
		return
	}

	result, err := loginResponseFor(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}

// Google exchanges a verified Google ID token for a session, creating the
// account on first sign-in.
func (ac *AuthController) Google(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "idToken is required")
		return
	}

	clientID := config.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		response.FromError(c, errors.NewAppError(errors.ErrCodePaymentConfig, "Google sign-in is not configured", nil))
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, clientID)
	if err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid Google token", err))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidToken, "Google token has no email", nil))
		return
	}

	user, err := ac.store.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		user, err = services.EnsureGuestUser(ac.store, name, strings.ToLower(email), "")
		if err != nil {
			response.FromError(c, err)
			return
		}
	}

	result, err := loginResponseFor(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}

// Check returns the identity behind the presented token.
func (ac *AuthController) Check(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	user, err := ac.store.GetUserByID(userID.(uint))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"user":    toUserResponse(user),
		"isAdmin": user.Role == constants.RoleAdmin,
	})
}

// Logout is a no-op on the server; tokens expire on their own.
func (ac *AuthController) Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "logged out"})
}
