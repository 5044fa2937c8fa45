package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pos-shop/config"
	"pos-shop/models"
	"pos-shop/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// @Summary Register
// @Description Register a back-office account; the first account becomes admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Credentials"
// @Success 201 {object} models.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx := context.Background()

	var exists int
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email=$1", req.Email).Scan(&exists)
	if exists > 0 {
		c.JSON(409, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	var userCount int
	config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount)
	role := "staff"
	if userCount == 0 {
		role = "admin"
	}

	var user models.User
	err = config.DB.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, role, created_at) VALUES ($1,$2,$3,$4) RETURNING id, email, role, created_at",
		req.Email, hash, role, time.Now()).Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Account registered successfully", "data": user})
}

// @Summary Login
// @Description Login with email and password, returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1",
		req.Email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, User: user},
	})
}
