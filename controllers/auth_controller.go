package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/services"
	"furniture-shop/stores"
	"furniture-shop/utils"
)

type AuthController struct {
	auth     *services.AuthService
	sessions *stores.Manager
}

func NewAuthController(auth *services.AuthService, sessions *stores.Manager) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

// Signup godoc
// @Summary Create account
// @Description Register a new customer account and start a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.auth.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Signup failed: " + err.Error()})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Signup failed"})
		return
	}

	ctrl.sessions.Session(user.ID).Profile.Begin(user)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Signup successful",
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Login failed: " + err.Error()})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	// The full profile is refreshed in the background; the response
	// carries the fields known at sign-in time.
	ctrl.sessions.Session(user.ID).Profile.Begin(user)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// Logout godoc
// @Summary User logout
// @Description Clear the active session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctrl.sessions.Session(userID).Profile.Logout()

	c.JSON(200, gin.H{"success": true, "message": "Logged out"})
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get the profile of the current user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	profile := ctrl.sessions.Session(userID).Profile

	user := profile.CurrentUser()
	if user == nil {
		resumed, err := profile.Resume(c.Request.Context(), userID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch user data"})
			return
		}
		user = resumed
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update name, phone and address of the current user
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	profile := ctrl.sessions.Session(userID).Profile
	if profile.CurrentUser() == nil {
		if _, err := profile.Resume(c.Request.Context(), userID); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch user data"})
			return
		}
	}

	user, err := profile.UpdateProfile(c.Request.Context(), req.Name, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, stores.ErrNotLoggedIn) {
			c.JSON(401, gin.H{"success": false, "message": "No active session"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated", "data": user})
}
