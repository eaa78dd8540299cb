package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/middlewares"
	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

type UserController struct {
	Auth AuthService
}

func NewUserController(auth AuthService) *UserController {
	return &UserController{Auth: auth}
}

type authResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

// Register creates an account and logs it in.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("All fields are required"))
		return
	}

	user, token, err := uc.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

// Login exchanges username and password for a session token.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Username and password are required"))
		return
	}

	user, token, err := uc.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// Verify runs behind AuthMiddleware and echoes the token's user.
func (uc *UserController) Verify(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError("Invalid token", nil))
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"user": user.Public()})
}
