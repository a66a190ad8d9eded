// controller/user_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/service"
	"github.com/andreyques41/lyfter-store/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", uc.RegisterUser)
		users.POST("/login", uc.Login)
		users.PUT("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
		users.GET("/:id", uc.GetUser)
		users.GET("", uc.GetAllUsers)
	}
}

// RegisterUser endpoint
func (uc *UserController) RegisterUser(c *gin.Context) {
	var registration model.UserRegistration
	if err := c.ShouldBindJSON(&registration); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", lyfter_errors.ErrInvalidUserData)
		return
	}
	actorID := util.GetActorFromContext(c)

	user, err := uc.userService.RegisterUser(c, registration, actorID)
	if err != nil {
		switch {
		case errors.Is(err, lyfter_errors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		case errors.Is(err, lyfter_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to register user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login endpoint
func (uc *UserController) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials payload", err)
		return
	}

	user, err := uc.userService.Authenticate(c, credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrUnauthorized) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to authenticate", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	user.ID = userID
	actorID := util.GetActorFromContext(c)

	updatedUser, err := uc.userService.UpdateUser(c, user, actorID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update user", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedUser)
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	actorID := util.GetActorFromContext(c)

	if err := uc.userService.DeleteUser(c, userID, actorID); err != nil {
		if errors.Is(err, lyfter_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAllUsers endpoint
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.userService.GetAllUsers(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
