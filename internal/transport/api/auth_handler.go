package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService AuthServicer
}

func NewAuthHandler(authService AuthServicer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginParams struct {
	Username string `binding:"required,min=1,max=255" json:"username"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Login POST AuthRouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
// Неизвестный юзернейм и неверный пароль намеренно дают одинаковый ответ,
// иначе по разнице ответов можно перебирать юзернеймы.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.authService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Balance:   user.Balance.InexactFloat64(),
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	})
}

type ChangePasswordParams struct {
	UserID      int64  `binding:"required"              json:"userId"`
	OldPassword string `binding:"required"              json:"oldPassword"`
	NewPassword string `binding:"required,min=6,max=255" json:"newPassword"`
}

// ChangePassword POST AuthRouteGroup + ChangePasswordRoute. Смена пароля по старому паролю.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var params ChangePasswordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.authService.ChangePassword(ctx, service.ChangePasswordArgs{
		UserID:      params.UserID,
		OldPassword: params.OldPassword,
		NewPassword: params.NewPassword,
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid user"})
		case errors.Is(err, domain.ErrPasswordMissMatch):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid old password"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
