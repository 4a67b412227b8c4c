package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact-manager-api/internal/application/ports"
	"contact-manager-api/internal/infrastructure/jwt"
	"contact-manager-api/internal/interface/api/rest/middleware"
)

type AccountController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		userService: userService,
		logger:      logger,
	}

	r.DELETE(RouteAccount, middleware.AuthMiddleware(jwtService), ac.DeleteAccountHandler)

	return ac
}

// DeleteAccountHandler removes the authenticated user together with all
// their contacts.
func (ac *AccountController) DeleteAccountHandler(c *gin.Context) {
	userUUID, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := ac.userService.DeleteAccount(c.Request.Context(), userUUID); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete the account"},
		)
		ac.logger.Error("DeleteAccount() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
