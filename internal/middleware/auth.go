package middleware

import (
	"net/http"
	"strings"

	"barclube/internal/apierror"
	"barclube/internal/model"
	"barclube/internal/service"

	"github.com/gin-gonic/gin"
)

const UsuarioKey = "usuario"

// BearerAuth resolves the opaque bearer token on every protected route and
// stores the acting user in the request context. Absent or unknown tokens
// are indistinguishable to the client.
func BearerAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.ErrUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		u, err := authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.ErrUnauthorized)
			return
		}

		c.Set(UsuarioKey, u)
		c.Next()
	}
}

// GetUsuario retrieves the authenticated user from the Gin context.
func GetUsuario(c *gin.Context) *model.Usuario {
	u, _ := c.MustGet(UsuarioKey).(*model.Usuario)
	return u
}
