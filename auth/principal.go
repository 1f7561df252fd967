package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal"

// Principal is the authenticated caller of a single request.
type Principal struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

func SetPrincipal(c *gin.Context, principal *Principal) {
	c.Set(principalKey, principal)
}

func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok
}
