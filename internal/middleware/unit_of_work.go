package middleware

import (
	portsrepo "github.com/SscSPs/vetclinic_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// UnitOfWork opens one unit of work per request. Repositories called with the
// request context stage their writes into it.
func UnitOfWork(scope portsrepo.UnitOfWorkScope) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.NewScope(c.Request.Context()))
		c.Next()
	}
}
