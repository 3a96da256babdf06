package wallet

import "github.com/gin-gonic/gin"

type IHandler interface {
	// Balance returns the on chain balance of an address
	Balance(c *gin.Context)
}
