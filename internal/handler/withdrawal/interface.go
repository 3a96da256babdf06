package withdrawal

import "github.com/gin-gonic/gin"

type IHandler interface {
	Submit(c *gin.Context)
	Get(c *gin.Context)
}
