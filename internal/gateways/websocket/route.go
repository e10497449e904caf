package websocket

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, dispatcher *Dispatcher) {
	rg.GET("/ws", dispatcher.ServeWS)
}
