package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/boards", handler.GetAllBoards)
	rg.GET("/boards/:id", handler.GetBoardByID)
	rg.GET("/boards/title/:title", handler.GetBoardByTitle)
	rg.DELETE("/boards/:id", handler.DeleteBoardByID)
	rg.DELETE("/boards/title/:title", handler.DeleteBoardByTitle)
}
