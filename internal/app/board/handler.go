package board

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
	GetBoardByID(c *gin.Context)
	GetBoardByTitle(c *gin.Context)
	DeleteBoardByID(c *gin.Context)
	DeleteBoardByTitle(c *gin.Context)
}

type handler struct {
	service  Service
	eventBus *utils.EventBus
	logger   *zap.SugaredLogger
}

func NewHandler(service Service, eventBus *utils.EventBus, logger *zap.Logger) Handler {
	return &handler{
		service:  service,
		eventBus: eventBus,
		logger:   logger.Sugar(),
	}
}

// @Summary Get all boards
// @Description Get a list of all boards with their canvas content
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {object} BoardListResponse
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.GetAllBoards(c.Request.Context())
	if err != nil {
		h.logger.Errorw("Failed to fetch boards", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, BoardListResponse{Boards: boards})
}

// @Summary Get board by id
// @Description Get a specific board by its identifier
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} Board
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [get]
func (h *handler) GetBoardByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	board, err := h.service.GetBoardByID(c.Request.Context(), id)
	if err != nil {
		h.respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Get board by title
// @Description Get a specific board by its title
// @Tags Board
// @Accept json
// @Produce json
// @Param title path string true "Board title"
// @Success 200 {object} Board
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/title/{title} [get]
func (h *handler) GetBoardByTitle(c *gin.Context) {
	board, err := h.service.GetBoardByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Delete board by id
// @Description Delete a board by its identifier
// @Tags Board
// @Accept json
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [delete]
func (h *handler) DeleteBoardByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	if err := h.service.DeleteBoard(c.Request.Context(), id); err != nil {
		h.respondDeleteError(c, err)
		return
	}

	h.eventBus.Publish("boardDeleted", map[string]interface{}{"boardId": id})
	c.JSON(http.StatusOK, gin.H{"deleted": true, "boardId": id})
}

// @Summary Delete board by title
// @Description Delete a board by its title
// @Tags Board
// @Accept json
// @Produce json
// @Param title path string true "Board title"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/title/{title} [delete]
func (h *handler) DeleteBoardByTitle(c *gin.Context) {
	title := c.Param("title")

	board, err := h.service.GetBoardByTitle(c.Request.Context(), title)
	if err != nil {
		h.respondFetchError(c, err)
		return
	}

	if err := h.service.DeleteBoardByTitle(c.Request.Context(), title); err != nil {
		h.respondDeleteError(c, err)
		return
	}

	h.eventBus.Publish("boardDeleted", map[string]interface{}{"boardId": board.ID})
	c.JSON(http.StatusOK, gin.H{"deleted": true, "boardId": board.ID})
}

func (h *handler) respondFetchError(c *gin.Context, err error) {
	if errors.Is(err, ErrBoardNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
		return
	}
	h.logger.Errorw("Failed to fetch board", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch board"})
}

func (h *handler) respondDeleteError(c *gin.Context, err error) {
	if errors.Is(err, ErrBoardNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
		return
	}
	h.logger.Errorw("Failed to delete board", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete board"})
}
