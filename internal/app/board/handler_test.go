package board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type restFixture struct {
	engine *gin.Engine
	svc    Service
	bus    *utils.EventBus
}

func newRESTFixture(t *testing.T) *restFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := newTestService(newFakeRepo())
	bus := utils.NewEventBus()
	handler := NewHandler(svc, bus, zap.NewNop())

	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), handler)

	return &restFixture{engine: engine, svc: svc, bus: bus}
}

func (f *restFixture) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	f.engine.ServeHTTP(w, req)
	return w
}

func TestGetAllBoardsEndpoint(t *testing.T) {
	f := newRESTFixture(t)

	_, _, err := f.svc.CreateBoard(context.Background(), "demo", "snapshot")
	require.NoError(t, err)

	w := f.do(http.MethodGet, "/api/boards")
	require.Equal(t, http.StatusOK, w.Code)

	var resp BoardListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Boards, 1)
	assert.Equal(t, "demo", resp.Boards[0].Title)
}

func TestGetBoardByIDEndpoint(t *testing.T) {
	f := newRESTFixture(t)

	created, _, err := f.svc.CreateBoard(context.Background(), "demo", "snapshot")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/boards/1")
		require.Equal(t, http.StatusOK, w.Code)

		var got Board
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "snapshot", got.Content)
	})

	t.Run("missing", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/boards/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/boards/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBoardByTitleEndpoint(t *testing.T) {
	f := newRESTFixture(t)

	_, _, err := f.svc.CreateBoard(context.Background(), "demo", "")
	require.NoError(t, err)

	w := f.do(http.MethodGet, "/api/boards/title/demo")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/boards/title/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBoardEndpoint(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		f := newRESTFixture(t)

		created, _, err := f.svc.CreateBoard(context.Background(), "demo", "")
		require.NoError(t, err)

		w := f.do(http.MethodDelete, "/api/boards/1")
		require.Equal(t, http.StatusOK, w.Code)

		_, err = f.svc.GetBoardByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, ErrBoardNotFound)

		// REST deletions go out on the bus so the hub can tell live sessions.
		select {
		case ev := <-f.bus.SubscribeCh():
			assert.Equal(t, "boardDeleted", ev.Event)
		case <-time.After(time.Second):
			t.Fatal("no boardDeleted event published")
		}
	})

	t.Run("by title", func(t *testing.T) {
		f := newRESTFixture(t)

		_, _, err := f.svc.CreateBoard(context.Background(), "demo", "")
		require.NoError(t, err)

		w := f.do(http.MethodDelete, "/api/boards/title/demo")
		require.Equal(t, http.StatusOK, w.Code)

		select {
		case ev := <-f.bus.SubscribeCh():
			assert.Equal(t, "boardDeleted", ev.Event)
		case <-time.After(time.Second):
			t.Fatal("no boardDeleted event published")
		}
	})

	t.Run("missing board", func(t *testing.T) {
		f := newRESTFixture(t)
		w := f.do(http.MethodDelete, "/api/boards/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
