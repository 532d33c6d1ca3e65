package api

import (
	"net/http"

	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/handler/middleware"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	cmds commands.CommentCommands
	q    queries.CommentQueries
}

func NewCommentHandler(cmds commands.CommentCommands, q queries.CommentQueries) *CommentHandler {
	return &CommentHandler{cmds: cmds, q: q}
}

// @Summary List camping comments
// @Description Top-level comments newest first with their replies, keyset paginated
// @Tags comments
// @Produce json
// @Param id path string true "Camping ID"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.CommentPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campings/{id}/comments [get]
func (h *CommentHandler) ListByCamping(c *gin.Context) {
	campingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	limit := queryInt(c, "limit", queries.DefaultListLimit)

	page, err := h.q.ListByCamping(c.Request.Context(), campingID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentPage(page))
}

// @Summary Create comment
// @Description A top-level review (optionally rated 1-5) or, with parent_id, a reply to one
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camping ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campings/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	campingID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), campingID, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}

// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body reqdto.UpdateCommentRequest true "Fields to change"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}

// @Summary Delete comment
// @Description The author, the camping owner or an admin; replies are removed with their parent
// @Tags comments
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
