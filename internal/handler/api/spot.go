package api

import (
	"net/http"
	"strconv"

	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/handler/httperr"
	"campsite-booking/internal/handler/middleware"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds commands.SpotCommands
	q    queries.SpotQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q}
}

// @Summary List camping spots
// @Tags camping-spots
// @Produce json
// @Param camping_id query string false "Camping ID"
// @Param type query string false "tent, caravan, camper or bungalow"
// @Param available query bool false "Only spots with this availability flag"
// @Success 200 {array} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/camping-spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	var filter queries.SpotFilter
	if v := c.Query("camping_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid camping_id", nil)
			return
		}
		filter.CampingID = &id
	}
	if v := c.Query("type"); v != "" {
		filter.Type = &v
	}
	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid available flag", nil)
			return
		}
		filter.IsAvailable = &available
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondMapped(c, http.StatusOK, views, resdto.FromSpotViews)
}

// @Summary Get camping spot
// @Tags camping-spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/camping-spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondMapped(c, http.StatusOK, view, resdto.FromSpotView)
}

// @Summary Create camping spot
// @Description Only the owner of the parent camping; (row, column) must be free within the camping
// @Tags camping-spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Spot"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/camping-spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/camping-spots/"+id.String())
	respondMapped(c, http.StatusCreated, view, resdto.FromSpotView)
}

// @Summary Update camping spot
// @Tags camping-spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotRequest true "Fields to change"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/camping-spots/{id} [put]
func (h *SpotHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateSpotRequest
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
	respondMapped(c, http.StatusOK, view, resdto.FromSpotView)
}

// @Summary Delete camping spot
// @Tags camping-spots
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/camping-spots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
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
