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
)

type CampingHandler struct {
	cmds commands.CampingCommands
	q    queries.CampingQueries
}

func NewCampingHandler(cmds commands.CampingCommands, q queries.CampingQueries) *CampingHandler {
	return &CampingHandler{cmds: cmds, q: q}
}

// @Summary List campings
// @Description Public, paginated list. search matches name or description; county is matched against city or county.
// @Tags campings
// @Produce json
// @Param search query string false "Name or description contains"
// @Param city query string false "City"
// @Param county query string false "County or city"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (default 15, max 100)"
// @Success 200 {object} resdto.CampingPageResponse
// @Router /api/campings [get]
func (h *CampingHandler) List(c *gin.Context) {
	filter := queries.CampingFilter{
		Search: c.Query("search"),
		City:   c.Query("city"),
		// "location" is accepted as an alias used by older clients
		Location: firstNonEmpty(c.Query("county"), c.Query("location")),
	}
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", queries.DefaultPerPage)

	result, err := h.q.List(c.Request.Context(), filter, page, perPage)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampingPage(result))
}

// @Summary Camping name suggestions
// @Description Up to 10 matches for type-ahead search; shorter queries than 2 characters return an empty list.
// @Tags campings
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} resdto.SuggestionResponse
// @Router /api/campings/suggestions [get]
func (h *CampingHandler) Suggestions(c *gin.Context) {
	items, err := h.q.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestions(items))
}

// @Summary Get camping
// @Tags campings
// @Produce json
// @Param id path string true "Camping ID"
// @Success 200 {object} resdto.CampingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campings/{id} [get]
func (h *CampingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondMapped(c, http.StatusOK, view, resdto.FromCampingView)
}

// @Summary Create camping
// @Description Owners list a new campground, optionally with its spots in the same request
// @Tags campings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampingRequest true "Camping"
// @Success 201 {object} resdto.CampingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/campings [post]
func (h *CampingHandler) Create(c *gin.Context) {
	var req reqdto.CreateCampingRequest
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
	c.Header("Location", "/api/campings/"+id.String())
	respondMapped(c, http.StatusCreated, view, resdto.FromCampingView)
}

// @Summary Update camping
// @Description Partial update by the owner; renaming regenerates the slug
// @Tags campings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camping ID"
// @Param request body reqdto.UpdateCampingRequest true "Fields to change"
// @Success 200 {object} resdto.CampingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campings/{id} [put]
func (h *CampingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCampingRequest
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
	respondMapped(c, http.StatusOK, view, resdto.FromCampingView)
}

// @Summary Delete camping
// @Description Owner only; spots, bookings and comments go with it
// @Tags campings
// @Security BearerAuth
// @Param id path string true "Camping ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/campings/{id} [delete]
func (h *CampingHandler) Delete(c *gin.Context) {
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

// queryInt ignores malformed values; the queries clamp whatever comes through.
func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
