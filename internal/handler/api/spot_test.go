//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/handler/api"
	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/tests/common/builder"
	"campsite-booking/tests/common/httptest"
	"campsite-booking/tests/common/testutil"
	commandsmock "campsite-booking/tests/mock/commands"
	queriesmock "campsite-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpotCommands
	mockQueries  *queriesmock.MockSpotQueries
	handler      *api.SpotHandler
	actors       testActors
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpotQueries(s.mockCtrl)
	s.handler = api.NewSpotHandler(s.mockCommands, s.mockQueries)

	auth, actors := newTestAuth(s.mockCtrl)
	s.actors = actors

	spots := s.router.Group("/camping-spots", auth.OptionalAuth())
	spots.GET("", s.handler.List)
	spots.GET("/:id", s.handler.Get)
	spots.POST("", auth.RequireAuth(), s.handler.Create)
	spots.PUT("/:id", auth.RequireAuth(), s.handler.Update)
	spots.DELETE("/:id", auth.RequireAuth(), s.handler.Delete)
}

func (s *SpotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

func (s *SpotHandlerTestSuite) TestList() {
	view := builder.NewSpotBuilder().BuildView()

	s.Run("success: builds the filter from the query string", func() {
		campingID := uuid.New()
		tent := "tent"
		available := true
		filter := queries.SpotFilter{CampingID: &campingID, Type: &tent, IsAvailable: &available}
		s.mockQueries.EXPECT().List(gomock.Any(), filter).Return([]*queries.SpotView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/camping-spots?camping_id="+campingID.String()+"&type=tent&available=true", nil, "")

		var body []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 400 for malformed filters", func() {
		for _, q := range []string{"camping_id=nope", "available=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/camping-spots?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
		}
	})
}

func (s *SpotHandlerTestSuite) TestGet() {
	view := builder.NewSpotBuilder().BuildView()

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/camping-spots/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Camping spot not found")
	})

	s.Run("error: 500 when the view cannot be mapped", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/camping-spots/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SpotHandlerTestSuite) TestCreate() {
	b := builder.NewSpotBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.owner, reqBody).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/camping-spots", reqBody, ownerToken)

		var body resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/camping-spots/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "unknown type", mutate: testutil.Field("type", "yurt")},
			{name: "capacity 0", mutate: testutil.Field("capacity", 0)},
			{name: "row 0", mutate: testutil.Field("row", 0)},
			{name: "negative price", mutate: testutil.Field("price_per_night", -1)},
			{name: "price above the cap", mutate: testutil.Field("price_per_night", 100000001)},
			{name: "rating above 5", mutate: testutil.Field("rating", 5.5)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/camping-spots", requestMap, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 when the grid position is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.owner, reqBody).Return(uuid.Nil, commands.ErrGridPositionTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/camping-spots", reqBody, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Grid position already taken")
	})

	s.Run("error: 403 outside the caller's camping", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.guest, reqBody).Return(uuid.Nil, policy.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/camping-spots", reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *SpotHandlerTestSuite) TestUpdate() {
	view := builder.NewSpotBuilder().BuildView()
	url := "/camping-spots/" + view.ID.String()
	unavailable := false
	reqBody := reqdto.UpdateSpotRequest{IsAvailable: &unavailable}

	s.Run("success: toggles availability", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actors.owner, view.ID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *SpotHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.owner, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/camping-spots/"+id.String(), nil, ownerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
