//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/handler/api"
	reqdto "campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/internal/pkg/errs"
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

type CampingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCampingCommands
	mockQueries  *queriesmock.MockCampingQueries
	handler      *api.CampingHandler
	actors       testActors
}

func (s *CampingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCampingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCampingQueries(s.mockCtrl)
	s.handler = api.NewCampingHandler(s.mockCommands, s.mockQueries)

	auth, actors := newTestAuth(s.mockCtrl)
	s.actors = actors

	campings := s.router.Group("/campings", auth.OptionalAuth())
	campings.GET("", s.handler.List)
	campings.GET("/suggestions", s.handler.Suggestions)
	campings.GET("/:id", s.handler.Get)
	campings.POST("", auth.RequireAuth(), s.handler.Create)
	campings.PUT("/:id", auth.RequireAuth(), s.handler.Update)
	campings.DELETE("/:id", auth.RequireAuth(), s.handler.Delete)
}

func (s *CampingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampingHandlerSuite(t *testing.T) {
	suite.Run(t, new(CampingHandlerTestSuite))
}

func (s *CampingHandlerTestSuite) TestList() {
	item := builder.NewCampingBuilder().BuildListItem()
	page := &queries.CampingPage{Items: []*queries.CampingListItem{item}, Total: 1, Page: 2, PerPage: 5, LastPage: 1}

	s.Run("success: passes filters and paging through", func() {
		filter := queries.CampingFilter{Search: "lake", City: "Siófok", Location: "Somogy"}
		s.mockQueries.EXPECT().List(gomock.Any(), filter, 2, 5).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/campings?search=lake&city=Si%C3%B3fok&county=Somogy&page=2&per_page=5", nil, "")

		var body resdto.CampingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.Total)
		s.Len(body.Data, 1)
	})

	s.Run("success: location is accepted as county alias", func() {
		filter := queries.CampingFilter{Location: "Somogy"}
		s.mockQueries.EXPECT().List(gomock.Any(), filter, 1, queries.DefaultPerPage).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings?location=Somogy", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: malformed paging falls back to defaults", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CampingFilter{}, 1, queries.DefaultPerPage).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings?page=abc&per_page=", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CampingHandlerTestSuite) TestSuggestions() {
	s.Run("success: returns matches", func() {
		items := []*queries.SuggestionView{{ID: uuid.New(), Name: "Pine Hill Camping", Label: "Pine Hill Camping (Siófok)"}}
		s.mockQueries.EXPECT().Suggest(gomock.Any(), "pi").Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings/suggestions?q=pi", nil, "")

		var body []resdto.SuggestionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})
}

func (s *CampingHandlerTestSuite) TestGet() {
	view := builder.NewCampingBuilder().BuildView()

	s.Run("success: returns the camping with its spots", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings/"+view.ID.String(), nil, "")

		var body resdto.CampingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Slug, body.Slug)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrCampingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Camping not found")
	})
}

func (s *CampingHandlerTestSuite) TestCreate() {
	b := builder.NewCampingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with Location header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.owner, reqBody).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campings", reqBody, ownerToken)

		var body resdto.CampingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/campings/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "name 256 chars", mutate: testutil.Field("name", strings.Repeat("a", 256))},
			{name: "location without city", mutate: testutil.Field("location", map[string]any{"county": "Somogy"})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campings", requestMap, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "guest cannot host", commandsError: policy.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "not allowed"},
			{name: "duplicate grid position in nested spots", commandsError: commands.ErrGridPositionTaken, expectedStatus: http.StatusConflict, expectedMsg: "Grid position already taken"},
			{name: "domain validation", commandsError: errs.Mark(errors.New("tax id is too long"), commands.ErrValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Validation failed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campings", reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 for an anonymous visitor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *CampingHandlerTestSuite) TestUpdate() {
	view := builder.NewCampingBuilder().BuildView()
	url := "/campings/" + view.ID.String()
	name := "Pine Hill Lakeside"
	reqBody := reqdto.UpdateCampingRequest{Name: &name}

	s.Run("success: returns the updated camping", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actors.owner, view.ID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an empty name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": ""}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 403 for another owner", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actors.guest, view.ID, reqBody).Return(policy.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *CampingHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.admin, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/campings/"+id.String(), nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.owner, id).Return(queries.ErrCampingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/campings/"+id.String(), nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Camping not found")
	})
}
