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

type CommentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommentCommands
	mockQueries  *queriesmock.MockCommentQueries
	handler      *api.CommentHandler
	actors       testActors
}

func (s *CommentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCommentQueries(s.mockCtrl)
	s.handler = api.NewCommentHandler(s.mockCommands, s.mockQueries)

	auth, actors := newTestAuth(s.mockCtrl)
	s.actors = actors

	s.router.GET("/campings/:id/comments", s.handler.ListByCamping)
	s.router.POST("/campings/:id/comments", auth.RequireAuth(), s.handler.Create)
	s.router.PUT("/comments/:id", auth.RequireAuth(), s.handler.Update)
	s.router.DELETE("/comments/:id", auth.RequireAuth(), s.handler.Delete)
}

func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func (s *CommentHandlerTestSuite) TestListByCamping() {
	campingID := uuid.New()
	top := builder.NewCommentBuilder().With(func(b *builder.CommentBuilder) { b.CampingID = campingID }).BuildView()
	reply := builder.NewCommentBuilder().With(func(b *builder.CommentBuilder) { b.CampingID = campingID }).
		AsReplyTo(top.ID).BuildView()
	top.Replies = []*queries.CommentView{reply}

	s.Run("success: first page with a next cursor", func() {
		page := &queries.CommentPage{Items: []*queries.CommentView{top}, Next: &queries.Cursor{After: "next-token"}}
		s.mockQueries.EXPECT().ListByCamping(gomock.Any(), campingID, nil, queries.DefaultListLimit).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings/"+campingID.String()+"/comments", nil, "")

		var body resdto.CommentPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Data, 1)
		s.Len(body.Data[0].Replies, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-token", *body.NextCursor)
	})

	s.Run("success: last page has a null cursor", func() {
		page := &queries.CommentPage{Items: []*queries.CommentView{}}
		s.mockQueries.EXPECT().ListByCamping(gomock.Any(), campingID, &queries.Cursor{After: "abc"}, 5).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/campings/"+campingID.String()+"/comments?after=abc&limit=5", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body["next_cursor"])
	})

	s.Run("error: 400 for a broken cursor", func() {
		s.mockQueries.EXPECT().ListByCamping(gomock.Any(), campingID, gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campings/"+campingID.String()+"/comments?after=broken", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *CommentHandlerTestSuite) TestCreate() {
	b := builder.NewCommentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	url := "/campings/" + b.CampingID.String() + "/comments"

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.guest, b.CampingID, reqBody).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing comment", mutate: testutil.Field("comment", nil)},
			{name: "rating 0", mutate: testutil.Field("rating", 0)},
			{name: "rating 6", mutate: testutil.Field("rating", 6)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 when the parent is unknown", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.CampingID, reqBody).Return(uuid.Nil, commands.ErrParentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Parent comment not found")
	})
}

func (s *CommentHandlerTestSuite) TestUpdate() {
	view := builder.NewCommentBuilder().BuildView()
	text := "Even better the second time"
	reqBody := reqdto.UpdateCommentRequest{Comment: &text}

	s.Run("success: author edits the comment", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actors.guest, view.ID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/comments/"+view.ID.String(), reqBody, guestToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 for someone else's comment", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actors.owner, view.ID, reqBody).Return(policy.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/comments/"+view.ID.String(), reqBody, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *CommentHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.admin, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/comments/"+id.String(), nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.guest, id).Return(queries.ErrCommentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/comments/"+id.String(), nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Comment not found")
	})
}
