//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"campsite-booking/internal/domain/policy"
	"campsite-booking/internal/domain/reservation"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actors       testActors
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	auth, actors := newTestAuth(s.mockCtrl)
	s.actors = actors

	bookings := s.router.Group("/bookings", auth.RequireAuth())
	bookings.GET("", s.handler.List)
	bookings.POST("", s.handler.Create)
	bookings.GET("/:id", s.handler.Get)
	bookings.PUT("/:id", s.handler.Update)
	bookings.DELETE("/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewReservationBuilder().WithDates("2030-06-01", "2030-06-05")
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the joined booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actors.guest, reqBody).Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actors.guest, returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("2030-06-01", body.ArrivalDate)
		s.Equal("2030-06-05", body.DepartureDate)
		s.Equal(4, body.Nights)
		s.Equal("pending", body.Status)
		s.Equal(returnView.SpotID, body.CampingSpot.ID)
		s.Equal(returnView.CampingID, body.Camping.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseReservation{
			{name: "missing camping_id", mutate: testutil.Field("camping_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing camping_spot_id", mutate: testutil.Field("camping_spot_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing arrival_date", mutate: testutil.Field("arrival_date", nil), expectCode: http.StatusBadRequest},
			{name: "arrival_date は YYYY-MM-DD 以外不可", mutate: testutil.Field("arrival_date", "01/06/2030"), expectCode: http.StatusBadRequest},
			{name: "departure_date impossible calendar date", mutate: testutil.Field("departure_date", "2030-02-30"), expectCode: http.StatusBadRequest},
			{name: "camping_spot_id not a uuid", mutate: testutil.Field("camping_spot_id", "spot-1"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: booking outcomes keep their exact messages", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "spot unavailable",
				commandsError:  reservation.ErrSpotUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Camping spot is not available",
			},
			{
				name:           "overlap found by the pre-check",
				commandsError:  reservation.ErrOverlap,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Camping spot is already booked for these dates",
			},
			{
				name:           "overlap rejected by the exclusion constraint",
				commandsError:  errs.Mark(errors.New("conflicting key value violates exclusion constraint"), reservation.ErrOverlap),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Camping spot is already booked for these dates",
			},
			{
				name:           "departure not after arrival",
				commandsError:  errs.Mark(reservation.ErrDepartureNotAfterArrival, commands.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "spot not found",
				commandsError:  queries.ErrSpotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Camping spot not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}

	s.Run("success: no filter lists the caller's bookings", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actors.guest).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, guestToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: my_bookings and camping_id are combined", func() {
		campingID := uuid.New()
		s.mockQueries.EXPECT().ListMineInCamping(gomock.Any(), s.actors.guest, campingID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?my_bookings=1&camping_id="+campingID.String(), nil, guestToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a malformed camping_id next to my_bookings", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?my_bookings=1&camping_id=abc", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: camping_id lists the camping's bookings", func() {
		campingID := uuid.New()
		s.mockQueries.EXPECT().ListByCamping(gomock.Any(), s.actors.owner, campingID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?camping_id="+campingID.String(), nil, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 when the caller does not own the camping", func() {
		campingID := uuid.New()
		s.mockQueries.EXPECT().ListByCamping(gomock.Any(), s.actors.guest, campingID).Return(nil, policy.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?camping_id="+campingID.String(), nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 for a malformed camping_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?camping_id=abc", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actors.guest, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not found", queriesError: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "other guest", queriesError: policy.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "not allowed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed)
	view := b.BuildView()
	url := "/bookings/" + view.ID.String()
	confirmed := "confirmed"
	reqBody := reqdto.UpdateBookingRequest{Status: &confirmed}

	s.Run("success: owner confirms a pending booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actors.owner, view.ID, reqBody).Return(true, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actors.owner, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, ownerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("success: empty body returns the current booking", func() {
		empty := reqdto.UpdateBookingRequest{}
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.actors.guest, view.ID, empty).Return(false, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actors.guest, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, guestToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "archived"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "transition out of a final state", commandsError: reservation.ErrInvalidTransition, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid status transition"},
			{name: "guest tries to confirm", commandsError: policy.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "not allowed"},
			{name: "not found", commandsError: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), view.ID, reqBody).Return(false, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.owner, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, ownerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for the guest", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actors.guest, id).Return(policy.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
