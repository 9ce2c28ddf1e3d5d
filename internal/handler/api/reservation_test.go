//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"courtbook/internal/handler/api"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/httptest"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PATCH("/reservations/:id", s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func reservationViewFixture(id uuid.UUID) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                 id,
		HostID:             uuid.New(),
		HostAlias:          "ana",
		CourtID:            uuid.New(),
		CourtName:          "Court 1",
		VenueName:          "Riverside",
		Date:               time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:             "pending",
		TotalAmount:        decimal.RequireFromString("100"),
		AmountPaid:         decimal.Zero,
		OutstandingBalance: decimal.RequireFromString("100"),
	}
}

func createReservationBody() map[string]any {
	return map[string]any{
		"host_id":  uuid.New().String(),
		"court_id": uuid.New().String(),
		"date":     "2026-09-05T00:00:00Z",
		"slots": []map[string]any{
			{"start": "2026-09-05T08:00:00Z", "end": "2026-09-05T10:00:00Z"},
		},
	}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	s.Run("success: returns 201 Created with reservation view", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(reservationViewFixture(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReservationBody())

		var view queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal(id, view.ID)
		s.Equal("pending", view.Status)
	})

	s.Run("error: 400 Bad Request for missing required fields", func() {
		body := map[string]any{"host_id": uuid.New().String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation error",
				commandsError:  commands.ErrReservationValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "reservation validation failed",
			},
			{
				name:           "host not found",
				commandsError:  commands.ErrHostNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Host not found",
			},
			{
				name:           "court not found",
				commandsError:  commands.ErrCourtNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Court not found",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createReservationBody())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 200 OK with reservation view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(reservationViewFixture(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var view queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal(id, view.ID)
		s.Equal("Court 1", view.CourtName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestUpdateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 200 OK with updated view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(reservationViewFixture(id), nil).Times(1)

		body := map[string]any{"capacity": 6}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for validation failure", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrReservationValidation).Times(1)

		body := map[string]any{"capacity": 6}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reservation validation failed")
	})
}

// ================================================================================
// TestDeleteReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
