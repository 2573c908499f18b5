//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"innbook/internal/handler/api"
	"innbook/internal/handler/middleware"
	"innbook/internal/usecase/commands"
	"innbook/internal/usecase/queries"
	"innbook/tests/common/httptest"
	commandsmock "innbook/tests/mock/commands"
	queriesmock "innbook/tests/mock/queries"

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
	mockPayments *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	paymentHandler := api.NewPaymentHandler(s.mockPayments, s.mockQueries)
	identity := middleware.NewIdentityMiddleware()

	s.router.POST("/reservations", identity.RequireUser(), handler.Book)
	s.router.GET("/reservations", identity.RequireUser(), handler.ListOwn)
	s.router.GET("/reservations/:id", handler.Get)
	s.router.GET("/reservations/:id/invoice", handler.GetInvoice)
	s.router.POST("/reservations/:id/payments", paymentHandler.Record)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func bookBody(roomID uuid.UUID) map[string]any {
	return map[string]any{
		"room_id":        roomID,
		"check_in":       "2025-12-20",
		"check_out":      "2025-12-23",
		"payment_method": "card",
	}
}

func (s *ReservationHandlerTestSuite) TestBook() {
	roomID := uuid.New()
	userID := uuid.New()

	s.Run("books and returns the reservation", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params commands.BookRoomParams) (*queries.ReservationView, error) {
				s.Equal(roomID, params.RoomID)
				s.Equal(userID, params.UserID)
				s.Equal("card", params.PaymentMethod)
				s.Equal("2025-12-20", params.CheckIn.Format("2006-01-02"))
				s.Equal("2025-12-23", params.CheckOut.Format("2006-01-02"))
				return &queries.ReservationView{RoomID: roomID, UserID: userID, Status: "confirmed", Nights: 3}, nil
			},
		)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), userID.String())
		s.Equal(http.StatusCreated, w.Code)

		var body map[string]any
		httptest.DecodeJSON(s.T(), w, &body)
		s.Equal("confirmed", body["status"])
		s.Equal(float64(3), body["nights"])
	})

	s.Run("missing identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), "not-a-uuid")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed date", func() {
		body := bookBody(roomID)
		body["check_in"] = "20-12-2025"

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown room maps to 404", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("held room maps to 409", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomUnavailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), userID.String())
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("lost race maps to 409", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).Return(nil, commands.ErrRoomConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", bookBody(roomID), userID.String())
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetInvoice() {
	id := uuid.New()

	s.Run("returns reservation, room and payments", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), id).Return(&queries.InvoiceView{
			Reservation: &queries.ReservationView{ID: id, Status: "confirmed"},
			Room:        &queries.RoomView{RoomType: "Double", BasePriceCents: 12000},
			Payments:    []*queries.PaymentView{{ReservationID: id, AmountCents: 46200, Method: "card", Status: "paid"}},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/invoice", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var body map[string]any
		httptest.DecodeJSON(s.T(), w, &body)
		s.NotNil(body["reservation"])
		s.NotNil(body["room"])
		s.Len(body["payments"], 1)
	})

	s.Run("deleted room renders without a room block", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), id).Return(&queries.InvoiceView{
			Reservation: &queries.ReservationView{ID: id, Status: "confirmed"},
			Payments:    []*queries.PaymentView{},
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/invoice", nil, "")
		s.Equal(http.StatusOK, w.Code)

		var body map[string]any
		httptest.DecodeJSON(s.T(), w, &body)
		_, hasRoom := body["room"]
		s.False(hasRoom)
	})

	s.Run("unknown reservation maps to 404", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/invoice", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestRecordPayment() {
	id := uuid.New()

	s.Run("records a payment", func() {
		s.mockPayments.EXPECT().Record(gomock.Any(), commands.RecordPaymentParams{
			ReservationID: id,
			Amount:        462.00,
			Method:        "card",
		}).Return(&queries.PaymentView{ReservationID: id, AmountCents: 46200, Method: "card", Status: "paid"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments", map[string]any{
			"amount": 462.00,
			"method": "card",
		}, "")
		s.Equal(http.StatusCreated, w.Code)

		var body map[string]any
		httptest.DecodeJSON(s.T(), w, &body)
		s.Equal(462.00, body["amount"])
	})

	s.Run("negative amount is recorded, not rejected", func() {
		s.mockPayments.EXPECT().Record(gomock.Any(), commands.RecordPaymentParams{
			ReservationID: id,
			Amount:        -5.00,
			Method:        "cash",
		}).Return(&queries.PaymentView{ReservationID: id, AmountCents: -500, Method: "cash", Status: "paid"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments", map[string]any{
			"amount": -5.00,
			"method": "cash",
		}, "")
		s.Equal(http.StatusCreated, w.Code)

		var body map[string]any
		httptest.DecodeJSON(s.T(), w, &body)
		s.Equal(-5.00, body["amount"])
	})

	s.Run("missing method fails binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments", map[string]any{
			"amount": 10,
		}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown reservation maps to 404", func() {
		s.mockPayments.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, commands.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/payments", map[string]any{
			"amount": 10,
			"method": "cash",
		}, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
