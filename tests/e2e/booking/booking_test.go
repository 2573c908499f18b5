//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"innbook/internal/handler/dto/request"
	"innbook/internal/handler/dto/response"
	"innbook/tests/common/httptest"
	"innbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL             = "/api/rooms"
	roomSearchURL        = "/api/rooms/search"
	reservationsURL      = "/api/reservations"
	adminReservationsURL = "/api/admin/reservations"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// surgeFor mirrors the seasonal pricing rule so assertions stay valid
// whichever month the suite runs in.
func surgeFor(m time.Month) float64 {
	switch m {
	case time.December, time.January:
		return 0.40
	case time.June, time.July, time.August:
		return 0.30
	case time.March, time.April, time.May:
		return 0.20
	default:
		return 0
	}
}

func (s *BookingSuite) createRoom(t *testing.T, roomType string, basePrice float64, description string) response.RoomResponse {
	t.Helper()

	req := request.CreateRoomRequest{
		RoomType:    roomType,
		BasePrice:   basePrice,
		Description: description,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.RoomResponse
	httptest.DecodeJSON(t, w, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *BookingSuite) bookRoom(t *testing.T, roomID uuid.UUID, userID, checkIn, checkOut, paymentMethod string) (*nethttptest.ResponseRecorder, response.ReservationResponse) {
	t.Helper()

	req := request.BookRoomRequest{
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: paymentMethod,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, userID)

	var reservation response.ReservationResponse
	if w.Code == http.StatusCreated {
		httptest.DecodeJSON(t, w, &reservation)
	}
	return w, reservation
}

// =============================================================================
// TestBookingFlow - Room booking lifecycle tests
// =============================================================================

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: Search, book, invoice and payment flow", func() {
		t := s.T()

		room := s.createRoom(t, "Deluxe", 100.00, "Sea view")
		userID := uuid.New().String()
		surge := surgeFor(time.Now().Month())
		expectedNightly := 100.00 * (1 + surge)

		// Search exposes today's dynamic price under the fixed projection.
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomSearchURL, nil, "")
		require.Equal(t, http.StatusOK, sw.Code)

		var results []map[string]any
		httptest.DecodeJSON(t, sw, &results)
		require.Len(t, results, 1)
		require.Equal(t, room.ID.String(), results[0]["room_id"])
		require.Equal(t, "Deluxe", results[0]["room_type"])
		require.InDelta(t, expectedNightly, results[0]["price_today"], 0.001)
		require.Equal(t, "Sea view", results[0]["description"])
		require.Len(t, results[0], 4, "Search projection must carry exactly four fields")

		// Book three nights; the booking is priced at today's rate.
		w, reservation := s.bookRoom(t, room.ID, userID, "2027-03-10", "2027-03-13", "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		require.Equal(t, userID, reservation.UserID.String())
		require.Equal(t, room.ID, reservation.RoomID)
		require.Equal(t, "Deluxe", reservation.RoomType)
		require.Equal(t, "2027-03-10", reservation.CheckIn)
		require.Equal(t, "2027-03-13", reservation.CheckOut)
		require.Equal(t, int64(3), reservation.Nights)
		require.InDelta(t, expectedNightly, reservation.NightlyPrice, 0.001)
		require.InDelta(t, expectedNightly*3, reservation.Subtotal, 0.001)
		require.InDelta(t, reservation.Subtotal*0.10, reservation.Tax, 0.011)
		require.InDelta(t, reservation.Subtotal+reservation.Tax, reservation.TotalPrice, 0.001)
		require.Equal(t, "confirmed", reservation.Status)
		require.False(t, reservation.Paid, "Booking without payment method starts unpaid")

		// The invoice carries the room snapshot and an empty ledger.
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/invoice", reservationsURL, reservation.ID), nil, "")
		require.Equal(t, http.StatusOK, iw.Code)

		var invoice response.InvoiceResponse
		httptest.DecodeJSON(t, iw, &invoice)
		require.Equal(t, reservation.ID, invoice.Reservation.ID)
		require.NotNil(t, invoice.Room)
		require.Equal(t, room.ID, invoice.Room.ID)
		require.Empty(t, invoice.Payments)

		// Recording a payment appends to the ledger and marks the
		// reservation paid.
		payReq := request.RecordPaymentRequest{
			Amount: reservation.TotalPrice,
			Method: "card",
		}
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/payments", reservationsURL, reservation.ID), payReq, "")
		require.Equal(t, http.StatusCreated, pw.Code, pw.Body.String())

		var paymentRes response.PaymentResponse
		httptest.DecodeJSON(t, pw, &paymentRes)
		require.Equal(t, reservation.ID, paymentRes.ReservationID)
		require.InDelta(t, reservation.TotalPrice, paymentRes.Amount, 0.001)
		require.Equal(t, "card", paymentRes.Method)
		require.Equal(t, "paid", paymentRes.Status)

		iw2 := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/invoice", reservationsURL, reservation.ID), nil, "")
		require.Equal(t, http.StatusOK, iw2.Code)

		var paidInvoice response.InvoiceResponse
		httptest.DecodeJSON(t, iw2, &paidInvoice)
		require.Len(t, paidInvoice.Payments, 1)
		require.True(t, paidInvoice.Reservation.Paid)
	})

	s.Run("Normal case: Booking with a payment method starts paid", func() {
		t := s.T()

		room := s.createRoom(t, "Single", 60.00, "")
		w, reservation := s.bookRoom(t, room.ID, uuid.New().String(), "2027-02-01", "2027-02-02", "tok_visa")
		require.Equal(t, http.StatusCreated, w.Code)
		require.True(t, reservation.Paid)
		require.Equal(t, int64(1), reservation.Nights)
	})

	s.Run("Error case: Second booking for the same room conflicts", func() {
		t := s.T()

		room := s.createRoom(t, "Twin", 90.00, "")

		w1, _ := s.bookRoom(t, room.ID, uuid.New().String(), "2027-04-01", "2027-04-03", "")
		require.Equal(t, http.StatusCreated, w1.Code)

		w2, _ := s.bookRoom(t, room.ID, uuid.New().String(), "2027-04-05", "2027-04-07", "")
		require.Equal(t, http.StatusConflict, w2.Code, "Booked room must not be booked again")

		// The held room also disappears from search results.
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomSearchURL, nil, "")
		require.Equal(t, http.StatusOK, sw.Code)
		var results []map[string]any
		httptest.DecodeJSON(t, sw, &results)
		require.Empty(t, results)
	})

	s.Run("Error case: Unknown room returns 404", func() {
		t := s.T()

		w, _ := s.bookRoom(t, uuid.New(), uuid.New().String(), "2027-04-01", "2027-04-03", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Malformed dates are rejected", func() {
		t := s.T()

		room := s.createRoom(t, "Suite", 150.00, "")
		w, _ := s.bookRoom(t, room.ID, uuid.New().String(), "01-04-2027", "2027-04-03", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Auth test - Booking without identity is unauthorized", func() {
		t := s.T()

		room := s.createRoom(t, "Double", 80.00, "")
		req := request.BookRoomRequest{
			RoomID:   room.ID,
			CheckIn:  "2027-04-01",
			CheckOut: "2027-04-03",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRoomSearch - Catalog search filter tests
// =============================================================================

func (s *BookingSuite) TestRoomSearch() {
	s.Run("Normal case: Type and price filters narrow the catalog", func() {
		t := s.T()

		s.createRoom(t, "Single", 60.00, "")
		deluxe := s.createRoom(t, "Deluxe", 100.00, "City view")
		s.createRoom(t, "Suite", 250.00, "")

		surge := surgeFor(time.Now().Month())

		// Type match is exact; only the "any" sentinel is case-insensitive.
		tw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomSearchURL+"?type=Deluxe", nil, "")
		require.Equal(t, http.StatusOK, tw.Code)
		var byType []response.SearchRoomResponse
		httptest.DecodeJSON(t, tw, &byType)

		expected := []response.SearchRoomResponse{{
			RoomID:      deluxe.ID,
			RoomType:    "Deluxe",
			PriceToday:  100.00 * (1 + surge),
			Description: "City view",
		}}
		if diff := cmp.Diff(expected, byType, cmpopts.EquateApprox(0, 0.001)); diff != "" {
			t.Errorf("Search response mismatch (-want +got):\n%s", diff)
		}

		// max_price compares against today's dynamic price.
		maxPrice := 100.00 * (1 + surge)
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?max_price=%.2f", roomSearchURL, maxPrice), nil, "")
		require.Equal(t, http.StatusOK, pw.Code)
		var byPrice []response.SearchRoomResponse
		httptest.DecodeJSON(t, pw, &byPrice)
		require.Len(t, byPrice, 2)

		// A malformed max_price is ignored rather than rejected.
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomSearchURL+"?max_price=cheap", nil, "")
		require.Equal(t, http.StatusOK, mw.Code)
		var unfiltered []response.SearchRoomResponse
		httptest.DecodeJSON(t, mw, &unfiltered)
		require.Len(t, unfiltered, 3)
	})

	s.Run("Normal case: Empty catalog yields an empty list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomSearchURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// =============================================================================
// TestReservationListing - Own and admin reservation list tests
// =============================================================================

func (s *BookingSuite) TestReservationListing() {
	s.Run("Normal case: Users see their own reservations, admins see all", func() {
		t := s.T()

		room1 := s.createRoom(t, "Single", 60.00, "")
		room2 := s.createRoom(t, "Double", 80.00, "")

		alice := uuid.New().String()
		bob := uuid.New().String()

		w1, _ := s.bookRoom(t, room1.ID, alice, "2027-05-01", "2027-05-03", "")
		require.Equal(t, http.StatusCreated, w1.Code)
		w2, second := s.bookRoom(t, room2.ID, bob, "2027-05-02", "2027-05-04", "")
		require.Equal(t, http.StatusCreated, w2.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, alice)
		require.Equal(t, http.StatusOK, ow.Code)
		var own []response.ReservationResponse
		httptest.DecodeJSON(t, ow, &own)
		require.Len(t, own, 1)
		require.Equal(t, alice, own[0].UserID.String())

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminReservationsURL, nil, "")
		require.Equal(t, http.StatusOK, aw.Code)
		var all []response.ReservationResponse
		httptest.DecodeJSON(t, aw, &all)
		require.Len(t, all, 2)
		require.Equal(t, second.ID, all[0].ID, "Admin listing is newest first")
	})

	s.Run("Auth test - Own listing without identity is unauthorized", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRoomLifecycle - Catalog management tests
// =============================================================================

func (s *BookingSuite) TestRoomLifecycle() {
	s.Run("Normal case: Update replaces fields and restores availability", func() {
		t := s.T()

		room := s.createRoom(t, "Single", 60.00, "Old description")

		updateReq := request.UpdateRoomRequest{
			RoomType:    "Premium Single",
			BasePrice:   75.00,
			IsAvailable: true,
			Description: "Renovated",
		}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/"+room.ID.String(), updateReq, "")
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var updated response.RoomResponse
		httptest.DecodeJSON(t, uw, &updated)
		require.Equal(t, "Premium Single", updated.RoomType)
		require.InDelta(t, 75.00, updated.BasePrice, 0.001)
		require.Equal(t, "Renovated", updated.Description)
	})

	s.Run("Error case: Room with a confirmed reservation cannot be deleted", func() {
		t := s.T()

		room := s.createRoom(t, "Deluxe", 100.00, "")
		w, _ := s.bookRoom(t, room.ID, uuid.New().String(), "2027-06-01", "2027-06-03", "")
		require.Equal(t, http.StatusCreated, w.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, roomsURL+"/"+room.ID.String(), nil, "")
		require.Equal(t, http.StatusConflict, dw.Code)

		// The reservation still exists with its pricing snapshot.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+room.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, gw.Code)
	})

	s.Run("Normal case: Unreserved room deletes cleanly", func() {
		t := s.T()

		room := s.createRoom(t, "Twin", 90.00, "")
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, roomsURL+"/"+room.ID.String(), nil, "")
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+room.ID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: Invoice survives room deletion without the room block", func() {
		t := s.T()

		room := s.createRoom(t, "Suite", 150.00, "")
		w, reservation := s.bookRoom(t, room.ID, uuid.New().String(), "2027-07-01", "2027-07-02", "tok_visa")
		require.Equal(t, http.StatusCreated, w.Code)

		// Delete the row directly; the API guards confirmed reservations.
		_, err := s.DB.Exec(t.Context(), "DELETE FROM rooms WHERE id = $1", room.ID)
		require.NoError(t, err)

		iw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s/invoice", reservationsURL, reservation.ID), nil, "")
		require.Equal(t, http.StatusOK, iw.Code)

		var body map[string]any
		httptest.DecodeJSON(t, iw, &body)
		require.Contains(t, body, "reservation")
		require.NotContains(t, body, "room", "Deleted room must be omitted from the invoice")
	})
}
