package bookTicket

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"showtix/internal/http-server/handlers/event/bookTicket/mocks"
	"showtix/internal/lib/logger/handlers/slogdiscard"
	"showtix/internal/models"
	"showtix/internal/storage"
)

func TestBookTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bookedEvent := &models.Event{
		EventID:          "event1",
		ArtistName:       "Arijit Singh",
		EventName:        "Arijit Live in Concert",
		Date:             time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		Venue:            "Delhi Stadium",
		TicketPrice:      1500,
		TotalTickets:     1000,
		AvailableTickets: 995,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"eventId": "event1", "tickets": 5}`,
			mockSetup: func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {
				booker.On("BookTickets", mock.Anything, "event1", 5).Return(bookedEvent, nil)
				invalidator.On("InvalidateEvents", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.True(t, resp.Success)
				assert.Equal(t, "Successfully booked 5 tickets for Arijit Live in Concert", resp.Message)
				require.NotNil(t, resp.Event)
				assert.Equal(t, 995, resp.Event.AvailableTickets)
			},
		},
		{
			name:        "Booking stands when cache invalidation fails",
			requestBody: `{"eventId": "event1", "tickets": 5}`,
			mockSetup: func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {
				booker.On("BookTickets", mock.Anything, "event1", 5).Return(bookedEvent, nil)
				invalidator.On("InvalidateEvents", mock.Anything).
					Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.True(t, resp.Success)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing event id",
			requestBody:    `{"tickets": 5}`,
			mockSetup:      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventID")
			},
		},
		{
			name:           "Missing tickets",
			requestBody:    `{"eventId": "event1"}`,
			mockSetup:      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Tickets")
			},
		},
		{
			name:           "Zero tickets",
			requestBody:    `{"eventId": "event1", "tickets": 0}`,
			mockSetup:      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Tickets")
			},
		},
		{
			name:           "Negative tickets",
			requestBody:    `{"eventId": "event1", "tickets": -1}`,
			mockSetup:      func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Tickets")
			},
		},
		{
			name:        "Unknown event",
			requestBody: `{"eventId": "nope", "tickets": 2}`,
			mockSetup: func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {
				booker.On("BookTickets", mock.Anything, "nope", 2).
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Not enough tickets",
			requestBody: `{"eventId": "event1", "tickets": 5000}`,
			mockSetup: func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {
				booker.On("BookTickets", mock.Anything, "event1", 5000).
					Return(nil, storage.ErrNotEnoughTickets)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"not enough tickets available"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"eventId": "event1", "tickets": 2}`,
			mockSetup: func(booker *mocks.TicketBooker, invalidator *mocks.EventsInvalidator) {
				booker.On("BookTickets", mock.Anything, "event1", 2).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to book tickets"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockBooker := mocks.NewTicketBooker(t)
			mockInvalidator := mocks.NewEventsInvalidator(t)
			tc.mockSetup(mockBooker, mockInvalidator)

			handler := New(logger, mockBooker, mockInvalidator)

			req, err := http.NewRequest("POST", "/api/book-ticket", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

// A drained event must reject the next request: once availability reaches
// zero the store reports ErrNotEnoughTickets for any further quantity.
func TestBookTicketExhaustion(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	soldOut := &models.Event{
		EventID:          "event1",
		EventName:        "Arijit Live in Concert",
		TotalTickets:     5,
		AvailableTickets: 0,
	}

	mockBooker := mocks.NewTicketBooker(t)
	mockInvalidator := mocks.NewEventsInvalidator(t)

	mockBooker.On("BookTickets", mock.Anything, "event1", 5).Return(soldOut, nil).Once()
	mockBooker.On("BookTickets", mock.Anything, "event1", 1).Return(nil, storage.ErrNotEnoughTickets).Once()
	mockInvalidator.On("InvalidateEvents", mock.Anything).Return(nil).Once()

	handler := New(logger, mockBooker, mockInvalidator)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("POST", "/api/book-ticket",
		bytes.NewBufferString(`{"eventId": "event1", "tickets": 5}`)))

	require.Equal(t, http.StatusOK, first.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	require.NotNil(t, resp.Event)
	assert.Equal(t, 0, resp.Event.AvailableTickets)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("POST", "/api/book-ticket",
		bytes.NewBufferString(`{"eventId": "event1", "tickets": 1}`)))

	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.JSONEq(t, `{"status":"Error","error":"not enough tickets available"}`, second.Body.String())
}
