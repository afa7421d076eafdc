//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/domain/customer"
	"travel-booking/internal/domain/reservation"
	"travel-booking/internal/handler/api"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Hand-written stubs; the command and query surfaces are small enough that
// generated mocks would be more code than they replace.
type stubReservationCommands struct {
	createResult *commands.CreateReservationResult
	createErr    error
	cancelResult *commands.CancelReservationResult
	cancelErr    error

	createCalls int
	lastKey     uuid.UUID
	lastActorID int64
	lastIsAdmin bool
}

func (s *stubReservationCommands) CreateReservation(_ context.Context, _ reqdto.CreateReservationRequest, customerID int64, key uuid.UUID) (*commands.CreateReservationResult, error) {
	s.createCalls++
	s.lastActorID = customerID
	s.lastKey = key
	return s.createResult, s.createErr
}

func (s *stubReservationCommands) CancelReservation(_ context.Context, _ int64, actorID int64, actorIsAdmin bool) (*commands.CancelReservationResult, error) {
	s.lastActorID = actorID
	s.lastIsAdmin = actorIsAdmin
	return s.cancelResult, s.cancelErr
}

type stubReservationQueries struct {
	view  *queries.ReservationView
	views []*queries.ReservationView
	err   error

	listedAll      bool
	listedCustomer int64
}

func (s *stubReservationQueries) GetByID(_ context.Context, _ int64, _ bool, _ int64) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationQueries) GetByIDSystem(_ context.Context, _ int64) (*queries.ReservationView, error) {
	return s.view, s.err
}

func (s *stubReservationQueries) ListByCustomer(_ context.Context, customerID int64) ([]*queries.ReservationView, error) {
	s.listedCustomer = customerID
	return s.views, s.err
}

func (s *stubReservationQueries) ListAll(_ context.Context) ([]*queries.ReservationView, error) {
	s.listedAll = true
	return s.views, s.err
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubReservationCommands
	queries  *stubReservationQueries
}

const (
	suiteCustomerID = int64(42)
	suiteAdminID    = int64(1)
)

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &stubReservationCommands{}
	s.queries = &stubReservationQueries{}
	handler := api.NewReservationHandler(s.commands, s.queries)

	// Stand-in for the auth middleware: the identity comes from a header so
	// each request can pick its actor.
	s.router.Use(func(c *gin.Context) {
		switch c.GetHeader("X-Test-Actor") {
		case "admin":
			c.Set("customer_id", suiteAdminID)
			c.Set("customer_role", customer.RoleAdmin)
		case "":
		default:
			c.Set("customer_id", suiteCustomerID)
			c.Set("customer_role", customer.RoleCustomer)
		}
		c.Next()
	})

	s.router.POST("/reservations", handler.CreateReservation)
	s.router.GET("/reservations", handler.ListReservations)
	s.router.GET("/reservations/:id", handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", handler.CancelReservation)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) perform(method, url, actor string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set("X-Test-Actor", actor)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func confirmedView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         500001,
		PackageID:  400001,
		CustomerID: suiteCustomerID,
		Status:     reservation.StatusConfirmed.String(),
		DateStart:  "2025-06-10",
		DateEnd:    "2025-06-13",
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	body := reqdto.CreateReservationRequest{PackageID: 400001}
	key := uuid.New()
	withKey := map[string]string{"Idempotency-Key": key.String()}

	s.Run("success: 201 Created for a fresh reservation", func() {
		s.commands.createResult = &commands.CreateReservationResult{Reservation: confirmedView()}
		s.commands.createErr = nil

		rec := s.perform(http.MethodPost, url, "customer", body, withKey)

		s.Equal(http.StatusCreated, rec.Code)
		var resp resdto.ReservationResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(int64(500001), resp.ID)
		s.Equal(suiteCustomerID, s.commands.lastActorID)
		s.Equal(key, s.commands.lastKey)
	})

	s.Run("success: 200 OK when the idempotency key replays", func() {
		s.commands.createResult = &commands.CreateReservationResult{Reservation: confirmedView(), IsReplayed: true}
		s.commands.createErr = nil

		rec := s.perform(http.MethodPost, url, "customer", body, withKey)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		before := s.commands.createCalls
		rec := s.perform(http.MethodPost, url, "customer", body, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal(before, s.commands.createCalls)
	})

	s.Run("error: 400 when the key is not a UUID", func() {
		rec := s.perform(http.MethodPost, url, "customer", body, map[string]string{"Idempotency-Key": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error codes map the command failures", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"unknown package", errs.ErrPackageNotFound, http.StatusNotFound},
			{"missing inventory", errs.ErrProductNotFound, http.StatusNotFound},
			{"unknown customer", errs.ErrCustomerNotFound, http.StatusNotFound},
			{"sold out", errs.ErrCapacityExhausted, http.StatusConflict},
			{"key reused with other body", errs.ErrDuplicateRequest, http.StatusConflict},
			{"still processing", errs.ErrIdempotencyInProgress, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.commands.createResult = nil
				s.commands.createErr = tc.err

				rec := s.perform(http.MethodPost, url, "customer", body, withKey)
				s.Equal(tc.code, rec.Code)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	url := "/reservations/500001/cancel"

	s.Run("success: 200 OK with the refund breakdown", func() {
		cancelled := confirmedView()
		cancelled.Status = reservation.StatusCancelled.String()
		s.commands.cancelResult = &commands.CancelReservationResult{
			Reservation:  cancelled,
			Tier:         reservation.TierClose,
			RefundAmount: 290,
		}
		s.commands.cancelErr = nil

		rec := s.perform(http.MethodPost, url, "customer", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.CancellationResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(int64(290), resp.Refund)
		s.Equal(reservation.TierClose.String(), resp.RefundTier)
		s.False(s.commands.lastIsAdmin)
	})

	s.Run("admin identity is forwarded to the command", func() {
		s.commands.cancelResult = &commands.CancelReservationResult{
			Reservation:  confirmedView(),
			Tier:         reservation.TierImmediate,
			RefundAmount: 415,
		}
		s.commands.cancelErr = nil

		rec := s.perform(http.MethodPost, url, "admin", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.True(s.commands.lastIsAdmin)
		s.Equal(suiteAdminID, s.commands.lastActorID)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.commands.cancelResult = nil
		s.commands.cancelErr = errs.ErrReservationNotFound

		rec := s.perform(http.MethodPost, url, "customer", nil, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 403 when the reservation belongs to someone else", func() {
		s.commands.cancelResult = nil
		s.commands.cancelErr = queries.ErrAccessDenied

		rec := s.perform(http.MethodPost, url, "customer", nil, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.commands.cancelResult = nil
		s.commands.cancelErr = errs.ErrAlreadyCancelled

		rec := s.perform(http.MethodPost, url, "customer", nil, nil)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := s.perform(http.MethodPost, "/reservations/abc/cancel", "customer", nil, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: 200 OK for the owner", func() {
		s.queries.view = confirmedView()
		s.queries.err = nil

		rec := s.perform(http.MethodGet, "/reservations/500001", "customer", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 403 for another customer's row", func() {
		s.queries.view = nil
		s.queries.err = queries.ErrAccessDenied

		rec := s.perform(http.MethodGet, "/reservations/500001", "customer", nil, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.queries.view = nil
		s.queries.err = errs.ErrReservationNotFound

		rec := s.perform(http.MethodGet, "/reservations/500001", "customer", nil, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.Run("customers get their own rows", func() {
		s.queries.views = []*queries.ReservationView{confirmedView()}
		s.queries.err = nil
		s.queries.listedAll = false

		rec := s.perform(http.MethodGet, "/reservations", "customer", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.False(s.queries.listedAll)
		s.Equal(suiteCustomerID, s.queries.listedCustomer)
	})

	s.Run("admins get the full ledger", func() {
		s.queries.views = []*queries.ReservationView{confirmedView()}
		s.queries.err = nil
		s.queries.listedAll = false

		rec := s.perform(http.MethodGet, "/reservations", "admin", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.queries.listedAll)
	})
}
