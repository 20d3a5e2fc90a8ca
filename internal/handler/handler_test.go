package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/handler"
	service_mocks "github.com/atlasrent/rental-service/internal/handler/mocks"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/auth"
)

var testJWT = auth.Config{Secret: "test-secret", TTL: time.Hour}

type mocks struct {
	auth        *service_mocks.MockAuthService
	car         *service_mocks.MockCarService
	reservation *service_mocks.MockReservationService
	rating      *service_mocks.MockRatingService
	membership  *service_mocks.MockMembershipService
	promotion   *service_mocks.MockPromotionService
}

func newTestRouter(t *testing.T) (*mocks, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &mocks{
		auth:        service_mocks.NewMockAuthService(ctrl),
		car:         service_mocks.NewMockCarService(ctrl),
		reservation: service_mocks.NewMockReservationService(ctrl),
		rating:      service_mocks.NewMockRatingService(ctrl),
		membership:  service_mocks.NewMockMembershipService(ctrl),
		promotion:   service_mocks.NewMockPromotionService(ctrl),
	}
	h := handler.New(handler.Services{
		Auth:        m.auth,
		Car:         m.car,
		Reservation: m.reservation,
		Rating:      m.rating,
		Membership:  m.membership,
		Promotion:   m.promotion,
	}, testJWT, zap.NewNop())
	return m, h.NewRouter()
}

func bearer(t *testing.T, userID int, role model.Role) string {
	t.Helper()
	token, _, err := auth.Sign(testJWT, userID, string(role))
	require.NoError(t, err)
	return "Bearer " + token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, body string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return env
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	renter := model.Actor{ID: 7, Role: model.RoleRenter}
	reqBody := `{"car":3,"pickUpDate":"2030-06-10","returnDate":"2030-06-13"}`

	tests := []struct {
		name         string
		body         string
		mockBehavior func(m *mocks)
		wantCode     int
		wantError    string
	}{
		{
			name: "created",
			body: reqBody,
			mockBehavior: func(m *mocks) {
				m.reservation.EXPECT().
					CreateReservation(gomock.Any(), renter, gomock.Any()).
					Return(model.Reservation{
						ID: 11, UserID: 7, CarID: 3,
						TotalPrice: 2700, Status: model.StatusPending,
					}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "overlapping accepted reservation",
			body: reqBody,
			mockBehavior: func(m *mocks) {
				m.reservation.EXPECT().
					CreateReservation(gomock.Any(), renter, gomock.Any()).
					Return(model.Reservation{}, errs.ErrDatesConflict)
			},
			wantCode:  http.StatusBadRequest,
			wantError: errs.ErrDatesConflict.Error(),
		},
		{
			name: "own car",
			body: reqBody,
			mockBehavior: func(m *mocks) {
				m.reservation.EXPECT().
					CreateReservation(gomock.Any(), renter, gomock.Any()).
					Return(model.Reservation{}, errs.ErrOwnCar)
			},
			wantCode:  http.StatusBadRequest,
			wantError: errs.ErrOwnCar.Error(),
		},
		{
			name:         "missing car field",
			body:         `{"pickUpDate":"2030-06-10","returnDate":"2030-06-13"}`,
			mockBehavior: func(m *mocks) {},
			wantCode:     http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, router := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			r.Header.Set("Authorization", bearer(t, renter.ID, renter.Role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
			env := decode(t, w.Body.String())
			if tt.wantCode == http.StatusCreated {
				require.True(t, env.Success)
				var rsv model.Reservation
				require.NoError(t, json.Unmarshal(env.Data, &rsv))
				require.Equal(t, 11, rsv.ID)
				require.Equal(t, model.StatusPending, rsv.Status)
				require.Equal(t, 2700.0, rsv.TotalPrice)
			} else {
				require.False(t, env.Success)
				if tt.wantError != "" {
					require.Equal(t, tt.wantError, env.Error)
				}
			}
		})
	}
}

func TestHandler_CreateReservation_RoleGate(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
		strings.NewReader(`{"car":3,"pickUpDate":"2030-06-10","returnDate":"2030-06-13"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", bearer(t, 1, model.RoleOwner))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	env := decode(t, w.Body.String())
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
}

func TestHandler_UpdateReservationStatus(t *testing.T) {
	t.Parallel()
	owner := model.Actor{ID: 1, Role: model.RoleOwner}

	t.Run("accept cascades", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.reservation.EXPECT().
			UpdateReservationStatus(gomock.Any(), owner, 5, model.StatusAccepted).
			Return(model.StatusChangeResult{
				Reservation:      model.Reservation{ID: 5, Status: model.StatusAccepted},
				DeletedConflicts: 2,
			}, nil)

		r := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/5/status",
			strings.NewReader(`{"status":"accepted"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", bearer(t, owner.ID, owner.Role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w.Body.String())
		require.True(t, env.Success)
		var result model.StatusChangeResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Equal(t, 2, result.DeletedConflicts)
		require.Equal(t, model.StatusAccepted, result.Reservation.Status)
	})

	t.Run("bad status value", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/5/status",
			strings.NewReader(`{"status":"approved"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", bearer(t, owner.ID, owner.Role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/5/status",
			strings.NewReader(`{"status":"accepted"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		env := decode(t, w.Body.String())
		require.False(t, env.Success)
		require.NotEmpty(t, env.Error)
	})
}

func TestHandler_Availability(t *testing.T) {
	t.Parallel()
	renter := model.Actor{ID: 7, Role: model.RoleRenter}

	m, router := newTestRouter(t)
	from := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	till := time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)
	m.reservation.EXPECT().
		Availability(gomock.Any(), 3, from, till).
		Return(model.Availability{
			IsAvailable: false,
			ConflictingReservations: []model.Reservation{
				{ID: 2, CarID: 3, Status: model.StatusPending},
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet,
		"/api/v1/reservations/availability?carId=3&startDate=2030-06-10&endDate=2030-06-12", http.NoBody)
	r.Header.Set("Authorization", bearer(t, renter.ID, renter.Role))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w.Body.String())
	var availability model.Availability
	require.NoError(t, json.Unmarshal(env.Data, &availability))
	require.False(t, availability.IsAvailable)
	require.Len(t, availability.ConflictingReservations, 1)
}

func TestHandler_AddRating(t *testing.T) {
	t.Parallel()
	renter := model.Actor{ID: 7, Role: model.RoleRenter}

	t.Run("not eligible", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.rating.EXPECT().
			AddRating(gomock.Any(), renter, 3, model.RatingRequest{Score: 4, Comment: "ok"}).
			Return(model.Rating{}, errs.ErrNotEligible)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/cars/3/ratings",
			strings.NewReader(`{"score":4,"comment":"ok"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", bearer(t, renter.ID, renter.Role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
		env := decode(t, w.Body.String())
		require.False(t, env.Success)
	})

	t.Run("score out of range", func(t *testing.T) {
		t.Parallel()
		_, router := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/cars/3/ratings",
			strings.NewReader(`{"score":6}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", bearer(t, renter.ID, renter.Role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListCars(t *testing.T) {
	t.Parallel()

	t.Run("anonymous gets no augmentation", func(t *testing.T) {
		t.Parallel()
		m, router := newTestRouter(t)
		m.car.EXPECT().
			ListCars(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(model.CarList{
				Items:      []model.CarView{{Car: model.Car{ID: 3, RentalPrice: 1000}}},
				Pagination: model.Pagination{Page: 1, Limit: 10, Total: 1},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/cars?make=toyota", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w.Body.String())
		var list model.CarList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list.Items, 1)
		require.Nil(t, list.Items[0].DiscountedPrice)
		require.Nil(t, list.Items[0].Promo)
	})

	t.Run("authenticated renter sees both figures", func(t *testing.T) {
		t.Parallel()
		renter := model.Actor{ID: 7, Role: model.RoleRenter}
		m, router := newTestRouter(t)
		discounted := 900.0
		m.car.EXPECT().
			ListCars(gomock.Any(), &renter, gomock.Any()).
			Return(model.CarList{
				Items: []model.CarView{{
					Car:             model.Car{ID: 3, RentalPrice: 1000},
					DiscountedPrice: &discounted,
					Promo:           &model.PromoQuote{DiscountPercent: 25, PriceAfterPromo: 750},
				}},
				Pagination: model.Pagination{Page: 1, Limit: 10, Total: 1},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/cars", http.NoBody)
		r.Header.Set("Authorization", bearer(t, renter.ID, renter.Role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w.Body.String())
		var list model.CarList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Equal(t, 900.0, *list.Items[0].DiscountedPrice)
		require.Equal(t, 750.0, list.Items[0].Promo.PriceAfterPromo)
	})
}

func TestHandler_MembershipTiers(t *testing.T) {
	t.Parallel()
	m, router := newTestRouter(t)
	m.membership.EXPECT().MembershipTiers().Return([]model.TierInfo{
		{Name: "basic", Price: 0},
		{Name: "silver", Price: 99.99},
		{Name: "gold", Price: 199.99},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/membership/tiers", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w.Body.String())
	var tiers []model.TierInfo
	require.NoError(t, json.Unmarshal(env.Data, &tiers))
	require.Len(t, tiers, 3)
}
