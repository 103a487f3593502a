package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"example.com/gymcheckin/internal/auth"
	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/domain/mocks"
	"example.com/gymcheckin/internal/persistence/memory"
	"example.com/gymcheckin/internal/usecase"
)

type apiFixture struct {
	gyms     *memory.GymRepository
	checkIns *memory.CheckInRepository
	clock    *domain.FixedClock
	mux      *http.ServeMux
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	clock := domain.NewFixedClock(time.Date(2022, time.January, 20, 8, 0, 0, 0, time.UTC))
	gyms := memory.NewGymRepository()
	checkIns := memory.NewCheckInRepository(clock)

	_, err := gyms.Create(context.Background(), domain.CreateGymData{
		ID:        "gym-01",
		Title:     "JavaScript Gym",
		Latitude:  -20.7439268,
		Longitude: -46.6258785,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewHandler(usecase.NewUseCases(gyms, checkIns, clock), nil).RegisterRoutes(mux)

	return &apiFixture{gyms: gyms, checkIns: checkIns, clock: clock, mux: mux}
}

func (f *apiFixture) do(t *testing.T, method, target, body string, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if claims != nil {
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
	}

	rr := httptest.NewRecorder()
	f.mux.ServeHTTP(rr, req)
	return rr
}

func member(subject string) *auth.Claims {
	return &auth.Claims{Subject: subject, Role: auth.RoleMember, ExpiresAt: time.Now().Add(time.Hour)}
}

func admin(subject string) *auth.Claims {
	return &auth.Claims{Subject: subject, Role: auth.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var problem map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	return problem
}

func TestCreateGymRequiresAdmin(t *testing.T) {
	f := newAPIFixture(t)
	body := `{"title":"TypeScript Gym","phone":"1199999999","latitude":-20.7439268,"longitude":-46.6258785}`

	rr := f.do(t, http.MethodPost, "/gyms", body, member("user-01"))
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.do(t, http.MethodPost, "/gyms", body, admin("admin-01"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp GymResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Gym.ID)
	require.Equal(t, "TypeScript Gym", resp.Gym.Title)
	require.NotNil(t, resp.Gym.Phone)
	require.Nil(t, resp.Gym.Description)
}

func TestCreateGymValidatesCoordinates(t *testing.T) {
	f := newAPIFixture(t)

	for _, body := range []string{
		`{"title":"Gym","latitude":91,"longitude":0}`,
		`{"title":"Gym","latitude":0,"longitude":-181}`,
		`{"title":"Gym","longitude":0}`,
		`{"title":" ","latitude":0,"longitude":0}`,
		`not-json`,
	} {
		rr := f.do(t, http.MethodPost, "/gyms", body, admin("admin-01"))
		require.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestCheckInLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	body := `{"latitude":-20.7439268,"longitude":-46.6258785}`

	rr := f.do(t, http.MethodPost, "/gyms/gym-01/check-ins", body, member("user-01"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created CheckInResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "user-01", created.CheckIn.UserID)
	require.Equal(t, "gym-01", created.CheckIn.GymID)
	require.True(t, f.clock.Now().Equal(created.CheckIn.CreatedAt))

	rr = f.do(t, http.MethodPost, "/gyms/gym-01/check-ins", body, member("user-01"))
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "max_check_ins", decodeProblem(t, rr)["type"])

	rr = f.do(t, http.MethodGet, "/check-ins/history", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code)
	var history CheckInsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history.CheckIns, 1)
	require.Equal(t, 1, history.Page)

	rr = f.do(t, http.MethodGet, "/check-ins/metrics", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code)
	var metrics MetricsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &metrics))
	require.Equal(t, 1, metrics.CheckInsCount)
}

func TestCheckInErrorMapping(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodPost, "/gyms/non-existing-gym/check-ins", `{"latitude":-20.7439268,"longitude":-46.6258785}`, member("user-01"))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not_found", decodeProblem(t, rr)["type"])

	rr = f.do(t, http.MethodPost, "/gyms/gym-01/check-ins", `{"latitude":-20.7930207,"longitude":-46.6012807}`, member("user-01"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "max_distance", decodeProblem(t, rr)["type"])

	rr = f.do(t, http.MethodPost, "/gyms/gym-01/check-ins", `{"latitude":-20.7439268,"longitude":-46.6258785}`, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestNearbyGyms(t *testing.T) {
	f := newAPIFixture(t)
	_, err := f.gyms.Create(context.Background(), domain.CreateGymData{Title: "Far Gym", Latitude: -20.6387965, Longitude: -46.5065128})
	require.NoError(t, err)

	rr := f.do(t, http.MethodGet, "/gyms/nearby?latitude=-20.7439268&longitude=-46.6258785", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp GymsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Gyms, 1)
	require.Equal(t, "gym-01", resp.Gyms[0].ID)

	rr = f.do(t, http.MethodGet, "/gyms/nearby?latitude=abc&longitude=-46.6258785", "", member("user-01"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodGet, "/gyms/nearby?latitude=-20.7439268", "", member("user-01"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSearchGymsPageValidation(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodGet, "/gyms/search?q=javascript", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp GymsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Gyms, 1)

	rr = f.do(t, http.MethodGet, "/gyms/search?q=javascript&page=0", "", member("user-01"))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodGet, "/check-ins/history?page=x", "", member("user-01"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHugePageReturnsEmptyList(t *testing.T) {
	f := newAPIFixture(t)
	rr := f.do(t, http.MethodPost, "/gyms/gym-01/check-ins", `{"latitude":-20.7439268,"longitude":-46.6258785}`, member("user-01"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = f.do(t, http.MethodGet, "/check-ins/history?page=4611686018427387904", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var history CheckInsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.NotNil(t, history.CheckIns)
	require.Empty(t, history.CheckIns)

	rr = f.do(t, http.MethodGet, "/gyms/search?q=javascript&page=4611686018427387904", "", member("user-01"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var gyms GymsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &gyms))
	require.NotNil(t, gyms.Gyms)
	require.Empty(t, gyms.Gyms)
}

func TestRepositoryFailureIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gyms := mocks.NewMockGymRepository(ctrl)
	checkIns := mocks.NewMockCheckInRepository(ctrl)
	checkIns.EXPECT().CountByUserID(gomock.Any(), "user-01").Return(0, errors.New("pool closed"))

	mux := http.NewServeMux()
	NewHandler(usecase.NewUseCases(gyms, checkIns, domain.SystemClock{}), nil).RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/check-ins/metrics", nil)
	req = req.WithContext(auth.WithClaims(req.Context(), member("user-01")))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotContains(t, rr.Body.String(), "pool closed")
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)
	rr := f.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}
