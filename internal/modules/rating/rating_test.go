package rating

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/database"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository"
)

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) ScanAll(ctx context.Context) ([]domain.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func setupRouter(repo RatingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(repo)).RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	return resp
}

func TestService_ListMyRatings_FiltersByDocumentID(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("ScanAll", mock.Anything).Return([]domain.Rating{
		{EventID: "e1", UserID: "u1", Value: 4},
		{EventID: "e1", UserID: "u2", Value: 2},
		{EventID: "e2", UserID: "u1", Value: 5},
		{EventID: "", UserID: "u1", Value: 0},
	}, nil)

	items, err := NewService(repo).ListMyRatings(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []RatingItem{
		{EventID: "e1", Value: 4},
		{EventID: "e2", Value: 5},
		{EventID: "", Value: 0},
	}, items)
}

func TestService_ListMyRatings_MissingUserID(t *testing.T) {
	repo := new(MockRatingRepository)

	_, err := NewService(repo).ListMyRatings(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingUserID)
	repo.AssertNotCalled(t, "ScanAll", mock.Anything)
}

func TestHandler_ListMyRatings_SQLStore(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create(&[]domain.Rating{
		{EventID: "chess-night", UserID: "alice", Value: 5},
		{EventID: "chess-night", UserID: "bob", Value: 3},
		{EventID: "yoga", UserID: "alice", Value: 4.5},
	}).Error)

	router := setupRouter(repository.NewRatingRepository(db))
	resp := get(router, "/listMyRatings?userId=alice")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"items":[
		{"eventId":"chess-night","value":5,"updatedAt":""},
		{"eventId":"yoga","value":4.5,"updatedAt":""}
	]}`, resp.Body.String())
}

func TestHandler_ListMyRatings_NoMatches(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("ScanAll", mock.Anything).Return([]domain.Rating{{EventID: "e1", UserID: "u2", Value: 1}}, nil)

	resp := get(setupRouter(repo), "/listMyRatings?uid=u1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"items":[]}`, resp.Body.String())
}

func TestHandler_ListMyRatings_MissingUID(t *testing.T) {
	repo := new(MockRatingRepository)

	resp := get(setupRouter(repo), "/listMyRatings")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"uid_required"}`, resp.Body.String())
	repo.AssertNotCalled(t, "ScanAll", mock.Anything)
}

func TestHandler_ListMyRatings_StoreFailure(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("ScanAll", mock.Anything).Return(nil, errors.New("index missing"))

	resp := get(setupRouter(repo), "/listMyRatings?uid=u1")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"internal"}`, resp.Body.String())
}
