package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/checkin"
	"github.com/surfsup-app/surfsup/services/checkin/mocks"
)

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "surfer-1")
	return c, rec
}

func TestCreateCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	record := &models.CheckIn{
		ID:     uuid.New(),
		UserID: "surfer-1",
		SpotID: "stoneypoint",
		Active: true,
	}
	uc.EXPECT().CheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.CheckInRequest) (*models.CheckIn, error) {
			assert.Equal(t, "surfer-1", req.UserID)
			assert.Equal(t, "stoneypoint", req.SpotID)
			return record, nil
		})

	c, rec := newContext(nethttp.MethodPost, "/v1/checkins", `{"spot_id":"stoneypoint"}`)
	require.NoError(t, handler.CreateCheckIn(c))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestCreateCheckInMissingSpot(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewCheckInHandler(mocks.NewMockCheckInUC(ctrl))

	c, rec := newContext(nethttp.MethodPost, "/v1/checkins", `{}`)
	require.NoError(t, handler.CreateCheckIn(c))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestCreateCheckInConflictCarriesExistingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	existing := &models.CheckIn{
		ID:     uuid.New(),
		UserID: "surfer-1",
		SpotID: "parkpoint",
		Active: true,
	}
	uc.EXPECT().CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, &checkin.ActiveElsewhereError{Existing: existing})

	c, rec := newContext(nethttp.MethodPost, "/v1/checkins", `{"spot_id":"stoneypoint"}`)
	require.NoError(t, handler.CreateCheckIn(c))

	assert.Equal(t, nethttp.StatusConflict, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    *models.CheckIn `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "parkpoint", resp.Data.SpotID)
}

func TestSwitchSpot(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	record := &models.CheckIn{
		ID:     uuid.New(),
		UserID: "surfer-1",
		SpotID: "stoneypoint",
		Active: true,
	}
	uc.EXPECT().SwitchSpot(gomock.Any(), gomock.Any()).Return(record, nil)

	c, rec := newContext(nethttp.MethodPost, "/v1/checkins/switch", `{"spot_id":"stoneypoint"}`)
	require.NoError(t, handler.SwitchSpot(c))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestCheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	id := uuid.New()
	uc.EXPECT().CheckOut(gomock.Any(), id).Return(nil)

	c, rec := newContext(nethttp.MethodDelete, "/v1/checkins/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, handler.CheckOut(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestCheckOutAlreadyEnded(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	id := uuid.New()
	uc.EXPECT().CheckOut(gomock.Any(), id).Return(checkin.ErrNotCheckedIn)

	c, rec := newContext(nethttp.MethodDelete, "/v1/checkins/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, handler.CheckOut(c))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestCheckOutInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewCheckInHandler(mocks.NewMockCheckInUC(ctrl))

	c, rec := newContext(nethttp.MethodDelete, "/v1/checkins/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, handler.CheckOut(c))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestGetSpotCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	uc.EXPECT().GetSpotCount(gomock.Any(), "stoneypoint").
		Return(&models.SpotSurferState{SpotID: "stoneypoint", Count: 3}, nil)

	c, rec := newContext(nethttp.MethodGet, "/v1/spots/stoneypoint/count", "")
	c.SetParamNames("id")
	c.SetParamValues("stoneypoint")
	require.NoError(t, handler.GetSpotCount(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var resp struct {
		Data models.SpotSurferState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Count)
}

func TestGetActiveCheckInWithSpotFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	uc.EXPECT().GetActiveCheckIn(gomock.Any(), "surfer-1", "stoneypoint").
		Return(&models.CheckIn{UserID: "surfer-1", SpotID: "stoneypoint"}, nil)

	c, rec := newContext(nethttp.MethodGet, "/v1/users/surfer-1/checkins/active?spot_id=stoneypoint", "")
	c.SetParamNames("id")
	c.SetParamValues("surfer-1")
	require.NoError(t, handler.GetActiveCheckIn(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestGetActiveCheckInAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	uc.EXPECT().GetActiveCheckInAnywhere(gomock.Any(), "surfer-1").Return(nil, nil)

	c, rec := newContext(nethttp.MethodGet, "/v1/users/surfer-1/checkins/active", "")
	c.SetParamNames("id")
	c.SetParamValues("surfer-1")
	require.NoError(t, handler.GetActiveCheckIn(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestGetUserHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	uc.EXPECT().GetUserHistory(gomock.Any(), "surfer-1", 10).
		Return([]*models.CheckIn{{UserID: "surfer-1", SpotID: "stoneypoint"}}, nil)

	c, rec := newContext(nethttp.MethodGet, "/v1/users/surfer-1/checkins?limit=10", "")
	c.SetParamNames("id")
	c.SetParamValues("surfer-1")
	require.NoError(t, handler.GetUserHistory(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestResetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockCheckInUC(ctrl)
	handler := NewCheckInHandler(uc)

	uc.EXPECT().ResetAll(gomock.Any()).Return(nil)

	c, rec := newContext(nethttp.MethodPost, "/v1/admin/checkins/reset", "")
	require.NoError(t, handler.ResetAll(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
