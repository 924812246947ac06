package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

func TestAdvance(t *testing.T) {
	testCases := []struct {
		name      string
		routeType models.RouteType
		count     int
		prevCurr  int
		prevNext  int
		wantCurr  int
		wantNext  int
	}{
		{name: "UD forward", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 1, prevNext: 2, wantCurr: 2, wantNext: 3},
		{name: "UD forward into terminus", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 2, prevNext: 3, wantCurr: 3, wantNext: 4},
		{name: "UD turnaround at end", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 3, prevNext: 4, wantCurr: 4, wantNext: 3},
		{name: "UD backward", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 3, prevNext: 2, wantCurr: 2, wantNext: 1},
		{name: "UD turnaround at start", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 1, prevNext: 0, wantCurr: 0, wantNext: 1},
		{name: "UD equal indices treated as backward", routeType: models.RouteTypeUpDown, count: 5, prevCurr: 2, prevNext: 2, wantCurr: 2, wantNext: 1},
		{name: "UD two stops forward", routeType: models.RouteTypeUpDown, count: 2, prevCurr: 0, prevNext: 1, wantCurr: 1, wantNext: 0},
		{name: "UD two stops backward", routeType: models.RouteTypeUpDown, count: 2, prevCurr: 1, prevNext: 0, wantCurr: 0, wantNext: 1},
		{name: "C increments", routeType: models.RouteTypeCircular, count: 22, prevCurr: 4, prevNext: 5, wantCurr: 5, wantNext: 6},
		{name: "C wraps", routeType: models.RouteTypeCircular, count: 22, prevCurr: 20, prevNext: 21, wantCurr: 21, wantNext: 0},
		{name: "C ignores direction", routeType: models.RouteTypeCircular, count: 22, prevCurr: 9, prevNext: 3, wantCurr: 3, wantNext: 4},
		{name: "C single stop", routeType: models.RouteTypeCircular, count: 1, prevCurr: 0, prevNext: 0, wantCurr: 0, wantNext: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			curr, next, err := Advance(tc.routeType, tc.count, tc.prevCurr, tc.prevNext)

			require.NoError(t, err)
			assert.Equal(t, tc.wantCurr, curr)
			assert.Equal(t, tc.wantNext, next)
		})
	}
}

func TestAdvance_Errors(t *testing.T) {
	_, _, err := Advance(models.RouteTypeCircular, 0, 0, 0)
	assert.ErrorIs(t, err, transit.ErrRouteNotFound)

	_, _, err = Advance(models.RouteTypeUpDown, -1, 0, 0)
	assert.ErrorIs(t, err, transit.ErrRouteNotFound)

	_, _, err = Advance(models.RouteType("X"), 3, 0, 1)
	assert.ErrorIs(t, err, transit.ErrInvalidInput)

	_, _, err = Advance(models.RouteTypeCircular, 5, 0, 7)
	assert.ErrorIs(t, err, transit.ErrIndexOutOfRange)

	_, _, err = Advance(models.RouteTypeUpDown, 5, 0, -3)
	assert.ErrorIs(t, err, transit.ErrIndexOutOfRange)

	// a single-stop UD route cannot turn around
	_, _, err = Advance(models.RouteTypeUpDown, 1, 0, 0)
	assert.ErrorIs(t, err, transit.ErrIndexOutOfRange)
}

func TestAdvance_UDForwardTurnsAroundBeforeEnd(t *testing.T) {
	for n := 2; n <= 30; n++ {
		curr, next := 0, 1
		for steps := 0; steps < n; steps++ {
			prevNext := next
			var err error
			curr, next, err = Advance(models.RouteTypeUpDown, n, curr, next)
			require.NoError(t, err)
			if prevNext == n-1 {
				assert.Equal(t, n-2, next, "n=%d", n)
				break
			}
			assert.Equal(t, prevNext+1, next, "n=%d", n)
		}
		assert.Equal(t, n-1, curr, "n=%d", n)
	}
}

func TestAdvance_CircularCycles(t *testing.T) {
	for n := 1; n <= 30; n++ {
		curr, next := n-1, 0
		for steps := 0; steps < 3*n; steps++ {
			expected := (next + 1) % n
			var err error
			curr, next, err = Advance(models.RouteTypeCircular, n, curr, next)
			require.NoError(t, err)
			assert.Equal(t, expected, next)
		}
	}
}

func TestAdvance_StaysInRange(t *testing.T) {
	for _, rt := range []models.RouteType{models.RouteTypeUpDown, models.RouteTypeCircular} {
		for n := rt.MinStops(); n <= 25; n++ {
			for prevCurr := 0; prevCurr < n; prevCurr++ {
				for prevNext := 0; prevNext < n; prevNext++ {
					curr, next, err := Advance(rt, n, prevCurr, prevNext)
					require.NoError(t, err, "%s n=%d (%d,%d)", rt, n, prevCurr, prevNext)
					assert.True(t, curr >= 0 && curr < n)
					assert.True(t, next >= 0 && next < n)
					assert.Equal(t, prevNext, curr)
				}
			}
		}
	}
}

func TestGetNextStop(t *testing.T) {
	d := newTestUC(t)
	ds := d.serveDataset(t)

	result, err := d.uc.GetNextStop(context.Background(), "210A", 20, 21)

	require.NoError(t, err)
	assert.Equal(t, 21, result.CurrStop.Index)
	assert.Equal(t, "S22", result.CurrStop.StopID)
	assert.Equal(t, 0, result.NextStop.Index)
	assert.Equal(t, "S1", result.NextStop.StopID)
	assert.Equal(t, ds.Stop("S1").Location.ToCoordinates(), result.NextStop.Coordinates)
}

func TestGetNextStop_UDTurnaround(t *testing.T) {
	d := newTestUC(t)
	d.serveDataset(t)

	result, err := d.uc.GetNextStop(context.Background(), "15G", 16, 17)

	require.NoError(t, err)
	assert.Equal(t, "S25", result.CurrStop.StopID)
	assert.Equal(t, 16, result.NextStop.Index)
	assert.Equal(t, "S2", result.NextStop.StopID)
}

func TestGetNextStop_Errors(t *testing.T) {
	d := newTestUC(t)
	d.serveDataset(t)

	_, err := d.uc.GetNextStop(context.Background(), "999", 0, 1)
	assert.ErrorIs(t, err, transit.ErrRouteNotFound)

	_, err = d.uc.GetNextStop(context.Background(), "210A", 0, 40)
	assert.ErrorIs(t, err, transit.ErrIndexOutOfRange)
}

func TestGetNextStop_EmptyRoute(t *testing.T) {
	d := newTestUC(t)
	d.routeRepo.EXPECT().GetRoute(gomock.Any(), "EMPTY").
		Return(&models.Route{RouteNumber: "EMPTY", RouteType: models.RouteTypeCircular}, nil)

	_, err := d.uc.GetNextStop(context.Background(), "EMPTY", 0, 0)
	assert.ErrorIs(t, err, transit.ErrRouteNotFound)
}

func TestGetNextStop_StoreError(t *testing.T) {
	d := newTestUC(t)
	storeErr := errors.New("connection refused")
	d.routeRepo.EXPECT().GetRoute(gomock.Any(), "210A").Return(nil, storeErr)

	_, err := d.uc.GetNextStop(context.Background(), "210A", 0, 1)
	assert.ErrorIs(t, err, storeErr)
}
