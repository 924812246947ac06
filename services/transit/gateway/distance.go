package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httpclient "github.com/piresc/onestop/internal/pkg/http"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

const statusOK = "OK"

// distanceMatrixResponse is the subset of the Distance Matrix payload we read
type distanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

type distanceGW struct {
	client *httpclient.Client
}

// NewDistanceGW creates a distance estimator backed by a Distance Matrix style API
func NewDistanceGW(client *httpclient.Client) transit.DistanceGW {
	return &distanceGW{client: client}
}

// Estimate asks the upstream for road distance in meters and duration in seconds
func (g *distanceGW) Estimate(ctx context.Context, from, to models.Coordinates) (*models.DistanceEstimate, error) {
	query := url.Values{}
	query.Set("origins", formatLatLon(from))
	query.Set("destinations", formatLatLon(to))

	var resp distanceMatrixResponse
	if err := g.client.GetJSON(ctx, "", query, &resp); err != nil {
		logger.ErrorCtx(ctx, "Distance lookup failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", transit.ErrUpstreamUnavailable, err)
	}

	if resp.Status != statusOK {
		return nil, fmt.Errorf("%w: status %s %s", transit.ErrUpstreamUnavailable, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty result", transit.ErrUpstreamUnavailable)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != statusOK {
		return nil, fmt.Errorf("%w: element status %s", transit.ErrUpstreamUnavailable, element.Status)
	}

	return &models.DistanceEstimate{
		Distance: element.Distance.Value,
		Duration: element.Duration.Value,
	}, nil
}

func formatLatLon(c models.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
