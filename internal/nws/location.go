package nws

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// ErrNoGridpoint is returned when a location lacks the forecast grid
// coordinates needed to address gridpoint endpoints.
var ErrNoGridpoint = errors.New("location has no forecast gridpoint")

// observationTimeLayout matches the timestamps the API uses in observation URLs.
const observationTimeLayout = "2006-01-02T15:04:05-07:00"

// GetPoint resolves coordinates to their forecast office and grid.
func (c *Client) GetPoint(ctx context.Context, lat, lon float64) (domain.Location, error) {
	return c.point(ctx, domain.GeocodeResult{Lat: lat, Lon: lon})
}

// GetLocation geocodes a one-line street address and resolves the result to
// its forecast office and grid.
func (c *Client) GetLocation(ctx context.Context, address string) (domain.Location, error) {
	geo, err := c.geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	return c.point(ctx, geo)
}

func (c *Client) point(ctx context.Context, geo domain.GeocodeResult) (domain.Location, error) {
	resp, err := c.get(ctx, "points", fmt.Sprintf("/points/%.4f,%.4f", geo.Lat, geo.Lon))
	if err != nil {
		return domain.Location{}, err
	}
	return domain.NormalizeLocation(resp.Body, geo, resp.RetrievedAt), nil
}

// GetStationsNearLocation returns the observation stations serving a
// location's gridpoint, nearest first.
func (c *Client) GetStationsNearLocation(ctx context.Context, loc domain.Location) ([]domain.Station, error) {
	path, err := gridpointPath(loc, "stations")
	if err != nil {
		return nil, err
	}
	resp, err := c.get(ctx, "gridpoint_stations", path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeStations(resp.Body, resp.RetrievedAt), nil
}

// GetExtendedForecast returns the twelve-hour period forecast for a location.
func (c *Client) GetExtendedForecast(ctx context.Context, loc domain.Location) (domain.Forecast, error) {
	return c.forecast(ctx, loc, "extended", "forecast")
}

// GetHourlyForecast returns the hourly forecast for a location.
func (c *Client) GetHourlyForecast(ctx context.Context, loc domain.Location) (domain.Forecast, error) {
	return c.forecast(ctx, loc, "hourly", "forecast", "hourly")
}

func (c *Client) forecast(ctx context.Context, loc domain.Location, kind string, tail ...string) (domain.Forecast, error) {
	path, err := gridpointPath(loc, tail...)
	if err != nil {
		return domain.Forecast{}, err
	}
	resp, err := c.get(ctx, "forecast_"+kind, path)
	if err != nil {
		return domain.Forecast{}, err
	}
	return domain.NormalizeForecast(resp.Body, kind, resp.RetrievedAt), nil
}

func gridpointPath(loc domain.Location, tail ...string) (string, error) {
	if loc.GridID == nil || loc.GridX == nil || loc.GridY == nil {
		return "", ErrNoGridpoint
	}
	path := fmt.Sprintf("%s/%d,%d", segments("gridpoints", *loc.GridID), *loc.GridX, *loc.GridY)
	return path + segments(tail...), nil
}

// GetLatestObservation returns the most recent observation from a station.
func (c *Client) GetLatestObservation(ctx context.Context, stationID string) (domain.Observation, error) {
	resp, err := c.get(ctx, "observation_latest", segments("stations", stationID, "observations", "latest"))
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.NormalizeObservation(resp.Body, resp.RetrievedAt), nil
}

// GetObservations returns the recent observations of a station, newest first.
func (c *Client) GetObservations(ctx context.Context, stationID string) ([]domain.Observation, error) {
	resp, err := c.get(ctx, "observations", segments("stations", stationID, "observations"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeObservations(resp.Body, resp.RetrievedAt), nil
}

// GetObservationAt returns the observation a station made at a specific time.
func (c *Client) GetObservationAt(ctx context.Context, stationID string, at time.Time) (domain.Observation, error) {
	stamp := at.UTC().Format(observationTimeLayout)
	resp, err := c.get(ctx, "observation_at", segments("stations", stationID, "observations", stamp))
	if err != nil {
		return domain.Observation{}, err
	}
	return domain.NormalizeObservation(resp.Body, resp.RetrievedAt), nil
}
