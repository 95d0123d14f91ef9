package nws

import (
	"context"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// GetZone returns one zone of the given type. The type is validated before
// any request is made.
func (c *Client) GetZone(ctx context.Context, zoneType, zoneID string) (domain.Zone, error) {
	if err := domain.ValidateZoneType(zoneType); err != nil {
		return domain.Zone{}, err
	}
	resp, err := c.get(ctx, "zone", segments("zones", zoneType, zoneID))
	if err != nil {
		return domain.Zone{}, err
	}
	return domain.NormalizeZone(resp.Body, resp.RetrievedAt), nil
}

// GetZones returns every zone of the given type.
func (c *Client) GetZones(ctx context.Context, zoneType string) ([]domain.Zone, error) {
	if err := domain.ValidateZoneType(zoneType); err != nil {
		return nil, err
	}
	resp, err := c.get(ctx, "zones", segments("zones", zoneType))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeZones(resp.Body, resp.RetrievedAt), nil
}

// GetZoneStations returns the observation stations in a forecast zone.
func (c *Client) GetZoneStations(ctx context.Context, zoneID string) ([]domain.Station, error) {
	resp, err := c.get(ctx, "zone_stations", segments("zones", "forecast", zoneID, "stations"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeStations(resp.Body, resp.RetrievedAt), nil
}

// GetZoneObservations returns recent observations from stations in a forecast zone.
func (c *Client) GetZoneObservations(ctx context.Context, zoneID string) ([]domain.Observation, error) {
	resp, err := c.get(ctx, "zone_observations", segments("zones", "forecast", zoneID, "observations"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeObservations(resp.Body, resp.RetrievedAt), nil
}

// GetZoneForecast returns the narrative forecast for a forecast zone.
func (c *Client) GetZoneForecast(ctx context.Context, zoneID string) (domain.ZoneForecast, error) {
	resp, err := c.get(ctx, "zone_forecast", segments("zones", "forecast", zoneID, "forecast"))
	if err != nil {
		return domain.ZoneForecast{}, err
	}
	return domain.NormalizeZoneForecast(resp.Body, resp.RetrievedAt), nil
}
