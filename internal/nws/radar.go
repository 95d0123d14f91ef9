package nws

import (
	"context"
	"net/url"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// GetRadarStations returns every radar station.
func (c *Client) GetRadarStations(ctx context.Context) ([]domain.RadarStation, error) {
	resp, err := c.get(ctx, "radar_stations", "/radar/stations")
	if err != nil {
		return nil, err
	}
	return domain.NormalizeRadarStations(resp.Body, resp.RetrievedAt), nil
}

// GetRadarStation returns one radar station, e.g. "KMVX".
func (c *Client) GetRadarStation(ctx context.Context, stationID string) (domain.RadarStation, error) {
	resp, err := c.get(ctx, "radar_station", segments("radar", "stations", stationID))
	if err != nil {
		return domain.RadarStation{}, err
	}
	return domain.NormalizeRadarStation(resp.Body, resp.RetrievedAt), nil
}

// GetRadarStationAlarms returns the active alarms for a radar station.
func (c *Client) GetRadarStationAlarms(ctx context.Context, stationID string) ([]domain.RadarAlarm, error) {
	resp, err := c.get(ctx, "radar_station_alarms", segments("radar", "stations", stationID, "alarms"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeRadarAlarms(resp.Body, stationID, resp.RetrievedAt), nil
}

// GetRadarServers returns every radar distribution server.
func (c *Client) GetRadarServers(ctx context.Context) ([]domain.RadarServer, error) {
	resp, err := c.get(ctx, "radar_servers", "/radar/servers")
	if err != nil {
		return nil, err
	}
	return domain.NormalizeRadarServers(resp.Body, resp.RetrievedAt), nil
}

// GetRadarServer returns one radar server, e.g. "ldm2".
func (c *Client) GetRadarServer(ctx context.Context, serverID string) (domain.RadarServer, error) {
	resp, err := c.get(ctx, "radar_server", segments("radar", "servers", serverID))
	if err != nil {
		return domain.RadarServer{}, err
	}
	return domain.NormalizeRadarServer(resp.Body, resp.RetrievedAt), nil
}

// GetRadarQueue returns the products queued on host for a station.
func (c *Client) GetRadarQueue(ctx context.Context, host, stationID string) ([]domain.RadarQueueItem, error) {
	path := segments("radar", "queues", host) + "?" + url.Values{"station": {stationID}}.Encode()
	resp, err := c.get(ctx, "radar_queue", path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeRadarQueue(resp.Body, resp.RetrievedAt), nil
}
