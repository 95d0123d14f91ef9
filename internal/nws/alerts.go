package nws

import (
	"context"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// GetAlerts returns all active alerts.
func (c *Client) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	return c.alerts(ctx, "alerts", "/alerts/active")
}

// GetAlertsByArea returns active alerts for a state or marine area code.
func (c *Client) GetAlertsByArea(ctx context.Context, area string) ([]domain.Alert, error) {
	return c.alerts(ctx, "alerts_by_area", segments("alerts", "active", "area", area))
}

// GetAlertsByZone returns active alerts for a zone.
func (c *Client) GetAlertsByZone(ctx context.Context, zone string) ([]domain.Alert, error) {
	return c.alerts(ctx, "alerts_by_zone", segments("alerts", "active", "zone", zone))
}

// GetAlertsByRegion returns active alerts for a marine region.
func (c *Client) GetAlertsByRegion(ctx context.Context, region string) ([]domain.Alert, error) {
	return c.alerts(ctx, "alerts_by_region", segments("alerts", "active", "region", region))
}

// GetAlertByID returns the alert with the given id as a one-element list.
func (c *Client) GetAlertByID(ctx context.Context, id string) ([]domain.Alert, error) {
	resp, err := c.get(ctx, "alert", segments("alerts", id))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeAlert(resp.Body, resp.RetrievedAt), nil
}

// GetAlertTypes returns the recognized alert event types.
func (c *Client) GetAlertTypes(ctx context.Context) ([]string, error) {
	resp, err := c.get(ctx, "alert_types", "/alerts/types")
	if err != nil {
		return nil, err
	}
	return domain.NormalizeAlertTypes(resp.Body), nil
}

// GetAlertCounts returns active alert totals broken down by area, region, and zone.
func (c *Client) GetAlertCounts(ctx context.Context) (domain.AlertCounts, error) {
	resp, err := c.get(ctx, "alert_counts", "/alerts/active/count")
	if err != nil {
		return domain.AlertCounts{}, err
	}
	return domain.NormalizeAlertCounts(resp.Body, resp.RetrievedAt), nil
}

func (c *Client) alerts(ctx context.Context, endpoint, path string) ([]domain.Alert, error) {
	resp, err := c.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeAlerts(resp.Body, resp.RetrievedAt), nil
}
