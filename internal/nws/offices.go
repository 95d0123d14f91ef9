package nws

import (
	"context"
	"fmt"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// fallbackMessage is logged when an enumeration request no longer yields values.
const fallbackMessage = "Unable to extract list of valid NWS %s from the API. Falling back on hardcoded values that may be out of date."

// GetOffice returns a forecast office. The identifier is validated before
// any request is made.
func (c *Client) GetOffice(ctx context.Context, officeID string) (domain.Office, error) {
	if err := domain.ValidateOffice(officeID); err != nil {
		return domain.Office{}, err
	}
	resp, err := c.get(ctx, "office", segments("offices", officeID))
	if err != nil {
		return domain.Office{}, err
	}
	return domain.NormalizeOffice(resp.Body, resp.RetrievedAt), nil
}

// GetOfficeHeadlines returns the news headlines of a forecast office.
func (c *Client) GetOfficeHeadlines(ctx context.Context, officeID string) ([]domain.OfficeHeadline, error) {
	if err := domain.ValidateOffice(officeID); err != nil {
		return nil, err
	}
	resp, err := c.get(ctx, "office_headlines", segments("offices", officeID, "headlines"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeOfficeHeadlines(resp.Body, resp.RetrievedAt), nil
}

// GetOfficeHeadline returns a single headline of a forecast office.
func (c *Client) GetOfficeHeadline(ctx context.Context, officeID, headlineID string) (domain.OfficeHeadline, error) {
	if err := domain.ValidateOffice(officeID); err != nil {
		return domain.OfficeHeadline{}, err
	}
	resp, err := c.get(ctx, "office_headline", segments("offices", officeID, "headlines", headlineID))
	if err != nil {
		return domain.OfficeHeadline{}, err
	}
	return domain.NormalizeOfficeHeadline(resp.Body, resp.RetrievedAt), nil
}

// GetValidZones asks the API for the valid zone types by requesting an
// invalid one. ok is false when the error no longer carries the enumeration;
// callers should then use domain.ValidZoneTypes().
func (c *Client) GetValidZones(ctx context.Context) (values []string, ok bool, err error) {
	return c.enumerate(ctx, "valid_zones", segments("zones", domain.EnumSentinel), "zones")
}

// GetValidForecastOffices is GetValidZones for forecast office identifiers.
// Fall back to domain.ValidForecastOffices() when ok is false.
func (c *Client) GetValidForecastOffices(ctx context.Context) (values []string, ok bool, err error) {
	return c.enumerate(ctx, "valid_forecast_offices", segments("offices", domain.EnumSentinel), "forecast offices")
}

func (c *Client) enumerate(ctx context.Context, endpoint, path, kind string) ([]string, bool, error) {
	resp, _, err := c.fetch(ctx, endpoint, path)
	if err != nil {
		return nil, false, err
	}
	values, ok := domain.ExtractEnumeration(resp.Body)
	if !ok {
		c.logger.Warn(fmt.Sprintf(fallbackMessage, kind), "status", resp.StatusCode)
	}
	return values, ok, nil
}
