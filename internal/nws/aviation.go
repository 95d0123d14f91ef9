package nws

import (
	"context"
	"strconv"

	"github.com/couchcryptid/nws-client/internal/domain"
)

// GetSigmets returns all current SIGMETs.
func (c *Client) GetSigmets(ctx context.Context) ([]domain.Sigmet, error) {
	return c.sigmets(ctx, "sigmets", "/aviation/sigmets")
}

// GetATSUSigmets returns the SIGMETs issued by an air traffic service unit.
func (c *Client) GetATSUSigmets(ctx context.Context, atsu string) ([]domain.Sigmet, error) {
	return c.sigmets(ctx, "atsu_sigmets", segments("aviation", "sigmets", atsu))
}

// GetATSUSigmetsByDate returns an ATSU's SIGMETs for a date (YYYY-MM-DD).
func (c *Client) GetATSUSigmetsByDate(ctx context.Context, atsu, date string) ([]domain.Sigmet, error) {
	return c.sigmets(ctx, "atsu_date_sigmets", segments("aviation", "sigmets", atsu, date))
}

func (c *Client) sigmets(ctx context.Context, endpoint, path string) ([]domain.Sigmet, error) {
	resp, err := c.get(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeSigmets(resp.Body, resp.RetrievedAt), nil
}

// GetSigmet returns one SIGMET identified by ATSU, date, and time (HHMM).
func (c *Client) GetSigmet(ctx context.Context, atsu, date, hhmm string) (domain.Sigmet, error) {
	resp, err := c.get(ctx, "sigmet", segments("aviation", "sigmets", atsu, date, hhmm))
	if err != nil {
		return domain.Sigmet{}, err
	}
	return domain.NormalizeSigmet(resp.Body, resp.RetrievedAt), nil
}

// GetCWSU returns a Center Weather Service Unit.
func (c *Client) GetCWSU(ctx context.Context, cwsuID string) (domain.CWSU, error) {
	resp, err := c.get(ctx, "cwsu", segments("aviation", "cwsus", cwsuID))
	if err != nil {
		return domain.CWSU{}, err
	}
	return domain.NormalizeCWSU(resp.Body, resp.RetrievedAt), nil
}

// GetCWAs returns the current Center Weather Advisories of a CWSU.
func (c *Client) GetCWAs(ctx context.Context, cwsuID string) ([]domain.CWA, error) {
	resp, err := c.get(ctx, "cwas", segments("aviation", "cwsus", cwsuID, "cwas"))
	if err != nil {
		return nil, err
	}
	return domain.NormalizeCWAs(resp.Body, resp.RetrievedAt), nil
}

// GetCWA returns one advisory identified by CWSU, date, and sequence number.
func (c *Client) GetCWA(ctx context.Context, cwsuID, date string, sequence int) (domain.CWA, error) {
	resp, err := c.get(ctx, "cwa", segments("aviation", "cwsus", cwsuID, "cwas", date, strconv.Itoa(sequence)))
	if err != nil {
		return domain.CWA{}, err
	}
	return domain.NormalizeCWA(resp.Body, resp.RetrievedAt), nil
}

// GetGlossary returns the NWS glossary.
func (c *Client) GetGlossary(ctx context.Context) ([]domain.GlossaryTerm, error) {
	resp, err := c.get(ctx, "glossary", "/glossary")
	if err != nil {
		return nil, err
	}
	return domain.NormalizeGlossary(resp.Body, resp.RetrievedAt), nil
}
