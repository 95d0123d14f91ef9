package domain

import "time"

// PriorAlert references an earlier alert that an alert updates or supersedes.
type PriorAlert struct {
	PriorAlertID *string    `json:"prior_alert_id"`
	URL          *string    `json:"url"`
	SentAt       *time.Time `json:"sent_at"`
}

// Alert is a single CAP alert.
// See https://vlab.noaa.gov/web/nws-common-alerting-protocol.
type Alert struct {
	RetrievedAt       time.Time  `json:"retrieved_at"`
	AlertID           *string    `json:"alert_id"`
	URL               *string    `json:"url"`
	UpdatedAt         *time.Time `json:"updated_at"`
	Title             *string    `json:"title"`
	Headline          *string    `json:"headline"`
	Description       *string    `json:"description"`
	Instruction       *string    `json:"instruction"`
	Urgency           *string    `json:"urgency"`
	Severity          *string    `json:"severity"`
	AreaDescription   *string    `json:"area_description"`
	AffectedZonesURLs []string   `json:"affected_zones_urls"`
	AreasUGC          []string   `json:"areas_ugc"`
	AreasSAME         []string   `json:"areas_same"`
	SentBy            *string    `json:"sent_by"`
	SentByName        *string    `json:"sent_by_name"`
	SentAt            *time.Time `json:"sent_at"`
	EffectiveAt       *time.Time `json:"effective_at"`
	EndsAt            *time.Time `json:"ends_at"`
	Status            *string    `json:"status"`
	MessageType       *string    `json:"message_type"`
	Category          *string    `json:"category"`
	Certainty         *string    `json:"certainty"`
	EventType         *string    `json:"event_type"`
	OnsetAt           *time.Time `json:"onset_at"`
	ExpiresAt         *time.Time `json:"expires_at"`
	ResponseType      *string    `json:"response_type"`

	// CAP parameters. Each is a list in the source payload.
	CAPAWIPSID         []string `json:"cap_awips_id"`
	CAPWMOID           []string `json:"cap_wmo_id"`
	CAPHeadline        []string `json:"cap_headline"`
	CAPBlockedChannels []string `json:"cap_blocked_channels"`
	CAPVTEC            []string `json:"cap_vtec"`

	PriorAlerts []PriorAlert `json:"prior_alerts"`
}

// NormalizeAlerts returns one Alert per entry of body's "features" list, in
// response order.
func NormalizeAlerts(body Object, retrievedAt time.Time) []Alert {
	features := body.List("features")
	alerts := make([]Alert, 0, len(features))
	for _, f := range features {
		alerts = append(alerts, normalizeAlertFeature(AsObject(f), retrievedAt))
	}
	return alerts
}

// NormalizeAlert normalizes a single alert fetched by id. The object is
// wrapped in a one-element feature list so it follows the list code path.
func NormalizeAlert(body Object, retrievedAt time.Time) []Alert {
	return NormalizeAlerts(Object{"features": []any{map[string]any(body)}}, retrievedAt)
}

func normalizeAlertFeature(feature Object, retrievedAt time.Time) Alert {
	props := feature.Object("properties")
	params := props.Object("parameters")
	alert := Alert{
		RetrievedAt:        retrievedAt,
		AlertID:            props.String("id"),
		URL:                feature.String("id"),
		UpdatedAt:          feature.Time("updated"),
		Title:              feature.String("title"),
		Headline:           props.String("headline"),
		Description:        props.String("description"),
		Instruction:        props.String("instruction"),
		Urgency:            props.String("urgency"),
		Severity:           props.String("severity"),
		AreaDescription:    props.String("areaDesc"),
		AffectedZonesURLs:  props.Strings("affectedZones"),
		AreasUGC:           props.Strings("geocode", "UGC"),
		AreasSAME:          props.Strings("geocode", "SAME"),
		SentBy:             props.String("sender"),
		SentByName:         props.String("senderName"),
		SentAt:             props.Time("sent"),
		EffectiveAt:        props.Time("effective"),
		EndsAt:             props.Time("ends"),
		Status:             props.String("status"),
		MessageType:        props.String("messageType"),
		Category:           props.String("category"),
		Certainty:          props.String("certainty"),
		EventType:          props.String("event"),
		OnsetAt:            props.Time("onset"),
		ExpiresAt:          props.Time("expires"),
		ResponseType:       props.String("response"),
		CAPAWIPSID:         params.Strings("AWIPSidentifier"),
		CAPWMOID:           params.Strings("WMOidentifier"),
		CAPHeadline:        params.Strings("NWSheadline"),
		CAPBlockedChannels: params.Strings("BLOCKCHANNEL"),
		CAPVTEC:            params.Strings("VTEC"),
	}

	// References that are not objects still occupy a slot so the count and
	// order match the source list.
	refs := props.List("references")
	alert.PriorAlerts = make([]PriorAlert, 0, len(refs))
	for _, r := range refs {
		ref := AsObject(r)
		alert.PriorAlerts = append(alert.PriorAlerts, PriorAlert{
			PriorAlertID: ref.String("identifier"),
			URL:          ref.String("@id"),
			SentAt:       ref.Time("sent"),
		})
	}
	return alert
}

// AlertCounts is a snapshot of active alert totals.
type AlertCounts struct {
	RetrievedAt time.Time        `json:"retrieved_at"`
	Total       *int64           `json:"total"`
	Land        *int64           `json:"land"`
	Marine      *int64           `json:"marine"`
	Regions     map[string]int64 `json:"regions"`
	Areas       map[string]int64 `json:"areas"`
	Zones       map[string]int64 `json:"zones"`
}

// NormalizeAlertCounts reads the /alerts/active/count body.
func NormalizeAlertCounts(body Object, retrievedAt time.Time) AlertCounts {
	return AlertCounts{
		RetrievedAt: retrievedAt,
		Total:       body.Int("total"),
		Land:        body.Int("land"),
		Marine:      body.Int("marine"),
		Regions:     body.Counts("regions"),
		Areas:       body.Counts("areas"),
		Zones:       body.Counts("zones"),
	}
}

// NormalizeAlertTypes reads the /alerts/types body. The list is never nil.
func NormalizeAlertTypes(body Object) []string {
	types := body.Strings("eventTypes")
	if types == nil {
		return []string{}
	}
	return types
}
