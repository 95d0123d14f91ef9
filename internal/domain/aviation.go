package domain

import "time"

// Sigmet is a significant meteorological information advisory.
type Sigmet struct {
	RetrievedAt time.Time  `json:"retrieved_at"`
	URL         *string    `json:"url"`
	IssuedAt    *time.Time `json:"issued_at"`
	FIR         *string    `json:"fir"`
	ATSU        *string    `json:"atsu"`
	Sequence    *string    `json:"sequence"`
	Phenomenon  *string    `json:"phenomenon"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// NormalizeSigmet reads one SIGMET feature.
func NormalizeSigmet(feature Object, retrievedAt time.Time) Sigmet {
	p := feature.Object("properties")
	url := p.String("id")
	if url == nil {
		url = feature.String("id")
	}
	return Sigmet{
		RetrievedAt: retrievedAt,
		URL:         url,
		IssuedAt:    p.Time("issueTime"),
		FIR:         p.String("fir"),
		ATSU:        p.String("atsu"),
		Sequence:    p.String("sequence"),
		Phenomenon:  p.String("phenomenon"),
		StartsAt:    p.Time("start"),
		EndsAt:      p.Time("end"),
	}
}

// NormalizeSigmets returns one Sigmet per feature.
func NormalizeSigmets(body Object, retrievedAt time.Time) []Sigmet {
	features := body.Objects("features")
	sigmets := make([]Sigmet, 0, len(features))
	for _, f := range features {
		sigmets = append(sigmets, NormalizeSigmet(f, retrievedAt))
	}
	return sigmets
}

// CWSU is a Center Weather Service Unit.
type CWSU struct {
	RetrievedAt time.Time `json:"retrieved_at"`
	CWSUID      *string   `json:"cwsu_id"`
	Name        *string   `json:"name"`
	Street      *string   `json:"street"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	ZipCode     *string   `json:"zip_code"`
	Email       *string   `json:"email"`
	Fax         *string   `json:"fax"`
	Phone       *string   `json:"phone"`
	URL         *string   `json:"url"`
	NWSRegion   *string   `json:"nws_region"`
}

// NormalizeCWSU reads the /aviation/cws/{id} body.
func NormalizeCWSU(body Object, retrievedAt time.Time) CWSU {
	return CWSU{
		RetrievedAt: retrievedAt,
		CWSUID:      body.String("id"),
		Name:        body.String("name"),
		Street:      body.String("street"),
		City:        body.String("city"),
		State:       body.String("state"),
		ZipCode:     body.String("zipCode"),
		Email:       body.String("email"),
		Fax:         body.String("fax"),
		Phone:       body.String("phone"),
		URL:         body.String("url"),
		NWSRegion:   body.String("nwsRegion"),
	}
}

// CWA is a Center Weather Advisory.
type CWA struct {
	RetrievedAt      time.Time  `json:"retrieved_at"`
	URL              *string    `json:"url"`
	IssuedAt         *time.Time `json:"issued_at"`
	CWSU             *string    `json:"cwsu"`
	Sequence         *int64     `json:"sequence"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
	ObservedProperty *string    `json:"observed_property"`
	Text             *string    `json:"text"`
}

// NormalizeCWA reads one CWA feature.
func NormalizeCWA(feature Object, retrievedAt time.Time) CWA {
	p := feature.Object("properties")
	url := p.String("id")
	if url == nil {
		url = feature.String("id")
	}
	return CWA{
		RetrievedAt:      retrievedAt,
		URL:              url,
		IssuedAt:         p.Time("issueTime"),
		CWSU:             p.String("cwsu"),
		Sequence:         p.Int("sequence"),
		StartsAt:         p.Time("start"),
		EndsAt:           p.Time("end"),
		ObservedProperty: p.String("observedProperty"),
		Text:             p.String("text"),
	}
}

// NormalizeCWAs returns one CWA per feature.
func NormalizeCWAs(body Object, retrievedAt time.Time) []CWA {
	features := body.Objects("features")
	cwas := make([]CWA, 0, len(features))
	for _, f := range features {
		cwas = append(cwas, NormalizeCWA(f, retrievedAt))
	}
	return cwas
}
