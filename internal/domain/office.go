package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var validForecastOffices = []string{
	"AKQ", "ALY", "BGM", "BOX", "BTV", "BUF", "CAE", "CAR", "CHS", "CLE",
	"CTP", "GSP", "GYX", "ILM", "ILN", "LWX", "MHX", "OKX", "PBZ", "PHI",
	"RAH", "RLX", "RNK", "ABQ", "AMA", "BMX", "BRO", "CRP", "EPZ", "EWX",
	"FFC", "FWD", "HGX", "HUN", "JAN", "JAX", "KEY", "LCH", "LIX", "LUB",
	"LZK", "MAF", "MEG", "MFL", "MLB", "MOB", "MRX", "OHX", "OUN", "SHV",
	"SJT", "SJU", "TAE", "TBW", "TSA", "ABR", "APX", "ARX", "BIS", "BOU",
	"CYS", "DDC", "DLH", "DMX", "DTX", "DVN", "EAX", "FGF", "FSD", "GID",
	"GJT", "GLD", "GRB", "GRR", "ICT", "ILX", "IND", "IWX", "JKL", "LBF",
	"LMK", "LOT", "LSX", "MKX", "MPX", "MQT", "OAX", "PAH", "PUB", "RIW",
	"SGF", "TOP", "UNR", "BOI", "BYZ", "EKA", "FGZ", "GGW", "HNX", "LKN",
	"LOX", "MFR", "MSO", "MTR", "OTX", "PDT", "PIH", "PQR", "PSR", "REV",
	"SEW", "SGX", "SLC", "STO", "TFX", "TWC", "VEF", "AER", "AFC", "AFG",
	"AJK", "ALU", "GUM", "HPA", "HFO", "PPG", "STU", "NH1", "NH2", "ONA",
	"ONP",
}

var validZoneTypes = []string{
	"land", "marine", "forecast", "public", "coastal", "offshore", "fire", "county",
}

// ValidForecastOffices returns the forecast office identifiers the API
// accepts. It is the authoritative list for request validation; see
// ExtractEnumeration for recovering the live list from the API. The result is
// a copy and may be modified freely.
func ValidForecastOffices() []string { return slices.Clone(validForecastOffices) }

// ValidZoneTypes returns a copy of the zone types accepted by /zones/{type}.
func ValidZoneTypes() []string { return slices.Clone(validZoneTypes) }

var (
	// ErrInvalidOffice matches any *InvalidOfficeError via errors.Is.
	ErrInvalidOffice = errors.New("invalid forecast office")
	// ErrInvalidZoneType matches any *InvalidZoneTypeError via errors.Is.
	ErrInvalidZoneType = errors.New("invalid zone type")
)

// InvalidOfficeError reports a forecast office identifier outside
// ValidForecastOffices.
type InvalidOfficeError struct {
	Office string
}

func (e *InvalidOfficeError) Error() string {
	return fmt.Sprintf("invalid forecast office %q. Please specify a valid forecast office: %s",
		e.Office, strings.Join(validForecastOffices, ", "))
}

func (e *InvalidOfficeError) Is(target error) bool { return target == ErrInvalidOffice }

// InvalidZoneTypeError reports a zone type outside ValidZoneTypes.
type InvalidZoneTypeError struct {
	ZoneType string
}

func (e *InvalidZoneTypeError) Error() string {
	return fmt.Sprintf("invalid zone type %q. Please specify a valid zone type: %s",
		e.ZoneType, strings.Join(validZoneTypes, ", "))
}

func (e *InvalidZoneTypeError) Is(target error) bool { return target == ErrInvalidZoneType }

// ValidateOffice returns an *InvalidOfficeError unless office is a valid
// forecast office identifier.
func ValidateOffice(office string) error {
	if !slices.Contains(validForecastOffices, office) {
		return &InvalidOfficeError{Office: office}
	}
	return nil
}

// ValidateZoneType returns an *InvalidZoneTypeError unless zoneType is valid.
func ValidateZoneType(zoneType string) error {
	if !slices.Contains(validZoneTypes, zoneType) {
		return &InvalidZoneTypeError{ZoneType: zoneType}
	}
	return nil
}

// Office is a Weather Forecast Office.
type Office struct {
	RetrievedAt         time.Time `json:"retrieved_at"`
	OfficeID            *string   `json:"office_id"`
	Name                *string   `json:"name"`
	StreetAddress       *string   `json:"street_address"`
	City                *string   `json:"city"`
	State               *string   `json:"state"`
	ZipCode             *string   `json:"zip_code"`
	PhoneNumber         *string   `json:"phone_number"`
	FaxNumber           *string   `json:"fax_number"`
	Email               *string   `json:"email"`
	URL                 *string   `json:"url"`
	ParentURL           *string   `json:"parent_url"`
	NWSRegion           *string   `json:"nws_region"`
	Counties            []string  `json:"counties"`
	ForecastZones       []string  `json:"forecast_zones"`
	FireZones           []string  `json:"fire_zones"`
	ObservationStations []string  `json:"observation_stations"`
}

// NormalizeOffice reads the /offices/{id} body.
func NormalizeOffice(body Object, retrievedAt time.Time) Office {
	return Office{
		RetrievedAt:         retrievedAt,
		OfficeID:            body.String("id"),
		Name:                body.String("name"),
		StreetAddress:       body.String("address", "streetAddress"),
		City:                body.String("address", "addressLocality"),
		State:               body.String("address", "addressRegion"),
		ZipCode:             body.String("address", "postalCode"),
		PhoneNumber:         body.String("telephone"),
		FaxNumber:           body.String("faxNumber"),
		Email:               body.String("email"),
		URL:                 body.String("sameAs"),
		ParentURL:           body.String("parentOrganization"),
		NWSRegion:           body.String("nwsRegion"),
		Counties:            body.Strings("responsibleCounties"),
		ForecastZones:       body.Strings("responsibleForecastZones"),
		FireZones:           body.Strings("responsibleFireZones"),
		ObservationStations: body.Strings("approvedObservationStations"),
	}
}

// OfficeHeadline is a news headline published by a forecast office.
type OfficeHeadline struct {
	RetrievedAt     time.Time  `json:"retrieved_at"`
	HeadlineID      *string    `json:"headline_id"`
	Name            *string    `json:"name"`
	Title           *string    `json:"title"`
	IssuedAt        *time.Time `json:"issued_at"`
	URL             *string    `json:"url"`
	Content         *string    `json:"content"`
	HeadlineSummary *string    `json:"headline_summary"`
	OfficeURL       *string    `json:"office_url"`
	IsImportant     *bool      `json:"is_important"`
}

// NormalizeOfficeHeadline reads a single headline object.
func NormalizeOfficeHeadline(h Object, retrievedAt time.Time) OfficeHeadline {
	return OfficeHeadline{
		RetrievedAt:     retrievedAt,
		HeadlineID:      h.String("id"),
		Name:            h.String("name"),
		Title:           h.String("title"),
		IssuedAt:        h.Time("issuanceTime"),
		URL:             h.String("link"),
		Content:         h.String("content"),
		HeadlineSummary: h.String("summary"),
		OfficeURL:       h.String("office"),
		IsImportant:     h.Bool("important"),
	}
}

// NormalizeOfficeHeadlines returns one OfficeHeadline per "@graph" entry, all
// stamped with the same retrieval time.
func NormalizeOfficeHeadlines(body Object, retrievedAt time.Time) []OfficeHeadline {
	nodes := body.Objects("@graph")
	headlines := make([]OfficeHeadline, 0, len(nodes))
	for _, n := range nodes {
		headlines = append(headlines, NormalizeOfficeHeadline(n, retrievedAt))
	}
	return headlines
}
