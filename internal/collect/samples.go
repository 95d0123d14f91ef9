package collect

import "time"

// Samples holds the identifiers the collector requests for endpoints that
// need one. DefaultSamples returns identifiers that exist on the live API.
type Samples struct {
	ObservationStation string
	ObservationTime    time.Time

	RadarServer       string
	RadarStation      string
	RadarAlarmStation string
	RadarQueueHost    string
	RadarQueueStation string

	AlertArea string

	ProductLocation      string
	ProductType          string
	LocationsProductType string // products/types/{id}/locations
	FilterProductType    string // products/types/{type}/locations/{loc}
	FilterLocation       string
	ProductID            string

	ZoneType        string
	ZoneID          string
	ZoneListType    string
	ForecastZone    string
	ObservationZone string

	Office         string
	OfficeHeadline string

	ATSU        string
	SigmetDate  string
	SigmetTime  string
	CWSU        string
	CWADate     string
	CWASequence int
}

// DefaultSamples returns the stock sample identifiers.
func DefaultSamples() Samples {
	return Samples{
		ObservationStation: "KBOS",
		ObservationTime:    time.Date(2024, 8, 19, 18, 54, 0, 0, time.UTC),

		RadarServer:       "ldm2",
		RadarStation:      "KMVX",
		RadarAlarmStation: "KHPX",
		RadarQueueHost:    "rds",
		RadarQueueStation: "KBOX",

		AlertArea: "FL",

		ProductLocation:      "BGM",
		ProductType:          "RR2",
		LocationsProductType: "RVF",
		FilterProductType:    "ADA",
		FilterLocation:       "SRH",
		ProductID:            "5359e496-498b-40b9-bae6-0f0dcddc87a2",

		ZoneType:        "county",
		ZoneID:          "AKC013",
		ZoneListType:    "coastal",
		ForecastZone:    "TXZ120",
		ObservationZone: "TNZ061",

		Office:         "BOX",
		OfficeHeadline: "a194056daf964fce962ec37e0d6dcdef",

		ATSU:        "KKCI",
		SigmetDate:  "2024-08-18",
		SigmetTime:  "0455",
		CWSU:        "ZOB",
		CWADate:     "2024-08-17",
		CWASequence: 101,
	}
}
