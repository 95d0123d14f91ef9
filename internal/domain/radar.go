package domain

import "time"

// RadarStation is a NEXRAD or TDWR station with its latest diagnostics.
// The RDA, performance and adaptation sections are nil when the source omits
// them or reports them with an unexpected shape, in which case none of their
// keys appear in the encoded record.
type RadarStation struct {
	RetrievedAt           time.Time  `json:"retrieved_at"`
	StationID             *string    `json:"station_id"`
	StationName           *string    `json:"station_name"`
	StationType           *string    `json:"station_type"`
	StationTimezone       *string    `json:"station_timezone"`
	Latitude              *float64   `json:"station_lat"`
	Longitude             *float64   `json:"station_lon"`
	ElevationMeters       *float64   `json:"elevation_meters"`
	ElevationFeet         *float64   `json:"elevation_feet"`
	LatencyCurrentSeconds *float64   `json:"latency_current_seconds"`
	LatencyAverageSeconds *float64   `json:"latency_average_seconds"`
	LatencyMaxSeconds     *float64   `json:"latency_max_seconds"`
	LevelTwoReceivedAt    *time.Time `json:"nexrad_l2_latency_last_received_at"`
	MaxLatencyAt          *time.Time `json:"max_latency_at"`
	ReportingHost         *string    `json:"station_reporting_host"`
	ServerHost            *string    `json:"station_server_host"`

	*RadarRDA
	*RadarPerformance
	*RadarAdaptation

	Unconverted map[string]Measure `json:"unconverted,omitempty"`
}

// RadarRDA is the Radar Data Acquisition subsystem status.
type RadarRDA struct {
	RDARefreshedAt                   *time.Time `json:"rda_refreshed_at"`
	RDAReportingHost                 *string    `json:"rda_reporting_host"`
	RDAResolutionVersion             *string    `json:"rda_resolution_version"`
	RDANexradL2Path                  *string    `json:"rda_nexrad_l2_path"`
	RDAVolumeCoveragePattern         *string    `json:"rda_volume_coverage_pattern"`
	RDAControlStatus                 *string    `json:"rda_control_status"`
	RDABuildNumber                   *float64   `json:"rda_build_number"`
	RDAAlarmSummary                  *string    `json:"rda_alarm_summary"`
	RDAMode                          *string    `json:"rda_mode"`
	RDAGeneratorState                *string    `json:"rda_generator_state"`
	RDASuperResolutionStatus         *string    `json:"rda_super_resolution_status"`
	RDAOperabilityStatus             *string    `json:"rda_operability_status"`
	RDAStatus                        *string    `json:"rda_status"`
	RDAAverageTxPowerWatts           *float64   `json:"rda_average_tx_power_watts"`
	RDAReflectivityCalibrationCorrDB *float64   `json:"rda_reflectivity_calibration_correction_db"`
}

// RadarPerformance holds the latest performance check diagnostics.
type RadarPerformance struct {
	PerformanceRefreshedAt              *time.Time `json:"performance_refreshed_at"`
	PerformanceCheckedAt                *time.Time `json:"performance_checked_at"`
	PerformanceReportingHost            *string    `json:"performance_reporting_host"`
	NTPStatus                           *int64     `json:"performance_ntp_status"`
	CommandChannel                      *string    `json:"performance_command_channel"`
	Linearity                           *float64   `json:"performance_linearity"`
	PowerSource                         *string    `json:"performance_power_source"`
	FuelLevelPercent                    *float64   `json:"performance_fuel_level_percent"`
	DynamicRangeDB                      *float64   `json:"performance_dynamic_range_db"`
	TransmitterPeakPowerWatts           *float64   `json:"performance_transmitter_peak_power_watts"`
	TransmitterRecycleCount             *int64     `json:"performance_transmitter_recycle_count"`
	TransmitterImbalanceDB              *float64   `json:"performance_transmitter_imbalance_db"`
	TransmitterLeavingAirTempCelsius    *float64   `json:"performance_transmitter_leaving_air_temp_celsius"`
	TransmitterLeavingAirTempFahrenheit *float64   `json:"performance_transmitter_leaving_air_temp_fahrenheit"`
	ShelterTempCelsius                  *float64   `json:"performance_shelter_temp_celsius"`
	ShelterTempFahrenheit               *float64   `json:"performance_shelter_temp_fahrenheit"`
	RadomeAirTempCelsius                *float64   `json:"performance_radome_air_temp_celsius"`
	RadomeAirTempFahrenheit             *float64   `json:"performance_radome_air_temp_fahrenheit"`
	HorizontalNoiseTempCelsius          *float64   `json:"performance_horizontal_noise_temp_celsius"`
	HorizontalNoiseTempFahrenheit       *float64   `json:"performance_horizontal_noise_temp_fahrenheit"`
	TransitionalPowerSource             *string    `json:"performance_transitional_power_source"`
	ElevationEncoderLight               *string    `json:"performance_elevation_encoder_light"`
	AzimuthEncoderLight                 *string    `json:"performance_azimuth_encoder_light"`
	HorizontalDeltaDBZ0                 *float64   `json:"performance_horizontal_delta_dbz0_db"`
	VerticalDeltaDBZ0                   *float64   `json:"performance_vertical_delta_dbz0_db"`
	ReceiverBiasDB                      *float64   `json:"performance_receiver_bias_db"`
	HorizontalShortPulseNoiseDBm        *float64   `json:"performance_horizontal_short_pulse_noise_dbm"`
	HorizontalLongPulseNoiseDBm         *float64   `json:"performance_horizontal_long_pulse_noise_dbm"`
}

// RadarAdaptation holds site adaptation parameters. Values are reported
// without unit codes and are passed through as numbers.
type RadarAdaptation struct {
	AdaptationRefreshedAt               *time.Time `json:"adaptation_refreshed_at"`
	AdaptationReportingHost             *string    `json:"adaptation_reporting_host"`
	TransmitterFrequency                *float64   `json:"adaptation_transmitter_frequency"`
	TransmitterPowerDataWattsFactor     *float64   `json:"adaptation_transmitter_power_data_watts_factor"`
	AntennaGainInclRadome               *float64   `json:"adaptation_antenna_gain_incl_radome"`
	CohoPowerAtA1J4                     *float64   `json:"adaptation_coho_power_at_a1j4"`
	StaloPowerAtA1J2                    *float64   `json:"adaptation_stalo_power_at_a1j2"`
	HorizontalReceiverNoiseLongPulse    *float64   `json:"adaptation_horizontal_receiver_noise_long_pulse"`
	HorizontalReceiverNoiseShortPulse   *float64   `json:"adaptation_horizontal_receiver_noise_short_pulse"`
	TransmitterSpectrumFilterInstalled  *bool      `json:"adaptation_transmitter_spectrum_filter_installed"`
	PulseWidthTransmitterOutLongPulse   *float64   `json:"adaptation_pulse_width_transmitter_out_long_pulse"`
	PulseWidthTransmitterOutShortPulse  *float64   `json:"adaptation_pulse_width_transmitter_out_short_pulse"`
	AMENoiseSourceHorizontalExcessNoise *float64   `json:"adaptation_ame_noise_source_horizontal_excess_noise_ratio"`
	AMEHorizontalTestSignalPower        *float64   `json:"adaptation_ame_horizontal_test_signal_power"`
	PathLossWG04Circulator              *float64   `json:"adaptation_path_loss_wg04_circulator"`
	PathLossWG02HarmonicFilter          *float64   `json:"adaptation_path_loss_wg02_harmonic_filter"`
	PathLossWG06SpectrumFilter          *float64   `json:"adaptation_path_loss_wg06_spectrum_filter"`
	PathLossIFDRIFAntiAliasFilter       *float64   `json:"adaptation_path_loss_ifd_rif_anti_alias_filter"`
	PathLossIFDBurstAntiAliasFilter     *float64   `json:"adaptation_path_loss_ifd_burst_anti_alias_filter"`
	PathLossA6ArcDetector               *float64   `json:"adaptation_path_loss_a6_arc_detector"`
	PathLossTransmitterCouplerCoupling  *float64   `json:"adaptation_path_loss_transmitter_coupler_coupling"`
	PathLossVerticalIFHeliaxTo4AT16     *float64   `json:"adaptation_path_loss_vertical_if_heliax_to_4at16"`
	PathLossHorizontalIFHeliaxTo4AT17   *float64   `json:"adaptation_path_loss_horizontal_if_heliax_to_4at17"`
	PathLossAT4Attenuator               *float64   `json:"adaptation_path_loss_at4_attenuator"`
	PathLossWaveguideKlystronToSwitch   *float64   `json:"adaptation_path_loss_waveguide_klystron_to_switch"`
}

// NormalizeRadarStation normalizes one /radar/stations feature.
func NormalizeRadarStation(feature Object, retrievedAt time.Time) RadarStation {
	props := feature.Object("properties")
	conv := &converter{}
	lat, lon := feature.Coordinates()

	elevation := conv.to("elevation", MeasureAt(props, "elevation"), UnitMeter, UnitFoot)
	station := RadarStation{
		RetrievedAt:           retrievedAt,
		StationID:             props.String("id"),
		StationName:           props.String("name"),
		StationType:           props.String("stationType"),
		StationTimezone:       props.String("timeZone"),
		Latitude:              lat,
		Longitude:             lon,
		ElevationMeters:       elevation[0],
		ElevationFeet:         elevation[1],
		LatencyCurrentSeconds: conv.one("latency_current", MeasureAt(props, "latency", "current"), UnitSecond),
		LatencyAverageSeconds: conv.one("latency_average", MeasureAt(props, "latency", "average"), UnitSecond),
		LatencyMaxSeconds:     conv.one("latency_max", MeasureAt(props, "latency", "max"), UnitSecond),
		LevelTwoReceivedAt:    props.Time("latency", "levelTwoLastReceivedTime"),
		MaxLatencyAt:          props.Time("latency", "maxLatencyTime"),
		ReportingHost:         props.String("latency", "reportingHost"),
		ServerHost:            props.String("latency", "host"),
	}

	if rda := props.Object("rda"); len(rda) > 0 {
		station.RadarRDA = normalizeRDA(rda, conv)
	}
	if perf := props.Object("performance"); len(perf) > 0 {
		station.RadarPerformance = normalizePerformance(perf, conv)
	}
	if adapt := props.Object("adaptation"); len(adapt) > 0 {
		station.RadarAdaptation = normalizeAdaptation(adapt)
	}
	station.Unconverted = conv.result()
	return station
}

// NormalizeRadarStations returns one RadarStation per feature.
func NormalizeRadarStations(body Object, retrievedAt time.Time) []RadarStation {
	features := body.Objects("features")
	stations := make([]RadarStation, 0, len(features))
	for _, f := range features {
		stations = append(stations, NormalizeRadarStation(f, retrievedAt))
	}
	return stations
}

func normalizeRDA(rda Object, conv *converter) *RadarRDA {
	p := rda.Object("properties")
	return &RadarRDA{
		RDARefreshedAt:                   rda.Time("timestamp"),
		RDAReportingHost:                 rda.String("reportingHost"),
		RDAResolutionVersion:             p.String("resolutionVersion"),
		RDANexradL2Path:                  p.String("nl2Path"),
		RDAVolumeCoveragePattern:         p.String("volumeCoveragePattern"),
		RDAControlStatus:                 p.String("controlStatus"),
		RDABuildNumber:                   p.Float("buildNumber"),
		RDAAlarmSummary:                  p.String("alarmSummary"),
		RDAMode:                          p.String("mode"),
		RDAGeneratorState:                p.String("generatorState"),
		RDASuperResolutionStatus:         p.String("superResolutionStatus"),
		RDAOperabilityStatus:             p.String("operabilityStatus"),
		RDAStatus:                        p.String("status"),
		RDAAverageTxPowerWatts:           conv.one("rda_average_tx_power", MeasureAt(p, "averageTransmitterPower"), UnitWatt),
		RDAReflectivityCalibrationCorrDB: conv.one("rda_reflectivity_calibration_correction", MeasureAt(p, "reflectivityCalibrationCorrection"), UnitDecibel),
	}
}

func normalizePerformance(perf Object, conv *converter) *RadarPerformance {
	p := perf.Object("properties")
	txAir := conv.to("performance_transmitter_leaving_air_temp", MeasureAt(p, "transmitterLeavingAirTemperature"), UnitCelsius, UnitFahrenheit)
	shelter := conv.to("performance_shelter_temp", MeasureAt(p, "shelterTemperature"), UnitCelsius, UnitFahrenheit)
	radome := conv.to("performance_radome_air_temp", MeasureAt(p, "radomeAirTemperature"), UnitCelsius, UnitFahrenheit)
	noise := conv.to("performance_horizontal_noise_temp", MeasureAt(p, "horizontalNoiseTemperature"), UnitCelsius, UnitFahrenheit)
	return &RadarPerformance{
		PerformanceRefreshedAt:              perf.Time("timestamp"),
		PerformanceCheckedAt:                p.Time("performanceCheckTime"),
		PerformanceReportingHost:            perf.String("reportingHost"),
		NTPStatus:                           p.Int("ntp_status"),
		CommandChannel:                      p.String("commandChannel"),
		Linearity:                           p.Float("linearity"),
		PowerSource:                         p.String("powerSource"),
		FuelLevelPercent:                    conv.one("performance_fuel_level", MeasureAt(p, "fuelLevel"), UnitPercent),
		DynamicRangeDB:                      conv.one("performance_dynamic_range", MeasureAt(p, "dynamicRange"), UnitDecibel),
		TransmitterPeakPowerWatts:           conv.one("performance_transmitter_peak_power", MeasureAt(p, "transmitterPeakPower"), UnitWatt),
		TransmitterRecycleCount:             p.Int("transmitterRecycleCount"),
		TransmitterImbalanceDB:              conv.one("performance_transmitter_imbalance", MeasureAt(p, "transmitterImbalance"), UnitDecibel),
		TransmitterLeavingAirTempCelsius:    txAir[0],
		TransmitterLeavingAirTempFahrenheit: txAir[1],
		ShelterTempCelsius:                  shelter[0],
		ShelterTempFahrenheit:               shelter[1],
		RadomeAirTempCelsius:                radome[0],
		RadomeAirTempFahrenheit:             radome[1],
		HorizontalNoiseTempCelsius:          noise[0],
		HorizontalNoiseTempFahrenheit:       noise[1],
		TransitionalPowerSource:             p.String("transitionalPowerSource"),
		ElevationEncoderLight:               p.String("elevationEncoderLight"),
		AzimuthEncoderLight:                 p.String("azimuthEncoderLight"),
		HorizontalDeltaDBZ0:                 conv.one("performance_horizontal_delta_dbz0", MeasureAt(p, "horizontalDeltadbZ0"), UnitDecibel),
		VerticalDeltaDBZ0:                   conv.one("performance_vertical_delta_dbz0", MeasureAt(p, "verticalDeltadbZ0"), UnitDecibel),
		ReceiverBiasDB:                      conv.one("performance_receiver_bias", MeasureAt(p, "receiverBias"), UnitDecibel),
		HorizontalShortPulseNoiseDBm:        conv.one("performance_horizontal_short_pulse_noise", MeasureAt(p, "horizontalShortPulseNoise"), UnitDecibelMilliwatt),
		HorizontalLongPulseNoiseDBm:         conv.one("performance_horizontal_long_pulse_noise", MeasureAt(p, "horizontalLongPulseNoise"), UnitDecibelMilliwatt),
	}
}

func normalizeAdaptation(adapt Object) *RadarAdaptation {
	// Parameters sit under "properties" in current payloads and at the top
	// level of the section in older ones.
	p := adapt.Object("properties")
	if p == nil {
		p = adapt
	}
	return &RadarAdaptation{
		AdaptationRefreshedAt:               adapt.Time("timestamp"),
		AdaptationReportingHost:             adapt.String("reportingHost"),
		TransmitterFrequency:                p.Float("transmitterFrequency"),
		TransmitterPowerDataWattsFactor:     p.Float("transmitterPowerDataWattsFactor"),
		AntennaGainInclRadome:               p.Float("antennaGainIncludingRadome"),
		CohoPowerAtA1J4:                     p.Float("cohoPowerAtA1J4"),
		StaloPowerAtA1J2:                    p.Float("staloPowerAtA1J2"),
		HorizontalReceiverNoiseLongPulse:    p.Float("horizontalReceiverNoiseLongPulse"),
		HorizontalReceiverNoiseShortPulse:   p.Float("horizontalReceiverNoiseShortPulse"),
		TransmitterSpectrumFilterInstalled:  p.Bool("transmitterSpectrumFilterInstalled"),
		PulseWidthTransmitterOutLongPulse:   p.Float("pulseWidthTransmitterOutputLongPulse"),
		PulseWidthTransmitterOutShortPulse:  p.Float("pulseWidthTransmitterOutputShortPulse"),
		AMENoiseSourceHorizontalExcessNoise: p.Float("ameNoiseSourceHorizontalExcessNoiseRatio"),
		AMEHorizontalTestSignalPower:        p.Float("ameHorzizontalTestSignalPower"),
		PathLossWG04Circulator:              p.Float("pathLossWG04Circulator"),
		PathLossWG02HarmonicFilter:          p.Float("pathLossWG02HarmonicFilter"),
		PathLossWG06SpectrumFilter:          p.Float("pathLossWG06SpectrumFilter"),
		PathLossIFDRIFAntiAliasFilter:       p.Float("pathLossIFDRIFAntiAliasFilter"),
		PathLossIFDBurstAntiAliasFilter:     p.Float("pathLossIFDBurstAntiAliasFilter"),
		PathLossA6ArcDetector:               p.Float("pathLossA6ArcDetector"),
		PathLossTransmitterCouplerCoupling:  p.Float("pathLossTransmitterCouplerCoupling"),
		PathLossVerticalIFHeliaxTo4AT16:     p.Float("pathLossVerticalIFHeliaxTo4AT16"),
		PathLossHorizontalIFHeliaxTo4AT17:   p.Float("pathLossHorzontalIFHeliaxTo4AT17"),
		PathLossAT4Attenuator:               p.Float("pathLossAT4Attenuator"),
		PathLossWaveguideKlystronToSwitch:   p.Float("pathLossWaveguideKlystronToSwitch"),
	}
}

// RadarInterface is one network interface reported by a radar server.
type RadarInterface struct {
	InterfaceName     *string `json:"interface_name"`
	IsInterfaceActive *bool   `json:"is_interface_active"`
	PacketsOutOK      *int64  `json:"packets_out_ok"`
	PacketsOutError   *int64  `json:"packets_out_error"`
	PacketsOutDropped *int64  `json:"packets_out_dropped"`
	PacketsOutOverrun *int64  `json:"packets_out_overrun"`
	PacketsInOK       *int64  `json:"packets_in_ok"`
	PacketsInError    *int64  `json:"packets_in_error"`
	PacketsInDropped  *int64  `json:"packets_in_dropped"`
	PacketsInOverrun  *int64  `json:"packets_in_overrun"`
}

// RadarServer is a radar data distribution server (LDM, RDS or TDS).
type RadarServer struct {
	RetrievedAt                  time.Time        `json:"retrieved_at"`
	ServerHost                   *string          `json:"server_host"`
	ServerType                   *string          `json:"server_type"`
	UpSince                      *time.Time       `json:"server_up_since"`
	HardwareRefreshedAt          *time.Time       `json:"server_hardware_refresh_at"`
	CPUIdle                      *float64         `json:"server_cpu"`
	Memory                       *float64         `json:"server_memory"`
	IOUtilization                *float64         `json:"server_io_utilization"`
	Disk                         *float64         `json:"server_disk"`
	Load1                        *float64         `json:"server_load_1"`
	Load5                        *float64         `json:"server_load_5"`
	Load15                       *float64         `json:"server_load_15"`
	CommandLastExecuted          *string          `json:"command_last_executed"`
	CommandLastExecutedAt        *time.Time       `json:"command_last_executed_at"`
	CommandLastNexradDataAt      *time.Time       `json:"command_last_nexrad_data_at"`
	CommandLastReceived          *string          `json:"command_last_received"`
	CommandLastReceivedAt        *time.Time       `json:"command_last_received_at"`
	CommandRefreshedAt           *time.Time       `json:"command_last_refresh_at"`
	LDMRefreshedAt               *time.Time       `json:"ldm_refresh_at"`
	LDMLatestProductAt           *time.Time       `json:"ldm_latest_product_at"`
	LDMOldestProductAt           *time.Time       `json:"ldm_oldest_product_at"`
	LDMStorageSize               *int64           `json:"ldm_storage_size"`
	LDMCount                     *int64           `json:"ldm_count"`
	IsLDMActive                  *bool            `json:"is_ldm_active"`
	IsActive                     *bool            `json:"is_server_active"`
	IsPrimary                    *bool            `json:"is_server_primary"`
	IsAggregate                  *bool            `json:"is_server_aggregate"`
	IsLocked                     *bool            `json:"is_server_locked"`
	IsRadarNetworkUp             *bool            `json:"is_radar_network_up"`
	CollectedAt                  *time.Time       `json:"collection_time"`
	ReportingHost                *string          `json:"reporting_host"`
	LastPingAt                   *time.Time       `json:"last_ping_at"`
	PingLDM                      map[string]bool  `json:"ping_responses_ldm"`
	PingRadar                    map[string]bool  `json:"ping_responses_radar"`
	PingServer                   map[string]bool  `json:"ping_responses_server"`
	PingMisc                     map[string]bool  `json:"ping_responses_misc"`
	NetworkInterfacesRefreshedAt *time.Time       `json:"network_interfaces_refreshed_at"`
	Interfaces                   []RadarInterface `json:"interfaces"`
}

// NormalizeRadarServer normalizes one /radar/servers graph node. Interfaces
// are ordered by their key in the network section.
func NormalizeRadarServer(node Object, retrievedAt time.Time) RadarServer {
	server := RadarServer{
		RetrievedAt:                  retrievedAt,
		ServerHost:                   node.String("id"),
		ServerType:                   node.String("type"),
		UpSince:                      node.Time("hardware", "uptime"),
		HardwareRefreshedAt:          node.Time("hardware", "timestamp"),
		CPUIdle:                      node.Float("hardware", "cpuIdle"),
		Memory:                       node.Float("hardware", "memory"),
		IOUtilization:                node.Float("hardware", "ioUtilization"),
		Disk:                         node.Float("hardware", "disk"),
		Load1:                        node.Float("hardware", "load1"),
		Load5:                        node.Float("hardware", "load5"),
		Load15:                       node.Float("hardware", "load15"),
		CommandLastExecuted:          node.String("command", "lastExecuted"),
		CommandLastExecutedAt:        node.Time("command", "lastExecutedTime"),
		CommandLastNexradDataAt:      node.Time("command", "lastNexradDataTime"),
		CommandLastReceived:          node.String("command", "lastReceived"),
		CommandLastReceivedAt:        node.Time("command", "lastReceivedTime"),
		CommandRefreshedAt:           node.Time("command", "timestamp"),
		LDMRefreshedAt:               node.Time("ldm", "timestamp"),
		LDMLatestProductAt:           node.Time("ldm", "latestProduct"),
		LDMOldestProductAt:           node.Time("ldm", "oldestProduct"),
		LDMStorageSize:               node.Int("ldm", "storageSize"),
		LDMCount:                     node.Int("ldm", "count"),
		IsLDMActive:                  node.Bool("ldm", "active"),
		IsActive:                     node.Bool("active"),
		IsPrimary:                    node.Bool("primary"),
		IsAggregate:                  node.Bool("aggregate"),
		IsLocked:                     node.Bool("locked"),
		IsRadarNetworkUp:             node.Bool("radarNetworkUp"),
		CollectedAt:                  node.Time("collectionTime"),
		ReportingHost:                node.String("reportingHost"),
		LastPingAt:                   node.Time("ping", "timestamp"),
		PingLDM:                      node.Flags("ping", "targets", "ldm"),
		PingRadar:                    node.Flags("ping", "targets", "radar"),
		PingServer:                   node.Flags("ping", "targets", "server"),
		PingMisc:                     node.Flags("ping", "targets", "misc"),
		NetworkInterfacesRefreshedAt: node.Time("network", "timestamp"),
		Interfaces:                   []RadarInterface{},
	}

	network := node.Object("network")
	for _, key := range network.Keys() {
		if key == "timestamp" {
			continue
		}
		iface := network.Object(key)
		if iface == nil {
			continue
		}
		server.Interfaces = append(server.Interfaces, RadarInterface{
			InterfaceName:     iface.String("interface"),
			IsInterfaceActive: iface.Bool("active"),
			PacketsOutOK:      iface.Int("transNoError"),
			PacketsOutError:   iface.Int("transError"),
			PacketsOutDropped: iface.Int("transDropped"),
			PacketsOutOverrun: iface.Int("transOverrun"),
			PacketsInOK:       iface.Int("recvNoError"),
			PacketsInError:    iface.Int("recvError"),
			PacketsInDropped:  iface.Int("recvDropped"),
			PacketsInOverrun:  iface.Int("recvOverrun"),
		})
	}
	return server
}

// NormalizeRadarServers returns one RadarServer per "@graph" node.
func NormalizeRadarServers(body Object, retrievedAt time.Time) []RadarServer {
	nodes := body.Objects("@graph")
	servers := make([]RadarServer, 0, len(nodes))
	for _, n := range nodes {
		servers = append(servers, NormalizeRadarServer(n, retrievedAt))
	}
	return servers
}

// RadarAlarm is an alarm raised by a radar station.
type RadarAlarm struct {
	RetrievedAt   time.Time  `json:"retrieved_at"`
	StationID     string     `json:"station_id"`
	AlarmStatus   *string    `json:"alarm_status"`
	AlarmMessage  *string    `json:"alarm_message"`
	AlarmEventAt  *time.Time `json:"alarm_event_at"`
	ActiveChannel *int64     `json:"active_channel"`
}

// NormalizeRadarAlarms reads the /radar/stations/{id}/alarms body.
func NormalizeRadarAlarms(body Object, stationID string, retrievedAt time.Time) []RadarAlarm {
	nodes := body.Objects("@graph")
	alarms := make([]RadarAlarm, 0, len(nodes))
	for _, n := range nodes {
		alarms = append(alarms, RadarAlarm{
			RetrievedAt:   retrievedAt,
			StationID:     stationID,
			AlarmStatus:   n.String("status"),
			AlarmMessage:  n.String("message"),
			AlarmEventAt:  n.Time("timestamp"),
			ActiveChannel: n.Int("activeChannel"),
		})
	}
	return alarms
}

// RadarQueueItem is one product waiting in a radar server queue.
type RadarQueueItem struct {
	RetrievedAt       time.Time  `json:"retrieved_at"`
	QueueID           *string    `json:"queue_id"`
	Host              *string    `json:"host"`
	StationID         *string    `json:"station_id"`
	ProductType       *string    `json:"product_type"`
	FeedType          *string    `json:"feed_type"`
	ResolutionVersion *int64     `json:"resolution_version"`
	SequenceNumber    *int64     `json:"sequence_number"`
	SizeBytes         *int64     `json:"size_bytes"`
	ArrivedAt         *time.Time `json:"arrived_at"`
	CreatedAt         *time.Time `json:"created_at"`
}

// NormalizeRadarQueue reads the /radar/queues/{host}/{station} body.
func NormalizeRadarQueue(body Object, retrievedAt time.Time) []RadarQueueItem {
	nodes := body.Objects("@graph")
	items := make([]RadarQueueItem, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, RadarQueueItem{
			RetrievedAt:       retrievedAt,
			QueueID:           n.String("id"),
			Host:              n.String("host"),
			StationID:         n.String("station"),
			ProductType:       n.String("type"),
			FeedType:          n.String("feedtype"),
			ResolutionVersion: n.Int("resolutionVersion"),
			SequenceNumber:    n.Int("sequenceNumber"),
			SizeBytes:         n.Int("size"),
			ArrivedAt:         n.Time("arrivalTime"),
			CreatedAt:         n.Time("createdAt"),
		})
	}
	return items
}
