package constants

type (
	APIStatus   string
	CachePrefix string
	Namespace   string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixDashboardStats CachePrefix = "DASH_STATS"
	CachePrefixSession        CachePrefix = "SESSION_"

	// Logical document namespaces in the record store. Each namespace holds
	// one JSON document: the aircraft registry as a whole, and the flight
	// record collection as a whole, newest record first.
	NamespaceAircraft      Namespace = "drone_aircraft_info"
	NamespaceFlightRecords Namespace = "drone_flight_records"
)

const (
	// Narrative fields default to these sentinels when left blank,
	// matching the wording expected on the printed logbook form.
	DefaultSafetyIssues       = "特に問題なし"
	DefaultMalfunctionDetails = "なし"
)

// FlightPurposes is the fixed vocabulary for the 飛行の目的 field.
var FlightPurposes = []string{
	"趣味",
	"空撮",
	"測量",
	"輸送",
	"研究開発",
	"農薬散布",
	"警備",
	"その他",
}

// AircraftTypes is the fixed vocabulary for the 機体種類 field.
var AircraftTypes = []string{
	"マルチローター",
	"ヘリコプター",
	"固定翼機",
	"VTOL",
	"その他",
}
