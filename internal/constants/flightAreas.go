package constants

// FlightAreaOption is one regulatory hazard category (飛行禁止空域・飛行の方法).
type FlightAreaOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FlightAreaOptions is the fixed flag vocabulary. Records store the labels.
var FlightAreaOptions = []FlightAreaOption{
	{ID: "airportArea", Label: "空港等周辺"},
	{ID: "densityArea", Label: "人口集中地区"},
	{ID: "highAltitude", Label: "地表150m以上"},
	{ID: "nightFlight", Label: "夜間飛行"},
	{ID: "visualFlight", Label: "目視外飛行"},
	{ID: "crowdArea", Label: "人又は物件から30m未満"},
	{ID: "eventArea", Label: "イベント上空"},
	{ID: "hazardousMaterial", Label: "危険物輸送"},
	{ID: "dropping", Label: "物件投下"},
}
