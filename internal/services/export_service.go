package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/models/entities"
)

// csvHeaders is the published column order of the logbook export. The
// captions match the 国土交通省 flight log form and must not be reordered.
var csvHeaders = []string{
	"飛行年月日", "機体登録記号", "機体種類", "機体型式", "操縦者氏名", "技能証明書番号",
	"飛行目的", "飛行経路", "離陸場所", "離陸時刻", "着陸場所", "着陸時刻",
	"飛行時間(分)", "製造後総飛行時間(分)", "飛行禁止空域・飛行方法",
	"飛行前点検実施状況", "安全に影響のあった事項", "不具合・対応", "記録作成日時",
}

// ExportCSV renders the record collection as spreadsheet-ready text: fixed
// header row, free-text fields always quoted, rows joined with \n. The
// checklist summary is a reporting view and does not re-check required-ness.
// The caller prepends the UTF-8 BOM when serving the file.
func ExportCSV(records []entities.FlightRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))

	for _, record := range records {
		registration := record.SelectedAircraft
		aircraftType := ""
		model := ""
		if record.AircraftInfo != nil {
			if record.AircraftInfo.RegistrationNumber != "" {
				registration = record.AircraftInfo.RegistrationNumber
			}
			aircraftType = record.AircraftInfo.AircraftType
			model = record.AircraftInfo.Model
		}

		fields := []string{
			record.FlightDate,
			quoteCSV(registration),
			quoteCSV(aircraftType),
			quoteCSV(model),
			quoteCSV(record.PilotName),
			quoteCSV(record.LicenseNumber),
			quoteCSV(record.FlightPurpose),
			quoteCSV(record.FlightRoute),
			quoteCSV(record.TakeoffLocation),
			record.TakeoffTime,
			quoteCSV(record.LandingLocation),
			record.LandingTime,
			strconv.Itoa(record.FlightDuration),
			strconv.Itoa(record.TotalFlightTime),
			quoteCSV(strings.Join(record.FlightAreas, ", ")),
			quoteCSV(inspectionSummary(record.PreFlightInspection)),
			quoteCSV(record.SafetyIssues),
			quoteCSV(record.MalfunctionDetails),
			quoteCSV(record.CreatedAt),
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// ExportFilename embeds the export date per the published pattern.
func ExportFilename(asOf time.Time) string {
	return fmt.Sprintf("drone_flight_log_%s.csv", asOf.Format("2006-01-02"))
}

// inspectionSummary counts confirmed checklist entries. A record persisted
// without any inspection map reports 点検記録なし.
func inspectionSummary(inspection map[string]bool) string {
	if inspection == nil {
		return "点検記録なし"
	}
	return fmt.Sprintf("%d項目完了", common.TruthyKeyCount(inspection))
}

// quoteCSV wraps a field in double quotes, doubling embedded quotes so a
// standard CSV parser recovers the original text. Missing optional fields
// come out as empty quoted strings, never a null marker.
func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
