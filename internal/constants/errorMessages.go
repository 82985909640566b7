package constants

// Error codes surfaced by the validation engine and the flight log service.
const (
	ErrCodeNoAircraftSelected   = "NO_AIRCRAFT_SELECTED"
	ErrCodeChecklistIncomplete  = "CHECKLIST_INCOMPLETE"
	ErrCodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	ErrCodeTimeOrderInvalid     = "TIME_ORDER_INVALID"
	ErrCodeAircraftNotFound     = "AIRCRAFT_NOT_FOUND"
	ErrCodeNoRecordsToExport    = "NO_RECORDS_TO_EXPORT"
	ErrCodeDuplicateUser        = "DUPLICATE_USER"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
)

var errorMessages = map[string]string{
	ErrCodeNoAircraftSelected:   "使用する無人航空機を選択してください",
	ErrCodeChecklistIncomplete:  "必須の飛行前点検項目がすべて完了していません",
	ErrCodeRequiredFieldMissing: "必須項目をすべて入力してください",
	ErrCodeTimeOrderInvalid:     "着陸時刻は離陸時刻より後の時間を入力してください",
	ErrCodeAircraftNotFound:     "機体が登録されていません。先に機体情報を登録してください",
	ErrCodeNoRecordsToExport:    "エクスポートする飛行記録がありません",
	ErrCodeDuplicateUser:        "このユーザー名またはメールアドレスは既に使用されています",
	ErrCodeInvalidCredentials:   "ユーザー名またはパスワードが正しくありません",
}

// GetErrorMessage returns the user-facing message for a code, or the code
// itself when no mapping exists.
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return code
}
