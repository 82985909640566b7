package constants

// ChecklistItem is a single pre-flight inspection entry. Required items must
// be confirmed before a flight record is accepted.
type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// ChecklistCategory groups inspection items under a form section heading.
type ChecklistCategory struct {
	Category string          `json:"category"`
	Items    []ChecklistItem `json:"items"`
}

// PreFlightChecklist is the canonical 国土交通省-compliant pre-flight
// inspection list.
var PreFlightChecklist = []ChecklistCategory{
	{
		Category: "機体外観",
		Items: []ChecklistItem{
			{ID: "visualInspection", Label: "機体全体の目視確認（損傷・変形・亀裂の有無）", Required: true},
			{ID: "registrationMark", Label: "機体登録記号の確認（剥がれ・損傷の有無）", Required: true},
			{ID: "propellers", Label: "プロペラの損傷・変形・取付確認", Required: true},
			{ID: "gimbalCamera", Label: "ジンバル・カメラの動作確認", Required: false},
		},
	},
	{
		Category: "バッテリー・電源",
		Items: []ChecklistItem{
			{ID: "batteryLevel", Label: "バッテリー残量確認（70%以上）", Required: true},
			{ID: "batteryCondition", Label: "バッテリーの膨張・損傷確認", Required: true},
			{ID: "controllerBattery", Label: "送信機バッテリー残量確認", Required: true},
		},
	},
	{
		Category: "システム・機能",
		Items: []ChecklistItem{
			{ID: "gnssSignal", Label: "GNSS受信状況確認", Required: true},
			{ID: "returnToHome", Label: "リターントゥホーム機能確認", Required: true},
			{ID: "remoteId", Label: "リモートID機能確認", Required: true},
			{ID: "compassCalibration", Label: "コンパスキャリブレーション実施", Required: false},
		},
	},
	{
		Category: "操縦装置",
		Items: []ChecklistItem{
			{ID: "controllerOperation", Label: "送信機各操作スティック動作確認", Required: true},
			{ID: "emergencyStop", Label: "緊急停止機能確認", Required: true},
			{ID: "displayScreen", Label: "画面表示・データリンク確認", Required: true},
		},
	},
	{
		Category: "飛行環境",
		Items: []ChecklistItem{
			{ID: "weatherCondition", Label: "気象条件確認（風速・雨・霧等）", Required: true},
			{ID: "flightArea", Label: "飛行空域の安全確認", Required: true},
			{ID: "obstacles", Label: "周辺障害物の確認", Required: true},
			{ID: "noFlyZone", Label: "飛行禁止区域の再確認", Required: true},
		},
	},
}

// RequiredChecklistItemIDs flattens the checklist to the IDs of all items
// flagged required.
func RequiredChecklistItemIDs(checklist []ChecklistCategory) []string {
	var ids []string
	for _, cat := range checklist {
		for _, item := range cat.Items {
			if item.Required {
				ids = append(ids, item.ID)
			}
		}
	}
	return ids
}
