package dto

type SettingUpsertRequest struct {
	Category string `json:"category"`
	Key      string `json:"key" binding:"required"`
	Value    string `json:"value"`
}

type SettingsUpsertRequest struct {
	Settings []SettingUpsertRequest `json:"settings" binding:"required,dive"`
}
