package dto

const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

type PreferencesResponse struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Currency string `json:"currency"`
}

// UpdatePreferencesRequest patches only the supplied keys.
type UpdatePreferencesRequest struct {
	Theme    string `json:"theme"    validate:"omitempty,oneof=light dark"`
	Language string `json:"language" validate:"omitempty,len=2,alpha"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha,uppercase"`
}
