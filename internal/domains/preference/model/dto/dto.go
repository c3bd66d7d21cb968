package dto

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
