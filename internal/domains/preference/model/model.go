package model

import "zimmery/shared/model"

const (
	TableName  = "user_preferences"
	EntityName = "user preference"

	FieldUserID = "user_id"
	FieldTheme  = "theme"
)

// Theme values. Light is the default when no row exists.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Preference struct {
	UserID string `db:"user_id"`
	Theme  string `db:"theme"`
	model.Metadata
}
