package models

// SettingsID is the fixed _id of the singleton settings document.
const SettingsID = "app_settings"

// Settings toggles student registration and login.
type Settings struct {
	ID           string          `bson:"_id" json:"_id"`
	UserRegister RegisterSetting `bson:"userRegister" json:"userRegister"`
	UserLogin    LoginSetting    `bson:"userLogin" json:"userLogin"`
}

type RegisterSetting struct {
	Register bool   `bson:"register" json:"register"`
	Message  string `bson:"message" json:"message"`
}

type LoginSetting struct {
	Login   bool   `bson:"login" json:"login"`
	Message string `bson:"message" json:"message"`
}

// DefaultSettings is what a fresh deployment starts with: everything open.
func DefaultSettings() Settings {
	return Settings{
		ID:           SettingsID,
		UserRegister: RegisterSetting{Register: true},
		UserLogin:    LoginSetting{Login: true},
	}
}

// SettingsUpdate is the body of PUT /apis/settings. An omitted section is
// left as is; an omitted flag inside a section defaults to enabled.
type SettingsUpdate struct {
	UserRegister *RegisterPatch `json:"userRegister"`
	UserLogin    *LoginPatch    `json:"userLogin"`
}

type RegisterPatch struct {
	Register *bool  `json:"register"`
	Message  string `json:"message"`
}

type LoginPatch struct {
	Login   *bool  `json:"login"`
	Message string `json:"message"`
}
