package config

// SettingsConfig names the persisted settings store.
type SettingsConfig struct {
	AppName string
	ItemKey string
}

var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "robotjump",
		ItemKey: "settings",
	}
}
