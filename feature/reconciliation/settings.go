package reconciliation

import (
	"context"

	"finledger/core/reconcile"
)

// Settings are the reconciliation parameters of one user.
type Settings struct {
	Config              reconcile.Config
	EnabledAssetClasses []reconcile.AssetClass
}

// Enabled reports whether asset may be reconciled.
func (s Settings) Enabled(asset reconcile.AssetClass) bool {
	for _, a := range s.EnabledAssetClasses {
		if a == asset {
			return true
		}
	}
	return false
}

// SettingsLoader returns the settings that apply to a user.
type SettingsLoader interface {
	Load(ctx context.Context, userID string) (Settings, error)
}

// StaticSettings applies the same settings to every user.
type StaticSettings struct {
	settings Settings
}

// NewStaticSettings parses configuration-file settings.
func NewStaticSettings(raw reconcile.Settings) (*StaticSettings, error) {
	cfg, err := raw.ToConfig()
	if err != nil {
		return nil, err
	}
	classes, err := raw.AssetClasses()
	if err != nil {
		return nil, err
	}
	return &StaticSettings{settings: Settings{Config: cfg, EnabledAssetClasses: classes}}, nil
}

// NewStaticSettingsFrom wraps already parsed settings.
func NewStaticSettingsFrom(s Settings) *StaticSettings {
	return &StaticSettings{settings: s}
}

// Load implements SettingsLoader. Each call returns an independent copy.
func (s *StaticSettings) Load(context.Context, string) (Settings, error) {
	out := s.settings
	out.EnabledAssetClasses = append([]reconcile.AssetClass(nil), s.settings.EnabledAssetClasses...)
	return out, nil
}
