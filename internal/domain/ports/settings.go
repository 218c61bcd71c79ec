package ports

//go:generate mockgen -source=settings.go -destination=mocks/settings_mock.go -package=mocks

import "context"

// Setting keys understood by the settings store.
const (
	SettingCredential   = "credential"
	SettingRepositoryID = "repositoryId"
	SettingBranch       = "branch"
)

// SettingsStore is a persistent key-value store for push settings.
// Get returns an empty string for keys that were never set.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
