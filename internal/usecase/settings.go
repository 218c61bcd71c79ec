package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

var repositoryPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Settings reads and writes the push target.
type Settings struct {
	store ports.SettingsStore
}

// NewSettings constructs a Settings use case.
func NewSettings(store ports.SettingsStore) *Settings {
	return &Settings{store: store}
}

// TargetView is a target that is safe to print.
type TargetView struct {
	RepositoryID string `json:"repositoryId"`
	Branch       string `json:"branch"`
	Credential   string `json:"credential"`
}

// LoadTarget returns the configured target, failing with
// apperr.ErrPreconditionMissing when it is incomplete.
func (s *Settings) LoadTarget(ctx context.Context) (model.RemoteTarget, error) {
	target, err := s.read(ctx)
	if err != nil {
		return model.RemoteTarget{}, err
	}

	if target.Credential == "" {
		return model.RemoteTarget{}, apperr.Precondition("github token is not set")
	}
	if target.RepositoryID == "" {
		return model.RemoteTarget{}, apperr.Precondition("repository is not set")
	}
	if target.Owner() == "" || target.Repo() == "" || strings.Contains(target.Repo(), "/") {
		return model.RemoteTarget{}, apperr.Precondition("invalid repository format, expected owner/name")
	}

	target.Branch = target.BranchOrDefault()
	return target, nil
}

// SaveTarget validates and persists target.
func (s *Settings) SaveTarget(ctx context.Context, target model.RemoteTarget) error {
	target.Credential = strings.TrimSpace(target.Credential)
	target.RepositoryID = strings.TrimSpace(target.RepositoryID)
	target.Branch = strings.TrimSpace(target.Branch)
	if target.Branch == "" {
		target.Branch = model.DefaultBranch
	}

	if err := validateTarget(target); err != nil {
		return err
	}

	values := []struct{ key, value string }{
		{ports.SettingCredential, target.Credential},
		{ports.SettingRepositoryID, target.RepositoryID},
		{ports.SettingBranch, target.Branch},
	}
	for _, v := range values {
		if err := s.store.Set(ctx, v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Describe returns the stored target with the token redacted. Unlike
// LoadTarget it does not require the target to be complete.
func (s *Settings) Describe(ctx context.Context) (TargetView, error) {
	target, err := s.read(ctx)
	if err != nil {
		return TargetView{}, err
	}
	return TargetView{
		RepositoryID: target.RepositoryID,
		Branch:       target.BranchOrDefault(),
		Credential:   redact(target.Credential),
	}, nil
}

func (s *Settings) read(ctx context.Context) (model.RemoteTarget, error) {
	var target model.RemoteTarget
	fields := []struct {
		key string
		dst *string
	}{
		{ports.SettingCredential, &target.Credential},
		{ports.SettingRepositoryID, &target.RepositoryID},
		{ports.SettingBranch, &target.Branch},
	}
	for _, f := range fields {
		value, err := s.store.Get(ctx, f.key)
		if err != nil {
			return model.RemoteTarget{}, fmt.Errorf("read %s: %w", f.key, err)
		}
		*f.dst = strings.TrimSpace(value)
	}
	return target, nil
}

func validateTarget(t model.RemoteTarget) error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Credential, validation.Required.Error("github token is required")),
		validation.Field(&t.RepositoryID,
			validation.Required.Error("repository is required"),
			validation.Match(repositoryPattern).Error("repository must be in the form owner/name"),
		),
	)
}

func redact(credential string) string {
	switch {
	case credential == "":
		return ""
	case len(credential) <= 8:
		return "****"
	default:
		return credential[:4] + "****" + credential[len(credential)-4:]
	}
}
