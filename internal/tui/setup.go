package tui

import (
	"strings"

	"github.com/vitadash/vitadash/internal/config"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers. The form binds to
// these fields by pointer, so the struct must outlive model copies.
type setupValues struct {
	phone     string
	backend   string
	baseURL   string
	apiKey    string
	dbPath    string
	themeName string
}

func newSetupValues(cfg config.Config, user string) *setupValues {
	if user == "" {
		user = cfg.General.User
	}
	return &setupValues{
		phone:     user,
		backend:   cfg.Store.Backend,
		baseURL:   cfg.Store.BaseURL,
		apiKey:    cfg.Store.APIKey,
		dbPath:    cfg.Store.DBPath,
		themeName: cfg.Appearance.Theme,
	}
}

// newSetupForm builds the first-run setup wizard.
func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to vitadash!").
				Description("A couple of questions and your dashboard is ready."),

			huh.NewInput().
				Title("Phone number").
				Description("The number your health profile is registered under.").
				Placeholder("+15551234567").
				Value(&v.phone),

			huh.NewSelect[string]().
				Title("Record store").
				Options(
					huh.NewOption("Hosted (REST)", "rest"),
					huh.NewOption("Local (SQLite)", "local"),
				).
				Value(&v.backend),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Store URL").
				Description("Base URL of your hosted record store. Leave blank for local.").
				Placeholder("https://example.supabase.co").
				Value(&v.baseURL),

			huh.NewInput().
				Title("API key").
				Description("Leave blank to use the VITADASH_API_KEY env variable.").
				EchoMode(huh.EchoModePassword).
				Value(&v.apiKey),

			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).
				Value(&v.themeName),
		),
	)
}

// apply folds the wizard answers into cfg, keeping existing values for
// answers left blank.
func (v *setupValues) apply(cfg config.Config) config.Config {
	if phone := strings.TrimSpace(v.phone); phone != "" {
		cfg.General.User = phone
	}
	if v.backend != "" {
		cfg.Store.Backend = v.backend
	}
	if baseURL := strings.TrimSpace(v.baseURL); baseURL != "" {
		cfg.Store.BaseURL = baseURL
	}
	if apiKey := strings.TrimSpace(v.apiKey); apiKey != "" {
		cfg.Store.APIKey = apiKey
	}
	if v.dbPath != "" {
		cfg.Store.DBPath = v.dbPath
	}
	if v.themeName != "" {
		cfg.Appearance.Theme = v.themeName
	}
	return cfg
}
