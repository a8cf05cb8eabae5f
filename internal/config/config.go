package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the application needs at startup. Values come
// from environment variables; the two required ones abort startup when
// absent so an operator sees the problem immediately instead of a broken
// session later.
type Config struct {
	// DBPath is the primary store (answers, people, interaction log).
	DBPath string
	// SummaryDBPath is the weekly-summary store. Defaults to DBPath.
	SummaryDBPath string
	// GenEndpoint is the text-generation endpoint URL.
	GenEndpoint string
	// GenLogCalls enables the generation-call log observer on stderr.
	GenLogCalls bool

	// Mail settings; mail sending is disabled unless all four are set.
	MailClientID     string
	MailClientSecret string
	MailTenantID     string
	MailSender       string

	// TrackerURL is the external tracking system the user is reminded to
	// copy the finished plan into. Optional.
	TrackerURL string
}

// MailEnabled reports whether the mail client is fully configured.
func (c Config) MailEnabled() bool {
	return c.MailClientID != "" && c.MailClientSecret != "" &&
		c.MailTenantID != "" && c.MailSender != ""
}

// MissingConfigError lists required environment variables that are unset.
type MissingConfigError struct {
	Names []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Names, ", "))
}

// Load reads configuration from the environment. It returns a
// *MissingConfigError naming every absent required variable, so the
// operator can fix all of them in one pass.
func Load() (Config, error) {
	cfg := Config{
		DBPath:           getenv("PDIFLOW_DB"),
		SummaryDBPath:    getenv("PDIFLOW_SUMMARY_DB"),
		GenEndpoint:      getenv("PDIFLOW_GEN_URL"),
		MailClientID:     getenv("PDIFLOW_MAIL_CLIENT_ID"),
		MailClientSecret: getenv("PDIFLOW_MAIL_CLIENT_SECRET"),
		MailTenantID:     getenv("PDIFLOW_MAIL_TENANT_ID"),
		MailSender:       getenv("PDIFLOW_MAIL_SENDER"),
		TrackerURL:       getenv("PDIFLOW_TRACKER_URL"),
	}

	if v := getenv("PDIFLOW_GEN_LOG_CALLS"); v != "" {
		cfg.GenLogCalls, _ = strconv.ParseBool(v)
	}

	var missing []string
	if cfg.DBPath == "" {
		missing = append(missing, "PDIFLOW_DB")
	}
	if cfg.GenEndpoint == "" {
		missing = append(missing, "PDIFLOW_GEN_URL")
	}
	if len(missing) > 0 {
		return Config{}, &MissingConfigError{Names: missing}
	}

	if cfg.SummaryDBPath == "" {
		cfg.SummaryDBPath = cfg.DBPath
	}

	return cfg, nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
