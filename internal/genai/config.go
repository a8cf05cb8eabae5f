package genai

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskDiagnostic TaskType = "diagnostic"
	TaskPlan       TaskType = "plan"
	TaskReformat   TaskType = "reformat"
)

// Config holds configuration for the generation client.
type Config struct {
	// Endpoint is the full prediction URL of the generation service.
	Endpoint string
	// LogCalls enables the stderr call observer.
	LogCalls bool
	// TaskTimeoutsMs bounds individual tasks. A zero or absent value
	// means no timeout for that task. Only the diagnostic call carries a
	// timeout; the asymmetry is inherited from the original product and
	// kept on purpose.
	TaskTimeoutsMs map[TaskType]int
}

// DefaultConfig returns a Config with the inherited per-task timeouts.
func DefaultConfig() Config {
	return Config{
		TaskTimeoutsMs: map[TaskType]int{
			TaskDiagnostic: 90_000,
		},
	}
}

// LoadConfig builds a Config for the given endpoint, reading optional
// overrides from environment variables.
func LoadConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint

	if v := os.Getenv("PDIFLOW_GEN_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	applyTaskTimeoutEnv(&cfg, TaskDiagnostic, "PDIFLOW_GEN_DIAGNOSTIC_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "PDIFLOW_GEN_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReformat, "PDIFLOW_GEN_REFORMAT_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the timeout in milliseconds for a task, or 0 when
// the task is unbounded.
func (c Config) TaskTimeout(task TaskType) int {
	return c.TaskTimeoutsMs[task]
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.TaskTimeoutsMs == nil {
		cfg.TaskTimeoutsMs = make(map[TaskType]int)
	}
	cfg.TaskTimeoutsMs[task] = n
}
