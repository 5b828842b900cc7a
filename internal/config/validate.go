package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Reports.RetentionDays < 0 {
		return fmt.Errorf("reports.retention_days must be >= 0 (got %d)", c.Reports.RetentionDays)
	}
	if c.Reports.MaxGroups <= 0 {
		return fmt.Errorf("reports.max_groups must be > 0 (got %d)", c.Reports.MaxGroups)
	}
	if s := c.Reports.CleanupSchedule; s != "" && len(strings.Fields(s)) != 5 {
		return fmt.Errorf("reports.cleanup_schedule must have 5 cron fields (got %q)", s)
	}

	if c.Attachments.MaxSizeBytes <= 0 {
		return fmt.Errorf("attachments.max_size_bytes must be > 0 (got %d)", c.Attachments.MaxSizeBytes)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	if d.OperationTimeout <= 0 {
		return fmt.Errorf("operation_timeout must be > 0 (got %s)", d.OperationTimeout)
	}
	if d.LockTimeout <= 0 || d.LockTimeout > d.OperationTimeout {
		return fmt.Errorf("lock_timeout must be in (0, operation_timeout] (got %s)", d.LockTimeout)
	}
	return nil
}
