package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/c-semaan/daterange/internal/period"
)

func (c Config) validate() error {
	var errs []error

	if _, err := period.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}

	if err := checkPort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port %w", err))
	}

	if _, err := time.ParseDuration(c.Cache.OffsetTTL); err != nil {
		errs = append(errs, fmt.Errorf("cache.offset_ttl: invalid duration format: %w", err))
	}

	// timezone stays unvalidated: an unresolvable name means UTC by
	// contract, not a configuration mistake

	return errors.Join(errs...)
}

func checkPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", port)
	}
	return nil
}
