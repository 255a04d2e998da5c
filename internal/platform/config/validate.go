package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.App.validate(),
		c.Store.validate(),
		c.Auth.validate(),
		c.Notifier.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (a *AppConfig) validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return errors.New("app.base_url must not be empty")
	}
	if _, err := url.Parse(a.BaseURL); err != nil {
		return fmt.Errorf("app.base_url must be a valid URL: %w", err)
	}
	return nil
}

func (s *StoreConfig) validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("store.path must not be empty")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	var errs []error

	if strings.TrimSpace(a.SessionSecret) == "" && len(a.APIKeys) == 0 {
		errs = append(errs, errors.New("auth.session_secret or auth.api_keys must be configured"))
	}
	for key, userID := range a.APIKeys {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(userID) == "" {
			errs = append(errs, errors.New("auth.api_keys entries must have non-empty key and user id"))
			break
		}
	}

	return errors.Join(errs...)
}

func (n *NotifierConfig) validate() error {
	if !n.Enabled {
		return nil
	}

	var errs []error

	if len(n.Endpoints) == 0 {
		errs = append(errs, errors.New("notifier.endpoints must not be empty when notifier is enabled"))
	}
	for _, endpoint := range n.Endpoints {
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("notifier.endpoints entry %q must be an absolute URL", endpoint))
		}
	}
	errs = append(errs, n.Client.validate())

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("notifier.client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("notifier.client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("notifier.client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("notifier.client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
