package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validate checks field ranges after defaults are applied and reports every
// offending key at once, e.g. "invalid config: http.port (max), pubsub.provider (oneof)".
func (cfg *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "invalid config")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s (%s)", configKey(fe.Namespace()), fe.Tag()))
	}
	sort.Strings(problems)

	return errors.Errorf("invalid config: %s", strings.Join(problems, ", "))
}

// configKey turns "Config.HTTP.Port" into "http.port".
func configKey(namespace string) string {
	_, key, _ := strings.Cut(namespace, ".")

	return strings.ToLower(key)
}
