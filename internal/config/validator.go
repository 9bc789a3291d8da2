package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/errorwrapper"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		return errorwrapper.WrapError(err, "config struct validation failed")
	}

	// Delegation with no upload target is tolerated rather than rejected:
	// the delegate rule simply never fires without a base URL.
	return nil
}
