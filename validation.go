package logsetup

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

// optionNames maps Config fields to the option names used in errors.
var optionNames = map[string]string{
	"FilterLevel": "filter_level",
	"FileName":    "file_name",
	"Rolling":     "rolling",
	"Format":      "format",
	"MaxSizeMB":   "max_size_mb",
	"MaxBackups":  "max_backups",
	"MaxAgeDays":  "max_age_days",
	"BufferSize":  "buffer_size",
}

func validateConfig(cfg *Config) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("logfilter", func(fl validator.FieldLevel) bool {
			_, err := ParseFilter(fl.Field().String())
			return err == nil
		})
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return newConfigError("config", emptyString, fmt.Errorf("%s %w", errMsgConfigInvalid, err))
	}

	fe := verrs[0]
	option, ok := optionNames[fe.StructField()]
	if !ok {
		option = fe.StructField()
	}
	value := fmt.Sprint(fe.Value())

	switch fe.StructField() {
	case "Rolling":
		return newConfigError(option, value, ErrUnknownRotation)
	case "Format":
		return newConfigError(option, value, ErrUnknownFormat)
	case "FilterLevel":
		return newConfigError(option, value, ErrInvalidFilter)
	}
	return newConfigError(option, value, fmt.Errorf("%w: failed %q", ErrInvalidOption, fe.Tag()))
}
