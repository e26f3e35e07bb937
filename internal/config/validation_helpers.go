package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	varerrors "github.com/alexisbeaulieu97/variants/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors
// whose field path matches the YAML document.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return varerrors.NewValidationError(field, msg, err)
	}

	return varerrors.NewValidationError("definitions", err.Error(), err)
}

// yamlishFieldName turns "Definitions.Axes[1].Values[0]" into "axes[1].values[0]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

var settingsEnv = map[string]string{
	"DefinitionsPath": EnvDefinitions,
	"LogLevel":        EnvLogLevel,
	"LogFormat":       EnvLogFormat,
}

// convertSettingsError reports settings failures against the environment
// variable that carried the value.
func convertSettingsError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := settingsEnv[ve.StructField()]
		if field == "" {
			field = ve.StructField()
		}
		msg := fmt.Sprintf("%q is not valid, must be one of: %s", ve.Value(), strings.ReplaceAll(ve.Param(), " ", ", "))
		return varerrors.NewValidationError(field, msg, err)
	}

	return varerrors.NewValidationError("settings", err.Error(), err)
}

func fieldForAxis(index int, field string) string {
	return fmt.Sprintf("axes[%d].%s", index, field)
}
