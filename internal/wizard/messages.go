package wizard

import (
	"errors"
	"strings"

	"github.com/Simplici0/kurocal/internal/nutrition"
)

// Message turns a step error into text suitable for showing next to the form.
func Message(err error) string {
	if err == nil {
		return ""
	}

	detail := err.Error()
	switch {
	case errors.Is(err, nutrition.ErrInvalidInput):
		return "Please check the values: " + trimKind(detail, nutrition.ErrInvalidInput) + "."
	case errors.Is(err, nutrition.ErrInsufficientData):
		return "Missing information: " + trimKind(detail, nutrition.ErrInsufficientData) + "."
	case errors.Is(err, ErrStepNotActive):
		return "That form belongs to another step; reload the page and try again."
	case errors.Is(err, ErrLastStep):
		return "The report is the last step."
	default:
		return "Something went wrong; please try again."
	}
}

func trimKind(detail string, kind error) string {
	return strings.TrimPrefix(detail, kind.Error()+": ")
}
