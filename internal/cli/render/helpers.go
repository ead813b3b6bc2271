package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/arbiter/internal/domain"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error for the terminal. Validation and funds
// errors drop their wrapping so the reason reads first; other chains are
// kept whole because they carry retry instructions.
func FormatError(err error) string {
	msg := err.Error()

	var validation domain.ValidationError
	var funds domain.InsufficientFundsError
	switch {
	case errors.As(err, &validation):
		msg = validation.Error()
	case errors.As(err, &funds):
		msg = funds.Error()
	}

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprint(msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}
