package provider

import (
	"encoding/json"
	"strings"
)

// providerError is the error envelope both providers use on non-success
// responses.
type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// apiErrorMessage extracts the provider's own error message from a
// non-success body, falling back to a generic placeholder.
func apiErrorMessage(body []byte) string {
	var envelope providerError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return "unknown error"
}

// cardBrand derives the scheme name OPPWA expects from the card number
// prefix. The canonical request carries no brand field.
func cardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "AMEX"
	case strings.HasPrefix(number, "5"), strings.HasPrefix(number, "2"):
		return "MASTER"
	default:
		return "VISA"
	}
}
