package aws

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// Sentinel display values for fields whose true value could not be obtained.
// They are resolved from the outcome only at the report boundary.
const (
	sentinelNA     = "N/A"
	sentinelDenied = "AccessDenied"
	sentinelError  = "Error"
)

// Outcome classifies the result of a per-item detail lookup.
type Outcome int

const (
	OutcomeValue Outcome = iota
	OutcomeNotFound
	OutcomeAccessDenied
	OutcomeError
)

// Detail carries a looked-up field together with its outcome.
type Detail struct {
	Outcome Outcome
	Value   string
}

// Display resolves the detail to the string written into the report.
func (d Detail) Display() string {
	switch d.Outcome {
	case OutcomeValue:
		return d.Value
	case OutcomeNotFound:
		return sentinelNA
	case OutcomeAccessDenied:
		return sentinelDenied
	default:
		return sentinelError
	}
}

// detailValue wraps a successfully fetched value.
func detailValue(v string) Detail {
	return Detail{Outcome: OutcomeValue, Value: v}
}

// classifyDetail maps a detail-lookup error to its outcome.
func classifyDetail(err error) Detail {
	switch {
	case isNotFound(err):
		return Detail{Outcome: OutcomeNotFound}
	case isAccessDenied(err):
		return Detail{Outcome: OutcomeAccessDenied}
	default:
		return Detail{Outcome: OutcomeError}
	}
}

func isAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation", "UnrecognizedClientException", "AuthFailure":
		return true
	}
	return false
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(apiErr.ErrorCode(), "NotFound")
}
