package common

import "github.com/cockroachdb/errors"

var (
	// ErrUnauthorized marks a 401 from either API. Always fatal for the run.
	ErrUnauthorized = errors.New("unauthorized, check API token")

	// ErrDuplicate is the ledger rejecting a create as a duplicate. Logged, not retried.
	ErrDuplicate = errors.New("duplicate transaction")

	// ErrAmbiguousMatch means more than one ledger record carries the same
	// correlation key. The importer never produces that, so it signals corruption.
	ErrAmbiguousMatch = errors.New("more than one ledger match for correlation key")

	// ErrNoUsableRates means the rate feed answered but every row was a
	// non-trading day. Degrades to a zero conversion, never aborts.
	ErrNoUsableRates = errors.New("rate feed returned no usable closes")

	// ErrMissingAccount is a currency without an entry in accounts.json.
	ErrMissingAccount = errors.New("currency not found in account map")
)
