package orchestrator

import (
	"fmt"

	"golang.org/x/xerrors"
)

// TranslatorErrorKind is one of the carried failure kinds from §7's
// TranslatorFailure taxonomy.
type TranslatorErrorKind int

const (
	RateLimited TranslatorErrorKind = iota
	ServiceUnavailable
	AuthFailure
	ServiceTimeout
	ProviderError
)

func (k TranslatorErrorKind) String() string {
	switch k {
	case RateLimited:
		return "rate_limited"
	case ServiceUnavailable:
		return "service_unavailable"
	case AuthFailure:
		return "auth_failure"
	case ServiceTimeout:
		return "service_timeout"
	case ProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// TranslatorError wraps a translator failure with its kind (§7). The
// adapter propagates it unchanged rather than swallowing it; retry and
// backoff are the caller's responsibility (§7, §9).
type TranslatorError struct {
	Kind  TranslatorErrorKind
	Index int // position within the batch, -1 for a single-block call
	Err   error
}

func (e *TranslatorError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("orchestrator: translator failure at block %d (%s): %v", e.Index, e.Kind, e.Err)
	}
	return fmt.Sprintf("orchestrator: translator failure (%s): %v", e.Kind, e.Err)
}

func (e *TranslatorError) Unwrap() error {
	return e.Err
}

func wrapTranslatorError(kind TranslatorErrorKind, index int, err error) error {
	return &TranslatorError{Kind: kind, Index: index, Err: xerrors.Errorf("translate: %w", err)}
}

// classifyTranslatorError maps an arbitrary translator error into a
// *TranslatorError. A translator that already returns a *TranslatorError
// (or wraps one) has its kind and index preserved; everything else is
// classified as ProviderError, the catch-all kind for failures whose
// cause the adapter cannot otherwise distinguish (§7).
func classifyTranslatorError(err error, index int) error {
	var te *TranslatorError
	if xerrors.As(err, &te) {
		if te.Index < 0 {
			te.Index = index
		}
		return te
	}
	return wrapTranslatorError(ProviderError, index, err)
}
