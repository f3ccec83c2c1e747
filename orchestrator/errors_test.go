package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorError_Message(t *testing.T) {
	err := wrapTranslatorError(RateLimited, 3, errors.New("too many requests"))
	assert.Contains(t, err.Error(), "block 3")
	assert.Contains(t, err.Error(), "rate_limited")
}

func TestTranslatorError_MessageWithoutIndex(t *testing.T) {
	err := wrapTranslatorError(AuthFailure, -1, errors.New("bad key"))
	assert.NotContains(t, err.Error(), "block")
	assert.Contains(t, err.Error(), "auth_failure")
}

func TestTranslatorError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := wrapTranslatorError(ProviderError, -1, cause)
	assert.True(t, errors.Is(err, cause))
}

func TestClassifyTranslatorError_PreservesExistingKind(t *testing.T) {
	inner := wrapTranslatorError(ServiceTimeout, -1, errors.New("timed out"))
	classified := classifyTranslatorError(inner, 5)

	var te *TranslatorError
	assert.True(t, errors.As(classified, &te))
	assert.Equal(t, ServiceTimeout, te.Kind)
	assert.Equal(t, 5, te.Index)
}

func TestClassifyTranslatorError_DefaultsToProviderError(t *testing.T) {
	classified := classifyTranslatorError(errors.New("anything"), 2)

	var te *TranslatorError
	assert.True(t, errors.As(classified, &te))
	assert.Equal(t, ProviderError, te.Kind)
	assert.Equal(t, 2, te.Index)
}

func TestTranslatorErrorKind_String(t *testing.T) {
	cases := map[TranslatorErrorKind]string{
		RateLimited:        "rate_limited",
		ServiceUnavailable: "service_unavailable",
		AuthFailure:        "auth_failure",
		ServiceTimeout:     "service_timeout",
		ProviderError:      "provider_error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
