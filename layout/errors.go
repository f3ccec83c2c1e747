package layout

import (
	"fmt"
)

// ConfigError reports a Config field that violates its invariant (§7
// ConfigInvalid). It is only ever returned from Config construction.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: invalid config field %q = %v: %s", e.Field, e.Value, e.Reason)
}

// InputError reports a BoundingBox or FontInfo argument that violates its
// invariants (§7 InputInvalid). It is returned by NewBoundingBox and
// NewFontInfo; Analyze and Apply take already-constructed values and
// return no error.
type InputError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("layout: invalid input field %q = %v: %s", e.Field, e.Value, e.Reason)
}
