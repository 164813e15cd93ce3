package qosparams

import "fmt"

// UnsupportedPolicyKindError reports a policy kind outside the known
// enumeration reaching the codec. Unreachable with the current closed
// kind set, but a future profile revision may extend it before the
// codec learns the new kind.
type UnsupportedPolicyKindError struct {
	Kind PolicyKind
}

func (e *UnsupportedPolicyKindError) Error() string {
	return fmt.Sprintf("unsupported qos policy kind %d", int(e.Kind))
}

// ValueConversionError reports a policy value that could not be
// converted between its typed profile form and the generic parameter
// form: either the profile's current value has no canonical string, or
// the parameter value holds the wrong variant for the kind.
type ValueConversionError struct {
	Kind   PolicyKind
	Reason string
}

func (e *ValueConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s qos policy value: %s", e.Kind, e.Reason)
}

// UnknownPolicyValueError reports an override string that matches no
// accepted token for its policy kind.
type UnknownPolicyValueError struct {
	Kind  PolicyKind
	Value string
}

func (e *UnknownPolicyValueError) Error() string {
	return fmt.Sprintf("unknown qos policy %s value: %s", e.Kind, e.Value)
}

// InvalidProfileError reports that the validation callback rejected
// the fully overridden profile.
type InvalidProfileError struct {
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid qos profile: %s", e.Reason)
}
