package qosparams

import (
	"fmt"
	"time"

	"github.com/conduitmesh/qospolicy/pkg/params"
	"github.com/conduitmesh/qospolicy/pkg/qos"
)

// policyEnum is satisfied by the four string-enum policy types.
type policyEnum interface {
	~string
	Valid() bool
}

// encodeDefault reads the current value for kind from the profile and
// wraps it as the matching parameter variant. Durations are normalized
// to signed nanosecond counts.
func encodeDefault(kind PolicyKind, p *qos.Profile) (params.Value, error) {
	switch kind {
	case PolicyAvoidNamespaceConventions:
		return params.NewBool(p.AvoidNamespaceConventions), nil
	case PolicyDeadline:
		return params.NewInt(p.Deadline.Nanoseconds()), nil
	case PolicyDurability:
		return encodeEnum(kind, p.Durability)
	case PolicyHistory:
		return encodeEnum(kind, p.History)
	case PolicyDepth:
		return params.NewInt(int64(p.Depth)), nil
	case PolicyLifespan:
		return params.NewInt(p.Lifespan.Nanoseconds()), nil
	case PolicyLiveliness:
		return encodeEnum(kind, p.Liveliness)
	case PolicyLivelinessLeaseDuration:
		return params.NewInt(p.LivelinessLeaseDuration.Nanoseconds()), nil
	case PolicyReliability:
		return encodeEnum(kind, p.Reliability)
	default:
		return params.Value{}, &UnsupportedPolicyKindError{Kind: kind}
	}
}

// applyOverride writes a resolved parameter value for kind into the
// profile. On failure the profile is left unmodified for that kind;
// kinds applied earlier in the same pass are not rolled back.
func applyOverride(kind PolicyKind, v params.Value, p *qos.Profile) error {
	switch kind {
	case PolicyAvoidNamespaceConventions:
		b, ok := v.Bool()
		if !ok {
			return wrongVariant(kind, params.KindBool, v)
		}
		p.AvoidNamespaceConventions = b
	case PolicyDeadline:
		ns, ok := v.Int()
		if !ok {
			return wrongVariant(kind, params.KindInt, v)
		}
		p.Deadline = time.Duration(ns)
	case PolicyDurability:
		return applyEnum(kind, v, qos.ParseDurability, &p.Durability)
	case PolicyHistory:
		return applyEnum(kind, v, qos.ParseHistory, &p.History)
	case PolicyDepth:
		ns, ok := v.Int()
		if !ok {
			return wrongVariant(kind, params.KindInt, v)
		}
		// Unchecked narrowing: negative or oversized overrides wrap.
		// Bounding them is the caller's responsibility.
		p.Depth = uint(ns)
	case PolicyLifespan:
		ns, ok := v.Int()
		if !ok {
			return wrongVariant(kind, params.KindInt, v)
		}
		p.Lifespan = time.Duration(ns)
	case PolicyLiveliness:
		return applyEnum(kind, v, qos.ParseLiveliness, &p.Liveliness)
	case PolicyLivelinessLeaseDuration:
		ns, ok := v.Int()
		if !ok {
			return wrongVariant(kind, params.KindInt, v)
		}
		p.LivelinessLeaseDuration = time.Duration(ns)
	case PolicyReliability:
		return applyEnum(kind, v, qos.ParseReliability, &p.Reliability)
	default:
		return &UnsupportedPolicyKindError{Kind: kind}
	}
	return nil
}

// encodeEnum converts a string-enum policy value to its canonical
// string. A value outside the valid set denotes a profile already in an
// invalid state, never silently coerced.
func encodeEnum[E policyEnum](kind PolicyKind, v E) (params.Value, error) {
	if !v.Valid() {
		return params.Value{}, &ValueConversionError{
			Kind:   kind,
			Reason: fmt.Sprintf("profile value %q has no canonical string", string(v)),
		}
	}
	return params.NewString(string(v)), nil
}

// applyEnum resolves an override string through the kind's lookup table
// and writes the result to dst.
func applyEnum[E policyEnum](kind PolicyKind, v params.Value, parse func(string) (E, bool), dst *E) error {
	s, ok := v.Str()
	if !ok {
		return wrongVariant(kind, params.KindString, v)
	}
	parsed, ok := parse(s)
	if !ok {
		return &UnknownPolicyValueError{Kind: kind, Value: s}
	}
	*dst = parsed
	return nil
}

func wrongVariant(kind PolicyKind, want params.ValueKind, got params.Value) error {
	return &ValueConversionError{
		Kind:   kind,
		Reason: fmt.Sprintf("expected a %s parameter, got %s", want, got.Kind()),
	}
}
