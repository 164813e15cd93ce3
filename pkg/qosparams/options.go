package qosparams

import "github.com/conduitmesh/qospolicy/pkg/qos"

// ValidationFunc inspects the fully overridden profile and reports
// whether the entity may be constructed with it.
type ValidationFunc func(qos.Profile) bool

// Options control which policies of an entity may be overridden.
type Options struct {
	// ID disambiguates multiple entities of the same type on one topic.
	// Empty for the common single-entity case.
	ID string
	// Policies lists the policy kinds eligible for override. Kinds not
	// present in the entity's catalog are ignored.
	Policies []PolicyKind
	// Validation, when non-nil, is invoked with the final profile after
	// all overrides are applied. Returning false aborts entity
	// construction.
	Validation ValidationFunc
}

// DefaultOptions returns options declaring the default overridable
// set: history, depth and reliability.
func DefaultOptions(id string) Options {
	return Options{
		ID:       id,
		Policies: []PolicyKind{PolicyHistory, PolicyDepth, PolicyReliability},
	}
}

// requested reports whether kind is in the options' policy set.
func (o Options) requested(kind PolicyKind) bool {
	for _, k := range o.Policies {
		if k == kind {
			return true
		}
	}
	return false
}
