package qosparams

import (
	"github.com/conduitmesh/qospolicy/pkg/params"
	"github.com/conduitmesh/qospolicy/pkg/qos"
)

// Declare runs the override pass for one entity: for every policy kind
// that is both in the entity's catalog and in opts.Policies, it declares
// a read-only parameter seeded with the profile's current value and
// writes the effective value the store returns back into the profile.
// Parameters are declared in catalog order. The profile is mutated in
// place; any failure aborts the pass immediately and the profile must
// not be used to construct a live endpoint.
func Declare(opts Options, store params.Store, topic string, entity EntityType, profile *qos.Profile) error {
	for _, kind := range AllowedPolicies(entity) {
		if !opts.requested(kind) {
			continue
		}

		def, err := encodeDefault(kind, profile)
		if err != nil {
			return err
		}

		effective, err := store.Declare(
			paramName(topic, entity, opts.ID, kind),
			def,
			params.Descriptor{
				Description: paramDescription(topic, entity, opts.ID, kind),
				ReadOnly:    true,
			})
		if err != nil {
			return err
		}

		if err := applyOverride(kind, effective, profile); err != nil {
			return err
		}
	}

	if opts.Validation != nil && !opts.Validation(*profile) {
		return &InvalidProfileError{Reason: "validation callback failed"}
	}
	return nil
}

// DeclarePublisherParameters runs the override pass with the publisher
// policy catalog.
func DeclarePublisherParameters(opts Options, store params.Store, topic string, profile *qos.Profile) error {
	return Declare(opts, store, topic, EntityPublisher, profile)
}

// DeclareSubscriberParameters runs the override pass with the
// subscriber policy catalog.
func DeclareSubscriberParameters(opts Options, store params.Store, topic string, profile *qos.Profile) error {
	return Declare(opts, store, topic, EntitySubscriber, profile)
}
