// Package qosparams exposes the QoS policies of a publisher or
// subscriber as externally settable, read-only configuration
// parameters. For each policy kind an entity allows to be overridden,
// the engine declares a parameter seeded with the profile's current
// value, and writes the effective value the store resolves back into
// the profile before the endpoint is activated.
package qosparams

// PolicyKind identifies one overridable QoS policy.
type PolicyKind int

const (
	PolicyAvoidNamespaceConventions PolicyKind = iota
	PolicyDeadline
	PolicyDurability
	PolicyHistory
	PolicyDepth
	PolicyLifespan
	PolicyLiveliness
	PolicyLivelinessLeaseDuration
	PolicyReliability
)

// String returns the snake_case token used in parameter names and
// descriptions. Tokens for the string-enum kinds match the policy names
// accepted by their override values, so operators can correlate
// parameter names with documented policies.
func (k PolicyKind) String() string {
	switch k {
	case PolicyAvoidNamespaceConventions:
		return "avoid_namespace_conventions"
	case PolicyDeadline:
		return "deadline"
	case PolicyDurability:
		return "durability"
	case PolicyHistory:
		return "history"
	case PolicyDepth:
		return "depth"
	case PolicyLifespan:
		return "lifespan"
	case PolicyLiveliness:
		return "liveliness"
	case PolicyLivelinessLeaseDuration:
		return "liveliness_lease_duration"
	case PolicyReliability:
		return "reliability"
	default:
		return "unknown"
	}
}

// ParsePolicyKind resolves a snake_case policy token back to its kind.
func ParsePolicyKind(s string) (PolicyKind, bool) {
	for k := PolicyAvoidNamespaceConventions; k <= PolicyReliability; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Known reports whether k is one of the nine policy kinds.
func (k PolicyKind) Known() bool {
	return k >= PolicyAvoidNamespaceConventions && k <= PolicyReliability
}

// EntityType selects which policy catalog applies.
type EntityType string

const (
	EntityPublisher  EntityType = "publisher"
	EntitySubscriber EntityType = "subscriber"
)

var publisherPolicies = []PolicyKind{
	PolicyAvoidNamespaceConventions,
	PolicyDeadline,
	PolicyDurability,
	PolicyHistory,
	PolicyDepth,
	PolicyLifespan,
	PolicyLiveliness,
	PolicyLivelinessLeaseDuration,
	PolicyReliability,
}

// Subscribers have no lifespan policy.
var subscriberPolicies = []PolicyKind{
	PolicyAvoidNamespaceConventions,
	PolicyDeadline,
	PolicyDurability,
	PolicyHistory,
	PolicyDepth,
	PolicyLiveliness,
	PolicyLivelinessLeaseDuration,
	PolicyReliability,
}

// AllowedPolicies returns the fixed catalog of policy kinds eligible
// for override on the given entity type, in declaration order. The
// returned slice must not be mutated.
func AllowedPolicies(entity EntityType) []PolicyKind {
	switch entity {
	case EntitySubscriber:
		return subscriberPolicies
	default:
		return publisherPolicies
	}
}
