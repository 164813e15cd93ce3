package qosparams_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conduitmesh/qospolicy/pkg/qosparams"
)

func TestAllowedPolicies_Publisher(t *testing.T) {
	catalog := qosparams.AllowedPolicies(qosparams.EntityPublisher)
	assert.Len(t, catalog, 9)
	assert.Contains(t, catalog, qosparams.PolicyLifespan)
}

func TestAllowedPolicies_Subscriber(t *testing.T) {
	catalog := qosparams.AllowedPolicies(qosparams.EntitySubscriber)
	assert.Len(t, catalog, 8)
	assert.NotContains(t, catalog, qosparams.PolicyLifespan)
}

func TestAllowedPolicies_StableOrder(t *testing.T) {
	assert.Equal(t, qosparams.AllowedPolicies(qosparams.EntityPublisher),
		qosparams.AllowedPolicies(qosparams.EntityPublisher))

	// Subscriber catalog is the publisher catalog minus lifespan, in the
	// same relative order.
	var trimmed []qosparams.PolicyKind
	for _, k := range qosparams.AllowedPolicies(qosparams.EntityPublisher) {
		if k != qosparams.PolicyLifespan {
			trimmed = append(trimmed, k)
		}
	}
	assert.Equal(t, trimmed, qosparams.AllowedPolicies(qosparams.EntitySubscriber))
}

func TestPolicyKindString(t *testing.T) {
	tests := []struct {
		kind qosparams.PolicyKind
		want string
	}{
		{qosparams.PolicyAvoidNamespaceConventions, "avoid_namespace_conventions"},
		{qosparams.PolicyDeadline, "deadline"},
		{qosparams.PolicyDurability, "durability"},
		{qosparams.PolicyHistory, "history"},
		{qosparams.PolicyDepth, "depth"},
		{qosparams.PolicyLifespan, "lifespan"},
		{qosparams.PolicyLiveliness, "liveliness"},
		{qosparams.PolicyLivelinessLeaseDuration, "liveliness_lease_duration"},
		{qosparams.PolicyReliability, "reliability"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestPolicyKindKnown(t *testing.T) {
	for _, k := range qosparams.AllowedPolicies(qosparams.EntityPublisher) {
		assert.True(t, k.Known())
	}
	assert.False(t, qosparams.PolicyKind(-1).Known())
	assert.False(t, qosparams.PolicyKind(9).Known())
	assert.Equal(t, "unknown", qosparams.PolicyKind(42).String())
}

func TestParsePolicyKind(t *testing.T) {
	for _, k := range qosparams.AllowedPolicies(qosparams.EntityPublisher) {
		got, ok := qosparams.ParsePolicyKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := qosparams.ParsePolicyKind("latency_budget")
	assert.False(t, ok)
}

func TestDefaultOptions(t *testing.T) {
	opts := qosparams.DefaultOptions("sensor")
	assert.Equal(t, "sensor", opts.ID)
	assert.Equal(t, []qosparams.PolicyKind{
		qosparams.PolicyHistory,
		qosparams.PolicyDepth,
		qosparams.PolicyReliability,
	}, opts.Policies)
	assert.Nil(t, opts.Validation)
}
