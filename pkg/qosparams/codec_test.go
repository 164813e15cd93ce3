package qosparams

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduitmesh/qospolicy/pkg/params"
	"github.com/conduitmesh/qospolicy/pkg/qos"
)

func testProfile() qos.Profile {
	return qos.Profile{
		AvoidNamespaceConventions: true,
		Deadline:                  2 * time.Second,
		Durability:                qos.DurabilityTransientLocal,
		History:                   qos.HistoryKeepLast,
		Depth:                     10,
		Lifespan:                  time.Second,
		Liveliness:                qos.LivelinessAutomatic,
		LivelinessLeaseDuration:   500 * time.Millisecond,
		Reliability:               qos.ReliabilityReliable,
	}
}

func TestEncodeDefault(t *testing.T) {
	p := testProfile()

	tests := []struct {
		kind PolicyKind
		want params.Value
	}{
		{PolicyAvoidNamespaceConventions, params.NewBool(true)},
		{PolicyDeadline, params.NewInt(2_000_000_000)},
		{PolicyDurability, params.NewString("transient_local")},
		{PolicyHistory, params.NewString("keep_last")},
		{PolicyDepth, params.NewInt(10)},
		{PolicyLifespan, params.NewInt(1_000_000_000)},
		{PolicyLiveliness, params.NewString("automatic")},
		{PolicyLivelinessLeaseDuration, params.NewInt(500_000_000)},
		{PolicyReliability, params.NewString("reliable")},
	}
	for _, tt := range tests {
		got, err := encodeDefault(tt.kind, &p)
		require.NoError(t, err, "kind %s", tt.kind)
		assert.True(t, got.Equal(tt.want), "kind %s: got %s", tt.kind, got)
	}
}

func TestEncodeDefault_InvalidEnumValue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*qos.Profile)
		kind   PolicyKind
	}{
		{"durability", func(p *qos.Profile) { p.Durability = "persistent" }, PolicyDurability},
		{"history", func(p *qos.Profile) { p.History = "" }, PolicyHistory},
		{"liveliness", func(p *qos.Profile) { p.Liveliness = "manual_by_node" }, PolicyLiveliness},
		{"reliability", func(p *qos.Profile) { p.Reliability = "lossy" }, PolicyReliability},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			tt.mutate(&p)
			_, err := encodeDefault(tt.kind, &p)
			var convErr *ValueConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.kind, convErr.Kind)
		})
	}
}

func TestEncodeDefault_UnsupportedKind(t *testing.T) {
	p := testProfile()
	_, err := encodeDefault(PolicyKind(99), &p)
	var kindErr *UnsupportedPolicyKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, PolicyKind(99), kindErr.Kind)
}

func TestApplyOverride_RoundTripIdentity(t *testing.T) {
	original := testProfile()
	for _, kind := range AllowedPolicies(EntityPublisher) {
		v, err := encodeDefault(kind, &original)
		require.NoError(t, err, "kind %s", kind)

		fresh := testProfile()
		require.NoError(t, applyOverride(kind, v, &fresh), "kind %s", kind)
		assert.Equal(t, original, fresh, "kind %s", kind)
	}
}

func TestApplyOverride_Values(t *testing.T) {
	p := testProfile()

	require.NoError(t, applyOverride(PolicyDepth, params.NewInt(5), &p))
	assert.Equal(t, uint(5), p.Depth)

	require.NoError(t, applyOverride(PolicyDeadline, params.NewInt(1_000_000_000), &p))
	assert.Equal(t, time.Second, p.Deadline)

	require.NoError(t, applyOverride(PolicyReliability, params.NewString("best_effort"), &p))
	assert.Equal(t, qos.ReliabilityBestEffort, p.Reliability)

	require.NoError(t, applyOverride(PolicyAvoidNamespaceConventions, params.NewBool(false), &p))
	assert.False(t, p.AvoidNamespaceConventions)
}

func TestApplyOverride_UnknownEnumString(t *testing.T) {
	enumKinds := []PolicyKind{PolicyDurability, PolicyHistory, PolicyLiveliness, PolicyReliability}
	for _, kind := range enumKinds {
		p := testProfile()
		before := p

		err := applyOverride(kind, params.NewString("not-a-real-value"), &p)
		var unknownErr *UnknownPolicyValueError
		require.ErrorAs(t, err, &unknownErr, "kind %s", kind)
		assert.Equal(t, kind, unknownErr.Kind)
		assert.Equal(t, "not-a-real-value", unknownErr.Value)
		// Failed override leaves the profile untouched.
		assert.Equal(t, before, p, "kind %s", kind)
	}
}

func TestApplyOverride_WrongVariant(t *testing.T) {
	tests := []struct {
		kind  PolicyKind
		value params.Value
	}{
		{PolicyAvoidNamespaceConventions, params.NewInt(1)},
		{PolicyDeadline, params.NewString("1s")},
		{PolicyDepth, params.NewString("5")},
		{PolicyLifespan, params.NewBool(true)},
		{PolicyLivelinessLeaseDuration, params.NewString("0")},
		{PolicyReliability, params.NewInt(0)},
	}
	for _, tt := range tests {
		p := testProfile()
		err := applyOverride(tt.kind, tt.value, &p)
		var convErr *ValueConversionError
		require.ErrorAs(t, err, &convErr, "kind %s", tt.kind)
		assert.Equal(t, tt.kind, convErr.Kind)
	}
}

func TestApplyOverride_UnsupportedKind(t *testing.T) {
	p := testProfile()
	err := applyOverride(PolicyKind(-1), params.NewInt(0), &p)
	var kindErr *UnsupportedPolicyKindError
	assert.ErrorAs(t, err, &kindErr)
}

func TestApplyOverride_DepthNarrowing(t *testing.T) {
	// Negative depth overrides wrap through the unchecked uint
	// conversion. Known sharp edge, kept as-is.
	p := testProfile()
	require.NoError(t, applyOverride(PolicyDepth, params.NewInt(-1), &p))
	assert.Equal(t, ^uint(0), p.Depth)
}
