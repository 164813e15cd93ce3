// Package qos defines the quality-of-service profile attached to a
// publisher or subscriber endpoint, together with the closed string
// vocabularies for its enumerated policies.
package qos

import "time"

// Durability controls whether samples outlive the writer that produced them.
type Durability string

const (
	DurabilitySystemDefault  Durability = "system_default"
	DurabilityTransientLocal Durability = "transient_local"
	DurabilityVolatile       Durability = "volatile"
)

// History controls how many samples are kept for late-joining readers.
type History string

const (
	HistorySystemDefault History = "system_default"
	HistoryKeepLast      History = "keep_last"
	HistoryKeepAll       History = "keep_all"
)

// Liveliness controls how an endpoint asserts it is still alive.
type Liveliness string

const (
	LivelinessSystemDefault Liveliness = "system_default"
	LivelinessAutomatic     Liveliness = "automatic"
	LivelinessManualByTopic Liveliness = "manual_by_topic"
)

// Reliability controls delivery guarantees between peers.
type Reliability string

const (
	ReliabilitySystemDefault Reliability = "system_default"
	ReliabilityReliable      Reliability = "reliable"
	ReliabilityBestEffort    Reliability = "best_effort"
)

var (
	durabilityValues  = []Durability{DurabilitySystemDefault, DurabilityTransientLocal, DurabilityVolatile}
	historyValues     = []History{HistorySystemDefault, HistoryKeepLast, HistoryKeepAll}
	livelinessValues  = []Liveliness{LivelinessSystemDefault, LivelinessAutomatic, LivelinessManualByTopic}
	reliabilityValues = []Reliability{ReliabilitySystemDefault, ReliabilityReliable, ReliabilityBestEffort}
)

func member[E ~string](values []E, v E) bool {
	for _, m := range values {
		if m == v {
			return true
		}
	}
	return false
}

// Valid reports whether d is one of the accepted durability values.
func (d Durability) Valid() bool { return member(durabilityValues, d) }

// Valid reports whether h is one of the accepted history values.
func (h History) Valid() bool { return member(historyValues, h) }

// Valid reports whether l is one of the accepted liveliness values.
func (l Liveliness) Valid() bool { return member(livelinessValues, l) }

// Valid reports whether r is one of the accepted reliability values.
func (r Reliability) Valid() bool { return member(reliabilityValues, r) }

// ParseDurability resolves a durability token. ok is false for unknown tokens.
func ParseDurability(s string) (Durability, bool) {
	d := Durability(s)
	return d, d.Valid()
}

// ParseHistory resolves a history token. ok is false for unknown tokens.
func ParseHistory(s string) (History, bool) {
	h := History(s)
	return h, h.Valid()
}

// ParseLiveliness resolves a liveliness token. ok is false for unknown tokens.
func ParseLiveliness(s string) (Liveliness, bool) {
	l := Liveliness(s)
	return l, l.Valid()
}

// ParseReliability resolves a reliability token. ok is false for unknown tokens.
func ParseReliability(s string) (Reliability, bool) {
	r := Reliability(s)
	return r, r.Valid()
}

// Profile is the complete set of policy values attached to one endpoint.
// The zero value is not a usable profile; use DefaultProfile, KeepLast or
// KeepAll. A Profile is plain data: copying it copies the whole policy set.
type Profile struct {
	AvoidNamespaceConventions bool          `yaml:"avoid_namespace_conventions"`
	Deadline                  time.Duration `yaml:"deadline"`
	Durability                Durability    `yaml:"durability"`
	History                   History       `yaml:"history"`
	Depth                     uint          `yaml:"depth"`
	Lifespan                  time.Duration `yaml:"lifespan"`
	Liveliness                Liveliness    `yaml:"liveliness"`
	LivelinessLeaseDuration   time.Duration `yaml:"liveliness_lease_duration"`
	Reliability               Reliability   `yaml:"reliability"`
}

// DefaultProfile returns the system-default profile with a keep-last
// history of depth 10.
func DefaultProfile() Profile {
	return KeepLast(10)
}

// KeepLast returns a profile keeping the last depth samples, with every
// other policy at its system default.
func KeepLast(depth uint) Profile {
	return Profile{
		Durability:  DurabilitySystemDefault,
		History:     HistoryKeepLast,
		Depth:       depth,
		Liveliness:  LivelinessSystemDefault,
		Reliability: ReliabilitySystemDefault,
	}
}

// KeepAll returns a profile keeping all samples.
func KeepAll() Profile {
	p := KeepLast(0)
	p.History = HistoryKeepAll
	return p
}
