package qosparams

// Parameter names form a textual contract with external tooling
// (introspection, override files): changing this scheme breaks
// correlation, so it is frozen. Topic and id are inserted verbatim;
// callers must keep them free of the "." and "_" delimiters.

// paramName builds "qos_overrides.<topic>.<entity>[_<id>].<policy>".
func paramName(topic string, entity EntityType, id string, kind PolicyKind) string {
	name := "qos_overrides." + topic + "." + string(entity)
	if id != "" {
		name += "_" + id
	}
	return name + "." + kind.String()
}

// paramDescription builds the human-readable descriptor text, e.g.
// "qos policy {depth} for publisher {chatter} with id {sensor}".
func paramDescription(topic string, entity EntityType, id string, kind PolicyKind) string {
	desc := "qos policy {" + kind.String() + "} for " + string(entity) + " {" + topic + "}"
	if id != "" {
		desc += " with id {" + id + "}"
	}
	return desc
}
