package xnat

// ResourcesList selects the resource labels a tool should operate on: the
// object's own resources when the user asked for all of them, otherwise
// exactly the requested labels. Pure selection; the inputs are returned as
// given, never copied or reordered.
func ResourcesList(info ObjectInfo, requested []string, all bool) []string {
	if all {
		return info.Resources
	}
	return requested
}
