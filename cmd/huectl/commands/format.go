package commands

import (
	"sort"

	"huectl/internal/hue"
)

// boolLabel renders a flag as yes/no.
func boolLabel(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// onLabel renders the optional power state; unknown renders as "-".
func onLabel(on *bool) string {
	if on == nil {
		return "-"
	}
	return boolLabel(*on)
}

// sortLights orders lights ascending by ID for deterministic display and
// mutation order.
func sortLights(lights []hue.Light) {
	sort.Slice(lights, func(i, j int) bool { return lights[i].ID < lights[j].ID })
}

// sortGroups orders groups ascending by ID.
func sortGroups(groups []hue.Group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
}
