package generator

import (
	"sort"
	"strings"
	"time"
)

// positionGroup is one (device, route-or-day) bucket of a fetched batch.
// members keep their batch order; sourceApp is the tag of the first member
// that carried one.
type positionGroup struct {
	deviceID  string
	routeKey  string
	sourceApp string
	members   []DevicePosition
}

type groupKey struct {
	deviceID string
	routeKey string
}

// groupPositions partitions a batch into per-(device, route-or-day)
// groups. The route key is the trimmed route label when present, else the
// UTC calendar date of the sample. Groups come back sorted ascending by
// (device, route key) so downstream track order is reproducible; an empty
// batch yields zero groups.
//
// Grouping is not time-window aware: two positions sharing device and
// route key land in the same group however far apart in time. The
// segmenter handles the time dimension.
func groupPositions(batch []DevicePosition) []positionGroup {
	byKey := map[groupKey]*positionGroup{}
	for _, pos := range batch {
		key := groupKey{deviceID: pos.DeviceID, routeKey: routeKeyFor(pos)}
		grp := byKey[key]
		if grp == nil {
			grp = &positionGroup{deviceID: key.deviceID, routeKey: key.routeKey}
			byKey[key] = grp
		}
		if grp.sourceApp == "" {
			grp.sourceApp = pos.SourceApp
		}
		grp.members = append(grp.members, pos)
	}

	groups := make([]positionGroup, 0, len(byKey))
	for _, grp := range byKey {
		groups = append(groups, *grp)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].deviceID != groups[j].deviceID {
			return groups[i].deviceID < groups[j].deviceID
		}
		return groups[i].routeKey < groups[j].routeKey
	})
	return groups
}

func routeKeyFor(pos DevicePosition) string {
	if route := strings.TrimSpace(pos.RouteName); route != "" {
		return route
	}
	return utcDateKey(pos.Time)
}

// utcDateKey returns the YYYY-MM-DD calendar date of t in UTC.
func utcDateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
