package entity

// Calendar days covered by every availability map.
const (
	MinDay = 1
	MaxDay = 31
)

// AvailabilityMap maps a day of month (1..31) to whether the category is
// available that day. JSON object keys are the day numbers as strings,
// matching the persisted document shape.
type AvailabilityMap map[int]bool

// ValidDay reports whether day is inside the calendar range.
func ValidDay(day int) bool {
	return day >= MinDay && day <= MaxDay
}

// EnsureAvailability makes sure the category has a fully populated
// availability map. Missing days default to true; explicit values,
// including explicit false, are never overwritten. It reports whether
// the document was modified, so callers can persist self-healed state.
func (d *Document) EnsureAvailability(categoryID string) bool {
	changed := false

	if d.Availability == nil {
		d.Availability = map[string]AvailabilityMap{}
		changed = true
	}

	m, ok := d.Availability[categoryID]
	if !ok {
		m = AvailabilityMap{}
		d.Availability[categoryID] = m
		changed = true
	}

	for day := MinDay; day <= MaxDay; day++ {
		if _, ok := m[day]; !ok {
			m[day] = true
			changed = true
		}
	}

	return changed
}

// NormalizeAvailability runs EnsureAvailability for every category.
func (d *Document) NormalizeAvailability() bool {
	changed := false
	for _, c := range d.Categories {
		if d.EnsureAvailability(c.ID) {
			changed = true
		}
	}

	return changed
}
