package services

// MergedSelection maps component key → set of enabled subtasks. A component
// present in the map is enabled; absent components were enabled in no source.
type MergedSelection map[string]map[string]bool

// MergeComponents combines the enabled components of every valid area, in
// store order, with an optional secondary single-area selection (the quick
// quote form). Subtask sets are unioned: a subtask enabled in any source is
// enabled in the merge. Selections never subtract from each other.
//
// Zero valid areas and an empty merge are distinct failures: the first means
// the measurements are wrong, the second means nothing was selected.
func MergeComponents(areas []*Area, extra map[string]*ComponentSelection) (MergedSelection, error) {
	var valid []*Area
	for _, a := range areas {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidAreas
	}

	merged := MergedSelection{}
	for _, a := range valid {
		mergeInto(merged, a.Components)
	}
	if extra != nil {
		mergeInto(merged, extra)
	}

	if len(merged) == 0 {
		return nil, ErrNoComponents
	}
	return merged, nil
}

func mergeInto(merged MergedSelection, source map[string]*ComponentSelection) {
	for key, sel := range source {
		if sel == nil || !sel.Enabled {
			continue
		}
		subs, ok := merged[key]
		if !ok {
			subs = make(map[string]bool)
			merged[key] = subs
		}
		for sub, on := range sel.Subtasks {
			if on {
				subs[sub] = true
			}
		}
	}
}

// Flatten reduces the merged selection to the boolean component map the
// estimation API expects.
func (m MergedSelection) Flatten() map[string]bool {
	flat := make(map[string]bool, len(m))
	for key := range m {
		flat[key] = true
	}
	return flat
}
