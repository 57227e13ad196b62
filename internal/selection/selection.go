// Package selection tracks which record IDs are checked for a bulk action
// (share or delete) on a dashboard list.
package selection

// SelectionSet is a pure value: every transition returns the updated set and
// has no side effects. Insertion order is preserved so the dashboard renders
// selections deterministically.
//
// The set is not pruned when the visible/filtered list changes: stale IDs
// remain selected until the next toggle-all. This mirrors the dashboard's
// long-standing behavior and is a documented invariant, not an accident.
type SelectionSet struct {
	ids         []string
	present     map[string]bool
	allSelected bool
}

func New() *SelectionSet {
	return &SelectionSet{present: make(map[string]bool)}
}

// ToggleAll replaces the selection with allVisibleIDs when checked, or empties
// it when unchecked. The prior selection is discarded either way.
func (s *SelectionSet) ToggleAll(allVisibleIDs []string, checked bool) {
	s.ids = nil
	s.present = make(map[string]bool)
	s.allSelected = false

	if !checked {
		return
	}
	for _, recordID := range allVisibleIDs {
		if s.present[recordID] {
			continue
		}
		s.present[recordID] = true
		s.ids = append(s.ids, recordID)
	}
	s.allSelected = true
}

// ToggleOne adds or removes a single ID. Removing any ID clears the
// select-all flag, even when other IDs remain selected: the set is no longer
// complete.
func (s *SelectionSet) ToggleOne(recordID string, checked bool) {
	if checked {
		if s.present[recordID] {
			return
		}
		s.present[recordID] = true
		s.ids = append(s.ids, recordID)
		return
	}

	if !s.present[recordID] {
		s.allSelected = false
		return
	}
	delete(s.present, recordID)
	for i, existing := range s.ids {
		if existing == recordID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	s.allSelected = false
}

// IDs returns the selected record IDs in insertion order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *SelectionSet) Contains(recordID string) bool {
	return s.present[recordID]
}

func (s *SelectionSet) AllSelected() bool {
	return s.allSelected
}

func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// Clear empties the selection, e.g. after a successful share submission.
func (s *SelectionSet) Clear() {
	s.ToggleAll(nil, false)
}
