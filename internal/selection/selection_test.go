package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAll_Checked_ReplacesSelection(t *testing.T) {
	set := New()

	// Two records checked by hand, then select-all over five visible leads.
	set.ToggleOne("lead1", true)
	set.ToggleOne("lead3", true)

	visible := []string{"lead1", "lead2", "lead3", "lead4", "lead5"}
	set.ToggleAll(visible, true)

	assert.Equal(t, visible, set.IDs())
	assert.True(t, set.AllSelected())
}

func TestToggleAll_Unchecked_EmptiesSelection(t *testing.T) {
	set := New()
	set.ToggleAll([]string{"a", "b", "c"}, true)

	set.ToggleAll([]string{"a", "b", "c"}, false)

	assert.Empty(t, set.IDs())
	assert.False(t, set.AllSelected())
}

func TestToggleOne_UncheckClearsAllFlag(t *testing.T) {
	set := New()
	set.ToggleAll([]string{"a", "b", "c"}, true)

	set.ToggleOne("b", false)

	// The remaining IDs stay selected but the set is no longer complete.
	assert.Equal(t, []string{"a", "c"}, set.IDs())
	assert.False(t, set.AllSelected())
	assert.False(t, set.Contains("b"))
}

func TestToggleOne_AddAndRemove(t *testing.T) {
	set := New()

	set.ToggleOne("x", true)
	set.ToggleOne("y", true)
	set.ToggleOne("x", true) // re-checking is a no-op

	assert.Equal(t, []string{"x", "y"}, set.IDs())
	assert.Equal(t, 2, set.Len())

	set.ToggleOne("x", false)
	assert.Equal(t, []string{"y"}, set.IDs())
}

func TestToggleOne_UncheckAbsentIDStillClearsAllFlag(t *testing.T) {
	set := New()
	set.ToggleAll([]string{"a"}, true)

	set.ToggleOne("not-there", false)

	assert.False(t, set.AllSelected())
	assert.Equal(t, []string{"a"}, set.IDs())
}

func TestSelection_NotPrunedWhenVisibleSetChanges(t *testing.T) {
	set := New()
	set.ToggleAll([]string{"a", "b", "c"}, true)

	// The filter changed and "c" is no longer visible; the selection keeps
	// it until the next explicit toggle-all.
	assert.True(t, set.Contains("c"))

	set.ToggleAll([]string{"a", "b"}, true)
	assert.False(t, set.Contains("c"))
}

func TestClear(t *testing.T) {
	set := New()
	set.ToggleOne("a", true)
	set.ToggleOne("b", true)

	set.Clear()

	assert.Empty(t, set.IDs())
	assert.False(t, set.AllSelected())
	assert.Equal(t, 0, set.Len())
}

func TestToggleAll_DeduplicatesVisibleIDs(t *testing.T) {
	set := New()

	set.ToggleAll([]string{"a", "a", "b"}, true)

	assert.Equal(t, []string{"a", "b"}, set.IDs())
}
