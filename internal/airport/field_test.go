package airport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField() *SearchField {
	return NewSearchField(NewIndex(testRecords()), 10)
}

// TestSearchField_FocusOpensSuggestions tests Idle -> Focused on focus with
// browse-mode suggestions for empty text.
func TestSearchField_FocusOpensSuggestions(t *testing.T) {
	f := newTestField()
	assert.Equal(t, StateIdle, f.State())

	suggestions := f.Focus()

	assert.Equal(t, StateFocused, f.State())
	assert.Len(t, suggestions, 5)
}

// TestSearchField_TextChangeDrivesSuggestions tests that every text change
// opens the list and narrows it to matching records.
func TestSearchField_TextChangeDrivesSuggestions(t *testing.T) {
	f := newTestField()

	suggestions := f.SetText("par")

	assert.Equal(t, StateFocused, f.State())
	require.Len(t, suggestions, 1)
	assert.Equal(t, "CDG", suggestions[0].IATA)
}

// TestSearchField_SelectNormalizesValue tests that selecting a suggestion sets
// the logical value to the IATA code and the text to the canonical display.
func TestSearchField_SelectNormalizesValue(t *testing.T) {
	f := newTestField()
	suggestions := f.SetText("heathrow")
	require.NotEmpty(t, suggestions)

	f.Select(suggestions[0])

	assert.Equal(t, "LHR", f.Value())
	assert.Equal(t, "LHR - Heathrow Airport, London, United Kingdom", f.Text())
	assert.Equal(t, StateIdle, f.State())
}

// TestSearchField_BlurCloses tests the plain blur path: the pending close
// completes and the list closes.
func TestSearchField_BlurCloses(t *testing.T) {
	f := newTestField()
	f.Focus()

	token := f.Blur()
	f.CompleteBlur(token)

	assert.Equal(t, StateIdle, f.State())
}

// TestSearchField_SelectionCancelsPendingClose tests the blur/click race: a
// selection between blur and its deferred completion wins, and the stale close
// does not reopen or disturb the selected state.
func TestSearchField_SelectionCancelsPendingClose(t *testing.T) {
	f := newTestField()
	suggestions := f.SetText("lagos")
	require.NotEmpty(t, suggestions)

	token := f.Blur()
	f.PointerDownInList()
	f.Select(suggestions[0])
	f.CompleteBlur(token)

	assert.Equal(t, "LOS", f.Value())
	assert.Equal(t, StateIdle, f.State())
}

// TestSearchField_RefocusCancelsPendingClose tests that regaining focus before
// the deferred close runs keeps the list open.
func TestSearchField_RefocusCancelsPendingClose(t *testing.T) {
	f := newTestField()
	f.Focus()

	token := f.Blur()
	f.Focus()
	f.CompleteBlur(token)

	assert.Equal(t, StateFocused, f.State())
}

// TestSearchField_StaleTokenIgnored tests that only the most recent pending
// close can complete.
func TestSearchField_StaleTokenIgnored(t *testing.T) {
	f := newTestField()
	f.Focus()

	stale := f.Blur()
	f.Focus()
	live := f.Blur()

	f.CompleteBlur(stale)
	assert.Equal(t, StateFocused, f.State())

	f.CompleteBlur(live)
	assert.Equal(t, StateIdle, f.State())
}

// TestSearchField_SetValueResolvesDisplay tests the external-reset round trip:
// a known IATA renders the canonical display, an unknown one renders empty.
func TestSearchField_SetValueResolvesDisplay(t *testing.T) {
	f := newTestField()

	f.SetValue("CDG")
	assert.Equal(t, "CDG - Charles de Gaulle Airport, Paris, France", f.Text())
	assert.Equal(t, "CDG", f.Value())

	f.SetValue("XXX")
	assert.Empty(t, f.Text())

	f.SetValue("")
	assert.Empty(t, f.Text())
	assert.Empty(t, f.Value())
}
