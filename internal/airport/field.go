package airport

import "github.com/snsp-travel/travel-booking-service/internal/domain"

// FieldState is the visibility state of a search field's suggestion list.
type FieldState int

const (
	// StateIdle means no suggestions are shown.
	StateIdle FieldState = iota

	// StateFocused means the suggestion list is visible, driven by the
	// current text.
	StateFocused
)

// SearchField models the type-ahead input bound to an airport index.
//
// The field separates the visible text from the logical value: selecting a
// suggestion writes the record's IATA code into the value and the canonical
// display string into the text. Closing on blur is deferred through a token so
// a pointer interaction landing inside the suggestion list can complete before
// the list closes: Blur issues a token, and CompleteBlur honors it only if no
// select, focus, or in-list pointer press happened in between.
type SearchField struct {
	index *Index
	limit int

	state FieldState
	text  string
	value string

	// blurToken is the most recently issued pending-close token. Zero means
	// no close is pending.
	blurToken int
	// tokenSeq issues tokens; it only grows, so stale tokens never match.
	tokenSeq int
}

// NewSearchField creates a field over the given index. limit caps the
// suggestion list; non-positive values fall back to DefaultSearchLimit.
func NewSearchField(index *Index, limit int) *SearchField {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &SearchField{index: index, limit: limit}
}

// State returns the current suggestion-list state.
func (f *SearchField) State() FieldState { return f.state }

// Text returns the visible text.
func (f *SearchField) Text() string { return f.text }

// Value returns the logical value (an IATA code after a selection).
func (f *SearchField) Value() string { return f.value }

// Focus opens the suggestion list for the current text and cancels any
// pending close.
func (f *SearchField) Focus() []domain.AirportRecord {
	f.blurToken = 0
	f.state = StateFocused
	return f.index.Search(f.text, f.limit)
}

// SetText updates the visible text, as on a keystroke. Any text change opens
// the suggestion list and cancels a pending close.
func (f *SearchField) SetText(text string) []domain.AirportRecord {
	f.text = text
	f.blurToken = 0
	f.state = StateFocused
	return f.index.Search(text, f.limit)
}

// Select applies a suggestion: the logical value becomes the record's IATA
// code, the text becomes the canonical display string, and the list closes
// immediately, invalidating any pending close.
func (f *SearchField) Select(rec domain.AirportRecord) {
	f.value = rec.IATA
	f.text = DisplayString(rec)
	f.blurToken = 0
	f.state = StateIdle
}

// Blur requests that the suggestion list close and returns a pending-close
// token. The caller completes the close later with CompleteBlur; interactions
// that should keep the list open (selecting, refocusing, pressing inside the
// list) invalidate the token in the meantime.
func (f *SearchField) Blur() int {
	f.tokenSeq++
	f.blurToken = f.tokenSeq
	return f.blurToken
}

// PointerDownInList reports a pointer press inside the suggestion list. It
// invalidates the pending close so the in-flight selection can complete.
func (f *SearchField) PointerDownInList() {
	f.blurToken = 0
}

// CompleteBlur closes the suggestion list if the token is still the live
// pending close. Stale or cancelled tokens are ignored.
func (f *SearchField) CompleteBlur(token int) {
	if token == 0 || token != f.blurToken {
		return
	}
	f.blurToken = 0
	f.state = StateIdle
}

// SetValue sets the logical value externally, as on a form reset. A value
// that resolves in the index renders the same canonical display string a
// selection would have produced; an unknown value renders empty text.
func (f *SearchField) SetValue(iata string) {
	f.value = iata
	if iata == "" {
		f.text = ""
		return
	}
	f.text = f.index.ResolveDisplay(iata)
}
