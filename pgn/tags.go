package pgn

import "golang.org/x/exp/maps"

// RequiredTags are the seven mandatory Seven Tag Roster keys, per spec.md
// §3 PGN.Tag/PGN.TagPair, grounded on
// internal/chess/tags.go's split between the roster and free-form extras.
var RequiredTags = [7]string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// TagPairs is an ordered key->value map: insertion order is preserved so
// that unknown tags round-trip in the position they appeared, matching
// spec.md §3's "unknown tags are preserved".
type TagPairs struct {
	order  []string
	values map[string]string
}

// NewTagPairs returns an empty ordered tag-pair set.
func NewTagPairs() *TagPairs {
	return &TagPairs{values: make(map[string]string)}
}

// Set assigns key=value, appending key to the order if it is new.
func (t *TagPairs) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.order = append(t.order, key)
	}
	t.values[key] = value
}

// Get returns the value for key and whether it was present.
func (t *TagPairs) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns every tag key in insertion order.
func (t *TagPairs) Keys() []string {
	return append([]string(nil), t.order...)
}

// MissingRequired returns every Seven Tag Roster key absent from t.
func (t *TagPairs) MissingRequired() []string {
	var missing []string
	for _, key := range RequiredTags {
		if _, ok := t.values[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Clone returns a deep copy of t, using x/exp/maps.Copy the way
// mway1-chess__pgn.go copies its comment-command maps.
func (t *TagPairs) Clone() *TagPairs {
	clone := &TagPairs{
		order:  append([]string(nil), t.order...),
		values: make(map[string]string, len(t.values)),
	}
	maps.Copy(clone.values, t.values)
	return clone
}
