package schema

import "strings"

// NormalizeKey canonicalizes an issue key: leading/trailing whitespace is
// trimmed and the result is uppercased, so that case or whitespace noise
// across exports does not cause join misses. Empty input stays empty.
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// SplitReferences splits a multi-valued reference field on runs of comma or
// semicolon characters, normalizes each token and drops empty ones. The
// returned slice preserves source order and keeps duplicate tokens; callers
// deduplicate later, at aggregation time.
func SplitReferences(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		if key := NormalizeKey(f); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// DedupInOrder returns values with empty strings removed and duplicates
// collapsed to their first occurrence, preserving insertion order.
func DedupInOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// TrackerIndex maps normalized issue keys to their attributes while
// remembering first-seen key order, so report rows come out in the order the
// tracker export listed them. Duplicate keys overwrite attributes in place
// (last occurrence wins) without moving the key.
type TrackerIndex struct {
	keys   []string
	issues map[string]TrackedIssue
}

// NewTrackerIndex returns an empty index.
func NewTrackerIndex() *TrackerIndex {
	return &TrackerIndex{issues: make(map[string]TrackedIssue)}
}

// Put inserts or overwrites the issue under its (already normalized) key.
// Issues with an empty key are ignored.
func (ix *TrackerIndex) Put(issue TrackedIssue) {
	if issue.Key == "" {
		return
	}
	if _, ok := ix.issues[issue.Key]; !ok {
		ix.keys = append(ix.keys, issue.Key)
	}
	ix.issues[issue.Key] = issue
}

// Get returns the issue stored under key, if any.
func (ix *TrackerIndex) Get(key string) (TrackedIssue, bool) {
	issue, ok := ix.issues[key]
	return issue, ok
}

// Keys returns the index keys in first-seen order.
func (ix *TrackerIndex) Keys() []string {
	return ix.keys
}

// Len returns the number of distinct keys in the index.
func (ix *TrackerIndex) Len() int {
	return len(ix.keys)
}
