package utils

// Tally is an ephemeral key-to-count mapping. It is not safe for
// concurrent use.
type Tally map[string]int

// NewTally returns an empty Tally.
func NewTally() Tally {
	return make(Tally)
}

// Increment adds 1 to the count for key, starting from zero for keys
// not seen before.
func (t Tally) Increment(key string) {
	t[key]++
}

// Entry is one (key, count) pair produced by [Tally.Entries].
type Entry struct {
	Key   string
	Count int
}

// Entries returns all (key, count) pairs. Order follows the underlying
// map iteration order and is not stable between calls.
func (t Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for key, count := range t {
		entries = append(entries, Entry{Key: key, Count: count})
	}

	return entries
}
