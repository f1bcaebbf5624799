// Package crawl retrieves source specification documents from their
// canonical host. Retrieval is a bounded sequential loop with a fixed
// inter-request delay; the document set is small and static, so there is
// no worker pool.
package crawl

// Queue is a FIFO of source filenames with deduplication.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{seen: make(map[string]bool)}
}

// Add enqueues a filename if it hasn't been seen before.
func (q *Queue) Add(name string) {
	if q.seen[name] {
		return
	}
	q.seen[name] = true
	q.items = append(q.items, name)
}

// HasNext returns true if there are unprocessed filenames.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed filename and advances the pointer.
func (q *Queue) Next() string {
	name := q.items[q.idx]
	q.idx++
	return name
}

// Len returns the total number of unique filenames queued.
func (q *Queue) Len() int {
	return len(q.items)
}
