package datastructure

import (
	"sort"

	"github.com/lintang-b-s/Frontierx/pkg/util"
)

// BlockQueueEntry is a (vertex, distance estimate) pair stored in the queue.
type BlockQueueEntry struct {
	key   Index
	value float64
}

func NewBlockQueueEntry(key Index, value float64) BlockQueueEntry {
	return BlockQueueEntry{key: key, value: value}
}

func (e BlockQueueEntry) GetKey() Index {
	return e.key
}

func (e BlockQueueEntry) GetValue() float64 {
	return e.value
}

// qBlock holds at most M entries in ascending value order. upperBound is
// meaningful for D1 blocks only: every value in the block is <= upperBound.
type qBlock struct {
	elements   []BlockQueueEntry
	upperBound float64
}

func newQBlock(bound float64) *qBlock {
	return &qBlock{
		elements:   make([]BlockQueueEntry, 0),
		upperBound: bound,
	}
}

func (b *qBlock) empty() bool {
	return len(b.elements) == 0
}

func (b *qBlock) size() int {
	return len(b.elements)
}

func (b *qBlock) minValue() float64 {
	return b.elements[0].value
}

// BlockQueue is the bounded block-partitioned priority structure that drives
// the bounded multi-source shortest path main loop. It keeps two block
// sequences: D0 receives batch-prepended runs that are globally smaller than
// everything else in the queue, D1 receives ad-hoc inserts routed by value
// range. For every key only the smallest not-yet-pulled value is live.
//
// An insert that improves a key whose older entry sits in another block
// leaves that entry behind as a stale shadow; keyMin is the liveness oracle
// and Pull discards shadows when it reaches them. The live entry of a key
// always precedes its shadows in pull order, because smaller values land in
// earlier blocks.
//
// Insert is amortized O(max(1, log(N/M))), BatchPrepend amortized
// O(|L| max(1, log(|L|/M))), Pull amortized O(M).
type BlockQueue struct {
	m int     // max entries per block
	b float64 // global upper bound, values >= b are rejected

	d0 []*qBlock // front at index 0, globally value ordered
	d1 []*qBlock // strictly increasing upper bounds; binary searched on insert

	keyMin map[Index]float64 // smallest value currently live per key
}

// NewBlockQueue creates a queue accepting values < b with block capacity m.
// D1 starts with one empty block bounded by b so every accepted value has a
// target block.
func NewBlockQueue(m int, b float64) *BlockQueue {
	q := &BlockQueue{
		m:      util.Max(1, m),
		b:      b,
		d0:     make([]*qBlock, 0),
		d1:     make([]*qBlock, 0, 8),
		keyMin: make(map[Index]float64),
	}
	q.d1 = append(q.d1, newQBlock(b))
	return q
}

func (q *BlockQueue) IsEmpty() bool {
	return len(q.keyMin) == 0
}

// Size is the number of live entries, one per key present.
func (q *BlockQueue) Size() int {
	return len(q.keyMin)
}

func (q *BlockQueue) GetM() int {
	return q.m
}

func (q *BlockQueue) GetB() float64 {
	return q.b
}

func (q *BlockQueue) NumD0Blocks() int {
	return len(q.d0)
}

func (q *BlockQueue) NumD1Blocks() int {
	return len(q.d1)
}

// updateKeyTracking records value as the new minimum for key. Reports false
// when the key already holds an equal or smaller value.
func (q *BlockQueue) updateKeyTracking(key Index, value float64) bool {
	old, ok := q.keyMin[key]
	if !ok || value < old {
		q.keyMin[key] = value
		return true
	}
	return false
}

// live reports whether the entry is the current minimum of its key.
func (q *BlockQueue) live(kv BlockQueueEntry) bool {
	cur, ok := q.keyMin[kv.key]
	return ok && cur == kv.value
}

// findD1Block returns the position of the first D1 block whose upper bound
// is >= value. Upper bounds are strictly increasing with position, so the
// ordered-map lookup is a binary search over the block sequence.
func (q *BlockQueue) findD1Block(value float64) int {
	return sort.Search(len(q.d1), func(i int) bool {
		return q.d1[i].upperBound >= value
	})
}

// Insert adds (key, value) to D1. Values >= b are rejected, and inserts that
// do not improve the key's recorded minimum are no-ops.
func (q *BlockQueue) Insert(key Index, value float64) {
	if value >= q.b {
		return
	}
	if !q.updateKeyTracking(key, value) {
		return
	}

	pos := q.findD1Block(value)
	if pos >= len(q.d1) {
		// every D1 block was fully consumed by pulls; re-establish the
		// catch-all block bounded by b
		q.d1 = append(q.d1, newQBlock(q.b))
		pos = len(q.d1) - 1
	}
	blk := q.d1[pos]

	// drop a superseded occurrence of the key in the target block; shadows
	// in other blocks are discarded lazily by Pull
	for i := range blk.elements {
		if blk.elements[i].key == key {
			blk.elements = append(blk.elements[:i], blk.elements[i+1:]...)
			break
		}
	}

	at := sort.Search(len(blk.elements), func(i int) bool {
		return blk.elements[i].value >= value
	})
	blk.elements = append(blk.elements, BlockQueueEntry{})
	copy(blk.elements[at+1:], blk.elements[at:])
	blk.elements[at] = NewBlockQueueEntry(key, value)

	if blk.size() > q.m {
		q.splitD1Block(pos)
	}
}

// splitD1Block splits an overfull block around its median. The lower half
// keeps the position with its upper bound tightened to the minimum of the
// upper half; the upper half takes over the old bound right after it.
func (q *BlockQueue) splitD1Block(pos int) {
	blk := q.d1[pos]
	if blk.size() <= q.m {
		return
	}

	mid := blk.size() / 2
	upper := newQBlock(blk.upperBound)
	upper.elements = append(upper.elements, blk.elements[mid:]...)
	blk.elements = blk.elements[:mid]
	blk.upperBound = upper.minValue()

	q.d1 = append(q.d1, nil)
	copy(q.d1[pos+2:], q.d1[pos+1:])
	q.d1[pos+1] = upper
}

// BatchPrepend inserts a run of entries that are all strictly smaller than
// anything currently stored (the caller guarantees this). Entries are
// deduplicated per key, sorted, chunked into blocks of at most M, and pushed
// to the front of D0 preserving global value order.
func (q *BlockQueue) BatchPrepend(pairs []BlockQueueEntry) {
	if len(pairs) == 0 {
		return
	}

	minPerKey := make(map[Index]float64, len(pairs))
	for _, kv := range pairs {
		if kv.value >= q.b {
			continue
		}
		old, ok := minPerKey[kv.key]
		if !ok || kv.value < old {
			minPerKey[kv.key] = kv.value
		}
	}

	survivors := make([]BlockQueueEntry, 0, len(minPerKey))
	for key, value := range minPerKey {
		if q.updateKeyTracking(key, value) {
			survivors = append(survivors, NewBlockQueueEntry(key, value))
		}
	}
	if len(survivors) == 0 {
		return
	}

	sort.Slice(survivors, func(i, j int) bool {
		if survivors[i].value != survivors[j].value {
			return survivors[i].value < survivors[j].value
		}
		return survivors[i].key < survivors[j].key
	})

	numBlocks := (len(survivors) + q.m - 1) / q.m
	newBlocks := make([]*qBlock, 0, numBlocks)
	for i := 0; i < len(survivors); i += q.m {
		end := util.Min(i+q.m, len(survivors))
		blk := newQBlock(q.b)
		blk.elements = append(blk.elements, survivors[i:end]...)
		newBlocks = append(newBlocks, blk)
	}

	q.d0 = append(newBlocks, q.d0...)
}

// Pull removes the M smallest live entries, draining the front of D0 first
// and then the front of D1, and keeps draining past M while entries tie the
// last pulled value. That keeps the returned boundary strictly larger than
// every pulled value: a recursion bounded by it can still settle the pulled
// vertices. The boundary is b when nothing is left, otherwise the smallest
// value still at the front of the queue.
func (q *BlockQueue) Pull() ([]BlockQueueEntry, float64) {
	result := make([]BlockQueueEntry, 0, q.m)
	boundary := q.b

	if q.IsEmpty() {
		return result, boundary
	}

	q.drainFront(&result, &q.d0)
	q.drainFront(&result, &q.d1)

	if q.physicalRemains() {
		boundary = q.currentMin()
	}

	return result, boundary
}

// wants reports whether the drain should keep consuming an entry of this
// value: either the pull is not full yet, or the value ties the last pulled
// one and must not stay behind the boundary.
func (q *BlockQueue) wants(result []BlockQueueEntry, value float64) bool {
	if len(result) < q.m {
		return true
	}
	return value == result[len(result)-1].value
}

// drainFront consumes entries from the front of seq, discarding stale
// shadows on the way. Fully consumed blocks are dropped from the sequence
// (and with them their recorded upper bound).
func (q *BlockQueue) drainFront(result *[]BlockQueueEntry, seq *[]*qBlock) {
	consumed := 0
	for _, blk := range *seq {
		i := 0
		for i < len(blk.elements) && q.wants(*result, blk.elements[i].value) {
			kv := blk.elements[i]
			i++
			if q.live(kv) {
				*result = append(*result, kv)
				delete(q.keyMin, kv.key)
			}
		}

		if i == len(blk.elements) {
			consumed++
			continue
		}

		if i > 0 {
			blk.elements = blk.elements[i:]
		}
		break
	}

	if consumed > 0 {
		*seq = (*seq)[consumed:]
	}
}

func (q *BlockQueue) physicalRemains() bool {
	for _, blk := range q.d0 {
		if !blk.empty() {
			return true
		}
	}
	for _, blk := range q.d1 {
		if !blk.empty() {
			return true
		}
	}
	return false
}

// currentMin is the value at the front of the queue: the front of D0
// against the first non-empty D1 block. A stale front entry still yields a
// valid boundary, sandwiched between everything pulled and everything live.
func (q *BlockQueue) currentMin() float64 {
	min := q.b

	if len(q.d0) > 0 && !q.d0[0].empty() {
		if q.d0[0].minValue() < min {
			min = q.d0[0].minValue()
		}
	}
	for _, blk := range q.d1 {
		if !blk.empty() {
			if blk.minValue() < min {
				min = blk.minValue()
			}
			break
		}
	}
	return min
}
