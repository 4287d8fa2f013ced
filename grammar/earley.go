package grammar

import "fmt"

// itemRef locates an Earley item inside the parser's arena: the input
// position its item set belongs to, and its index within that set's slice.
// Using (position, index) pairs instead of pointers keeps every back-pointer
// acyclic (a back-pointer always references an earlier-or-same position) and
// needs no garbage collector cooperation to walk.
type itemRef struct {
	pos int
	idx int
}

// item is a single Earley item `(lhs, rhs, dot, origin)` plus the two
// back-pointers needed to reconstruct a parse tree once the item is
// complete: the predecessor that advanced the dot over the most recently
// consumed symbol, and — if that symbol was a non-terminal — the completed
// item that produced it.
type item struct {
	lhs     string
	prodIdx int
	dot     int
	origin  int

	hasPrev    bool
	prev       itemRef
	hasChild   bool
	childOfRef itemRef
}

func (g *Grammar) rhs(it item) Production {
	return g.Rules[it.lhs][it.prodIdx]
}

// itemKey is the deduplication key for an item set: items are deduplicated
// by (lhs, rhs, dot, origin); since rhs is determined by (lhs, prodIdx) this
// reduces to the four fields below.
type itemKey struct {
	lhs     string
	prodIdx int
	dot     int
	origin  int
}

// arena holds one Earley driver run: a flat item slice and a dedup index
// per input position.
type arena struct {
	sets []([]item)
	seen []map[itemKey]int
}

func newArena(n int) *arena {
	a := &arena{
		sets: make([][]item, n+1),
		seen: make([]map[itemKey]int, n+1),
	}
	for i := range a.seen {
		a.seen[i] = make(map[itemKey]int)
	}
	return a
}

// insert adds it to position pos if not already present, returning its
// itemRef either way. The back-pointers carried in it are stored only on
// first insertion; inserting an item whose key is already present leaves
// the stored item and its back-pointers unchanged.
func (a *arena) insert(pos int, it item) (ref itemRef, isNew bool) {
	key := itemKey{lhs: it.lhs, prodIdx: it.prodIdx, dot: it.dot, origin: it.origin}
	if idx, ok := a.seen[pos][key]; ok {
		return itemRef{pos: pos, idx: idx}, false
	}
	idx := len(a.sets[pos])
	a.sets[pos] = append(a.sets[pos], it)
	a.seen[pos][key] = idx
	return itemRef{pos: pos, idx: idx}, true
}

func (a *arena) get(ref itemRef) item {
	return a.sets[ref.pos][ref.idx]
}

func (a *arena) set(ref itemRef, it item) {
	a.sets[ref.pos][ref.idx] = it
}

// Parse runs the Earley recognizer over input against g and, if input is
// admitted by the language rooted at g.Start, returns a collapsed parse
// tree. If input is not admissible, ok is false.
func Parse(g *Grammar, input []byte) (tree *Node, ok bool) {
	n := len(input)
	a := newArena(n)

	// Initialization: every production of the start symbol at position 0,
	// origin 0.
	for i := range g.productions(g.Start) {
		a.insert(0, item{lhs: g.Start, prodIdx: i, dot: 0, origin: 0})
	}

	for pos := 0; pos <= n; pos++ {
		// Process the work queue at this position to a fixpoint: predict
		// and complete can both add further items to the same position.
		for i := 0; i < len(a.sets[pos]); i++ {
			it := a.sets[pos][i]
			rhs := g.rhs(it)
			if it.dot == len(rhs) {
				completeAt(g, a, pos, it)
				continue
			}
			next := rhs[it.dot]
			if !next.IsTerminal() {
				predictAt(g, a, pos, next.NonTerminal)
			}
			// Terminal dot-symbols are handled by the scan pass below,
			// once this position's set has stopped growing.
		}

		if pos == n {
			break
		}
		scanAt(g, a, pos, input[pos])
	}

	// Find a completed start-symbol item spanning (0, n) in the final set.
	for idx, it := range a.sets[n] {
		if it.lhs == g.Start && it.origin == 0 && it.dot == len(g.rhs(it)) {
			ref := itemRef{pos: n, idx: idx}
			return collapse(buildTree(g, a, ref)), true
		}
	}
	return nil, false
}

// predictAt inserts every production of name at pos with origin pos.
// Predicted items have no back-pointer: the dot has not advanced over
// anything yet.
func predictAt(g *Grammar, a *arena, pos int, name string) {
	for i := range g.productions(name) {
		a.insert(pos, item{lhs: name, prodIdx: i, dot: 0, origin: pos})
	}
}

// scanAt advances every item at pos whose dot is before a terminal matching
// c, inserting the advanced item at pos+1 with a back-pointer to the
// pre-advance item.
func scanAt(g *Grammar, a *arena, pos int, c byte) {
	for idx, it := range a.sets[pos] {
		rhs := g.rhs(it)
		if it.dot >= len(rhs) {
			continue
		}
		sym := rhs[it.dot]
		if !sym.IsTerminal() || sym.Terminal != c {
			continue
		}
		from := itemRef{pos: pos, idx: idx}
		a.insert(pos+1, item{
			lhs: it.lhs, prodIdx: it.prodIdx, dot: it.dot + 1, origin: it.origin,
			hasPrev: true, prev: from, hasChild: false,
		})
	}
}

// completeAt handles a completed item `it` at position pos: for every item
// in the set at it.origin whose dot is before a non-terminal matching
// it.lhs, advance that item's dot and insert it at pos, recording both
// back-pointers.
func completeAt(g *Grammar, a *arena, pos int, it item) {
	completedRef := findRef(a, pos, it)
	for idx, cand := range a.sets[it.origin] {
		rhs := g.rhs(cand)
		if cand.dot >= len(rhs) {
			continue
		}
		sym := rhs[cand.dot]
		if sym.IsTerminal() || sym.NonTerminal != it.lhs {
			continue
		}
		from := itemRef{pos: it.origin, idx: idx}
		a.insert(pos, item{
			lhs: cand.lhs, prodIdx: cand.prodIdx, dot: cand.dot + 1, origin: cand.origin,
			hasPrev: true, prev: from, hasChild: true, childOfRef: completedRef,
		})
	}
}

// findRef locates it's index within a.sets[pos] by identity of its key.
// Completed items are always already present (complete is only invoked on
// items taken from the set itself), so this always succeeds.
func findRef(a *arena, pos int, it item) itemRef {
	key := itemKey{lhs: it.lhs, prodIdx: it.prodIdx, dot: it.dot, origin: it.origin}
	idx, ok := a.seen[pos][key]
	if !ok {
		panic(fmt.Sprintf("grammar: completed item %+v missing from its own set", it))
	}
	return itemRef{pos: pos, idx: idx}
}

// buildTree reconstructs the parse tree rooted at the item referenced by
// ref by walking its back-pointer chain right-to-left over its right-hand
// side, prepending children so the result is emitted in source order.
func buildTree(g *Grammar, a *arena, ref itemRef) *Node {
	it := a.get(ref)
	rhs := g.rhs(it)
	children := make([]*Node, it.dot)

	cur := it
	curRef := ref
	for cur.dot > 0 {
		symIdx := cur.dot - 1
		sym := rhs[symIdx]
		var child *Node
		if sym.IsTerminal() {
			child = &Node{Terminal: true, Char: sym.Terminal}
		} else {
			child = buildTree(g, a, cur.childOfRef)
		}
		children[symIdx] = child

		if !cur.hasPrev {
			break
		}
		curRef = cur.prev
		cur = a.get(curRef)
	}

	return &Node{Name: it.lhs, Children: children}
}
