package pattern

// Dedup enforces at most one reported violation per stream position for
// the lifetime of one check instance. The set only grows; a new instance
// per file scan gives a fresh set.
type Dedup struct {
	seen map[int]struct{}
}

func NewDedup() *Dedup {
	return &Dedup{seen: make(map[int]struct{})}
}

// Mark records pos and reports whether it was new. The first caller wins;
// later violations at the same position are dropped without signal.
func (d *Dedup) Mark(pos int) bool {
	if _, ok := d.seen[pos]; ok {
		return false
	}
	d.seen[pos] = struct{}{}
	return true
}
