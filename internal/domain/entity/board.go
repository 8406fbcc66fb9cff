package entity

// TowerCount is the number of pegs on the board
const TowerCount = 3

// NoTower marks the absence of a selected tower
const NoTower = -1

// Board holds the disc arrangement of the three towers.
//
// Discs are ranks where 0 is the smallest. Each tower is stored bottom to top
// and is always strictly decreasing, and the ranks across all towers are
// exactly 0..N-1.
type Board struct {
	towers [TowerCount][]int
}

// NewBoard creates a board with discs discs stacked on tower 0
func NewBoard(discs int) *Board {
	b := &Board{}
	b.stack(discs)
	return b
}

func (b *Board) stack(discs int) {
	first := make([]int, 0, discs)
	for d := discs - 1; d >= 0; d-- {
		first = append(first, d)
	}
	b.towers = [TowerCount][]int{first, {}, {}}
}

// CanMove reports whether the top disc of from may be placed on to
func (b *Board) CanMove(from, to int) bool {
	src, ok := b.Top(from)
	if !ok {
		return false
	}
	dst, ok := b.Top(to)
	if !ok {
		return true
	}
	return src < dst
}

// MoveDisc moves the top disc of from onto to without checking legality.
// Callers validate with CanMove first; an empty source panics.
func (b *Board) MoveDisc(from, to int) {
	src := b.towers[from]
	if len(src) == 0 {
		panic("entity: move from empty tower")
	}
	disc := src[len(src)-1]
	b.towers[from] = src[:len(src)-1]
	b.towers[to] = append(b.towers[to], disc)
}

// IsComplete reports whether every disc has reached the last tower
func (b *Board) IsComplete() bool {
	return len(b.towers[0]) == 0 && len(b.towers[1]) == 0
}

// Reset restacks every disc currently on the board onto tower 0.
// The disc count comes from the board itself, not from settings.
func (b *Board) Reset() {
	b.stack(b.DiscCount())
}

// DiscCount returns the total number of discs on all towers
func (b *Board) DiscCount() int {
	n := 0
	for _, t := range b.towers {
		n += len(t)
	}
	return n
}

// Top returns the top disc of tower i
func (b *Board) Top(i int) (int, bool) {
	t := b.towers[i]
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Height returns the number of discs on tower i
func (b *Board) Height(i int) int {
	return len(b.towers[i])
}

// Tower returns a copy of tower i, bottom to top
func (b *Board) Tower(i int) []int {
	return append([]int{}, b.towers[i]...)
}

// Towers returns copies of all three towers
func (b *Board) Towers() [TowerCount][]int {
	var out [TowerCount][]int
	for i := range b.towers {
		out[i] = b.Tower(i)
	}
	return out
}
