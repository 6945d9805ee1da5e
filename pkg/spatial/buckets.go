// Package spatial provides a uniform-grid broad phase.
package spatial

import "math"

type cellKey struct {
	col, row int
}

// Buckets maps grid cells to the items whose bounding boxes overlap them.
// Query results are deduplicated and returned in first-encounter order,
// scanning cells column by column, so results are deterministic.
type Buckets[T comparable] struct {
	cellSize float64
	cells    map[cellKey][]T
}

func New[T comparable](cellSize float64) *Buckets[T] {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Buckets[T]{cellSize: cellSize, cells: make(map[cellKey][]T)}
}

// Clear drops every item.
func (b *Buckets[T]) Clear() {
	clear(b.cells)
}

// Empty reports whether no cell holds an item.
func (b *Buckets[T]) Empty() bool {
	return len(b.cells) == 0
}

// Cells returns the number of occupied cells.
func (b *Buckets[T]) Cells() int {
	return len(b.cells)
}

func (b *Buckets[T]) span(x, y, half float64) (minCol, maxCol, minRow, maxRow int) {
	minCol = int(math.Floor((x - half) / b.cellSize))
	maxCol = int(math.Floor((x + half) / b.cellSize))
	minRow = int(math.Floor((y - half) / b.cellSize))
	maxRow = int(math.Floor((y + half) / b.cellSize))
	return
}

// Insert adds item to every cell its box (x±half, y±half) overlaps.
func (b *Buckets[T]) Insert(item T, x, y, half float64) {
	minCol, maxCol, minRow, maxRow := b.span(x, y, half)
	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			k := cellKey{col, row}
			b.cells[k] = append(b.cells[k], item)
		}
	}
}

// Query returns every item sharing a cell with the box (x±half, y±half).
func (b *Buckets[T]) Query(x, y, half float64) []T {
	minCol, maxCol, minRow, maxRow := b.span(x, y, half)
	var out []T
	seen := make(map[T]struct{})
	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			for _, item := range b.cells[cellKey{col, row}] {
				if _, dup := seen[item]; dup {
					continue
				}
				seen[item] = struct{}{}
				out = append(out, item)
			}
		}
	}
	return out
}
