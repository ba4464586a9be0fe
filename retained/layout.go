package retained

import "github.com/chewxy/math32"

// wrapTolerance absorbs float error when testing whether an item still
// fits on a row or whether rows overflow.
const wrapTolerance = 1e-4

// Item is one visible child as a layout sees it.
type Item struct {
	Size   Vec2
	Margin Sides
}

// Arrangement is the result of a layout pass. Positions are top-left
// corners relative to the interior origin, y down. Natural is the extent
// the items need; it is zero when there are no items.
type Arrangement struct {
	Positions []Vec2
	Natural   Vec2
}

// Layout places the visible children of a container. Overflow is not
// clamped: items may extend past the interior.
type Layout interface {
	Arrange(interior Vec2, items []Item) Arrangement
}

// leading and trailing side indices along an axis.
func axisSides(axis int) (lead, trail int) {
	if axis == 0 {
		return Left, Right
	}
	return Top, Bottom
}

// alignCross places an item on the axis it is not stacked along.
func alignCross(align Align, space float32, it Item, axis int) float32 {
	lead, trail := axisSides(axis)
	switch align {
	case AlignEnd:
		return space - it.Size[axis] - it.Margin[trail]
	case AlignCenter:
		return (space - it.Size[axis]) / 2
	}
	return it.Margin[lead]
}

// ============================================================================
// HBox / VBox
// ============================================================================

// HBox stacks items left to right. The gap between two items is the
// larger of the earlier item's right margin and the later item's left
// margin.
type HBox struct {
	HAlign Align
	VAlign Align
	// FixedWidths gives explicit slot widths as fractions of the interior
	// width. Items past the end of the list use their natural width.
	FixedWidths []float32
	// ItemAligns aligns items inside their fixed slots. A list shorter
	// than the slots repeats.
	ItemAligns []Align
	// DropBorderMargins ignores the first item's leading margin and the
	// last item's trailing margin.
	DropBorderMargins bool
}

// Arrange implements Layout.
func (h *HBox) Arrange(interior Vec2, items []Item) Arrangement {
	return boxArrange(0, interior, items, h.HAlign, h.VAlign, h.FixedWidths, h.ItemAligns, !h.DropBorderMargins)
}

// VBox stacks items top to bottom, with the same margin collapsing as HBox.
type VBox struct {
	VAlign Align
	HAlign Align
	// FixedHeights gives explicit slot heights as fractions of the
	// interior height.
	FixedHeights []float32
	ItemAligns   []Align
	// DropBorderMargins ignores the first item's top margin and the last
	// item's bottom margin.
	DropBorderMargins bool
}

// Arrange implements Layout.
func (v *VBox) Arrange(interior Vec2, items []Item) Arrangement {
	return boxArrange(1, interior, items, v.VAlign, v.HAlign, v.FixedHeights, v.ItemAligns, !v.DropBorderMargins)
}

// mainRun computes the gap in front of each item and the total extent
// along axis, collapsing adjacent margins.
func mainRun(axis int, items []Item, borders bool) ([]float32, float32) {
	lead, trail := axisSides(axis)
	gaps := make([]float32, len(items))
	var total, prevTrail float32
	for i, it := range items {
		switch {
		case i > 0:
			gaps[i] = math32.Max(prevTrail, it.Margin[lead])
		case borders:
			gaps[i] = it.Margin[lead]
		}
		total += gaps[i] + it.Size[axis]
		prevTrail = it.Margin[trail]
	}
	if borders && len(items) > 0 {
		total += prevTrail
	}
	return gaps, total
}

func boxArrange(axis int, interior Vec2, items []Item, mainAlign, crossAlign Align, fixed []float32, itemAligns []Align, borders bool) Arrangement {
	if len(items) == 0 {
		return Arrangement{}
	}
	cross := 1 - axis
	lead, trail := axisSides(axis)
	gaps, total := mainRun(axis, items, borders)

	var cursor, spacing float32
	if len(fixed) == 0 {
		leftover := interior[axis] - total
		switch mainAlign {
		case AlignEnd:
			cursor = leftover
		case AlignCenter:
			cursor = leftover / 2
		case AlignJustify:
			if len(items) > 1 {
				spacing = leftover / float32(len(items)-1)
			}
		}
	}

	positions := make([]Vec2, len(items))
	var crossExtent, fixedTotal float32
	for i, it := range items {
		var p Vec2
		if i < len(fixed) {
			slot := fixed[i] * interior[axis]
			align := AlignStart
			if len(itemAligns) > 0 {
				align = itemAligns[i%len(itemAligns)]
			}
			switch align {
			case AlignEnd:
				p[axis] = cursor + slot - it.Size[axis] - it.Margin[trail]
			case AlignCenter:
				p[axis] = cursor + (slot-it.Size[axis])/2
			default:
				p[axis] = cursor + it.Margin[lead]
			}
			cursor += slot
			fixedTotal += slot
		} else {
			p[axis] = cursor + gaps[i]
			cursor = p[axis] + it.Size[axis] + spacing
		}
		p[cross] = alignCross(crossAlign, interior[cross], it, cross)
		positions[i] = p

		cl, ct := axisSides(cross)
		crossExtent = math32.Max(crossExtent, it.Size[cross]+it.Margin[cl]+it.Margin[ct])
	}

	var natural Vec2
	natural[axis] = total
	if len(fixed) > 0 {
		natural[axis] = math32.Max(total, fixedTotal)
	}
	natural[cross] = crossExtent
	return Arrangement{Positions: positions, Natural: natural}
}

// ============================================================================
// ListWrap
// ============================================================================

// ListWrap flows items left to right and wraps to a new row when the next
// item's right edge would pass the interior width. Each row is as tall as
// its tallest item including margins.
//
// ListWrap remembers the row count and overflow state of its last pass.
type ListWrap struct {
	HAlign Align
	// LastLineAlign aligns the last row when there is more than one.
	LastLineAlign Align
	// SingleLineAlign aligns the only row when nothing wrapped.
	SingleLineAlign Align
	// UnifySpacing gives a non-justified last row the same item spacing
	// as the justified rows above it.
	UnifySpacing bool

	rows       int
	rowHeights []float32
	full       bool
}

type wrapRow struct {
	start, end int
	width      float32
	height     float32
}

// Arrange implements Layout.
func (l *ListWrap) Arrange(interior Vec2, items []Item) Arrangement {
	l.rows, l.rowHeights, l.full = 0, l.rowHeights[:0], false
	if len(items) == 0 {
		return Arrangement{}
	}

	positions := make([]Vec2, len(items))
	var rows []wrapRow
	var x, y, height, prevTrail float32
	start := 0
	for i, it := range items {
		gap := it.Margin[Left]
		if i > start {
			gap = math32.Max(prevTrail, it.Margin[Left])
		}
		right := x + gap + it.Size[0]
		if i > start && right-wrapTolerance > interior[0] {
			rows = append(rows, wrapRow{start: start, end: i, width: x + prevTrail, height: height})
			y += height
			start, x, height = i, 0, 0
			gap = it.Margin[Left]
			right = gap + it.Size[0]
		}
		positions[i] = Vec2{x + gap, y + it.Margin[Top]}
		x = right
		prevTrail = it.Margin[Right]
		height = math32.Max(height, it.Size[1]+it.Margin.Vertical())
	}
	rows = append(rows, wrapRow{start: start, end: len(items), width: x + prevTrail, height: height})

	var justified float32
	var natural Vec2
	for r, row := range rows {
		align := l.HAlign
		last := r == len(rows)-1
		switch {
		case len(rows) == 1:
			align = l.SingleLineAlign
		case last:
			align = l.LastLineAlign
		}

		leftover := interior[0] - row.width
		count := row.end - row.start
		var offset, spacing float32
		switch align {
		case AlignEnd:
			offset = leftover
		case AlignCenter:
			offset = leftover / 2
		case AlignJustify:
			if count > 1 {
				spacing = leftover / float32(count-1)
				justified = spacing
			}
		}
		if last && l.UnifySpacing && align != AlignJustify && len(rows) > 1 {
			spacing = justified
			offset -= justified * float32(count-1) * alignShare(align)
		}
		for j := 0; j < count; j++ {
			positions[row.start+j][0] += offset + spacing*float32(j)
		}

		l.rowHeights = append(l.rowHeights, row.height)
		natural[0] = math32.Max(natural[0], row.width)
		natural[1] += row.height
	}

	l.rows = len(rows)
	l.full = natural[1]-wrapTolerance > interior[1]
	return Arrangement{Positions: positions, Natural: natural}
}

// alignShare is how much of the added spacing an alignment pushes back
// toward the start edge to stay aligned.
func alignShare(a Align) float32 {
	switch a {
	case AlignEnd:
		return 1
	case AlignCenter:
		return 0.5
	}
	return 0
}

func (l *ListWrap) placementLayout() Layout {
	return &ListWrap{
		HAlign:          l.HAlign,
		LastLineAlign:   l.LastLineAlign,
		SingleLineAlign: l.SingleLineAlign,
		UnifySpacing:    l.UnifySpacing,
	}
}

// IsFull reports whether the rows of the last pass were taller than the
// interior.
func (l *ListWrap) IsFull() bool { return l.full }

// RowCount returns the number of rows of the last pass.
func (l *ListWrap) RowCount() int { return l.rows }

// FullRowCount returns the number of rows that were closed by wrapping.
func (l *ListWrap) FullRowCount() int { return max(l.rows-1, 0) }

// RowHeights returns the row heights of the last pass.
func (l *ListWrap) RowHeights() []float32 { return append([]float32(nil), l.rowHeights...) }

// ============================================================================
// Overlapping
// ============================================================================

// Overlapping aligns every item independently in the same region.
type Overlapping struct {
	HAlign Align
	VAlign Align
}

// Arrange implements Layout.
func (o *Overlapping) Arrange(interior Vec2, items []Item) Arrangement {
	if len(items) == 0 {
		return Arrangement{}
	}
	positions := make([]Vec2, len(items))
	var natural Vec2
	for i, it := range items {
		positions[i] = Vec2{
			alignCross(o.HAlign, interior[0], it, 0),
			alignCross(o.VAlign, interior[1], it, 1),
		}
		natural = natural.Max(it.Size.Add(it.Margin.Total()))
	}
	return Arrangement{Positions: positions, Natural: natural}
}

// ============================================================================
// ColGrid
// ============================================================================

// DefaultColumns is the ColGrid column count when Columns is zero.
const DefaultColumns = 2

// ColGrid fills a fixed number of columns row by row. Each row is as tall
// as its tallest item.
type ColGrid struct {
	Columns int
	// ColumnWidths are absolute widths. Columns past the end of the list,
	// or all columns when it is empty, take the width of their widest item.
	ColumnWidths  []float32
	ColumnPadding float32
	RowPadding    float32
}

// Arrange implements Layout.
func (g *ColGrid) Arrange(interior Vec2, items []Item) Arrangement {
	if len(items) == 0 {
		return Arrangement{}
	}
	cols := g.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	rows := (len(items) + cols - 1) / cols

	widths := make([]float32, cols)
	heights := make([]float32, rows)
	for i, it := range items {
		r, c := i/cols, i%cols
		heights[r] = math32.Max(heights[r], it.Size[1])
		if c >= len(g.ColumnWidths) {
			widths[c] = math32.Max(widths[c], it.Size[0])
		}
	}
	copy(widths, g.ColumnWidths)

	positions := make([]Vec2, len(items))
	for i := range items {
		r, c := i/cols, i%cols
		var x, y float32
		for _, w := range widths[:c] {
			x += w
		}
		for _, h := range heights[:r] {
			y += h
		}
		positions[i] = Vec2{x + g.ColumnPadding*float32(c), y + g.RowPadding*float32(r)}
	}

	var natural Vec2
	for _, w := range widths {
		natural[0] += w
	}
	for _, h := range heights {
		natural[1] += h
	}
	natural[0] += g.ColumnPadding * float32(cols-1)
	natural[1] += g.RowPadding * float32(rows-1)
	return Arrangement{Positions: positions, Natural: natural}
}
