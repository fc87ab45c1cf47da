package layout

// Item is anything that can be placed on a wall.
type Item interface {
	ItemID() string
}

// ID is a bare identifier that satisfies Item.
type ID string

// ItemID returns the identifier itself.
func (id ID) ItemID() string { return string(id) }

// IDs converts identifiers to Items.
func IDs(ids ...string) []ID {
	out := make([]ID, len(ids))
	for i, id := range ids {
		out[i] = ID(id)
	}
	return out
}

// Placement is an item together with its wall position and sticker
// attributes.
type Placement[T Item] struct {
	Item     T      `json:"item"`
	Column   int    `json:"column"`
	Row      int    `json:"row"`
	Color    string `json:"color"`
	Rotation string `json:"rotation"`
}

// WallColumn is a column of placements.
type WallColumn[T Item] struct {
	Index      int            `json:"index"`
	Placements []Placement[T] `json:"placements"`
}

// Wall is a decorated column layout.
type Wall[T Item] struct {
	Columns []WallColumn[T] `json:"columns"`
}

// Len returns the total number of placements across all columns.
func (w Wall[T]) Len() int {
	var n int
	for _, c := range w.Columns {
		n += len(c.Placements)
	}
	return n
}

// Decorate distributes items across columnCount columns and assigns every
// item a colour from colors and a rotation from rotations.
//
// Arguments are validated before any work: a columnCount below 1 or an
// empty palette fails with errors.ErrCodeInvalidArgument and no wall is
// returned.
func Decorate[T Item](items []T, columnCount int, colors, rotations Palette) (Wall[T], error) {
	if err := checkCount("column count", columnCount); err != nil {
		return Wall[T]{}, err
	}
	if err := colors.Validate(); err != nil {
		return Wall[T]{}, err
	}
	if err := rotations.Validate(); err != nil {
		return Wall[T]{}, err
	}

	columns, err := Distribute(items, columnCount)
	if err != nil {
		return Wall[T]{}, err
	}

	wall := Wall[T]{Columns: make([]WallColumn[T], len(columns))}
	for i, col := range columns {
		placements := make([]Placement[T], len(col.Items))
		for row, item := range col.Items {
			sum := codePointSum(item.ItemID())
			placements[row] = Placement[T]{
				Item:     item,
				Column:   col.Index,
				Row:      row,
				Color:    colors[sum%uint64(len(colors))],
				Rotation: rotations[sum%uint64(len(rotations))],
			}
		}
		wall.Columns[i] = WallColumn[T]{Index: col.Index, Placements: placements}
	}
	return wall, nil
}

// Rebind returns w with every placed item replaced by the item in items
// that carries the same id. It reports false unless items holds exactly
// the placed ids.
func Rebind[T, U Item](w Wall[T], items []U) (Wall[U], bool) {
	if len(items) != w.Len() {
		return Wall[U]{}, false
	}
	byID := make(map[string]U, len(items))
	for _, it := range items {
		byID[it.ItemID()] = it
	}
	if len(byID) != len(items) {
		return Wall[U]{}, false
	}

	out := Wall[U]{Columns: make([]WallColumn[U], len(w.Columns))}
	for i, col := range w.Columns {
		placements := make([]Placement[U], len(col.Placements))
		for j, p := range col.Placements {
			it, ok := byID[p.Item.ItemID()]
			if !ok {
				return Wall[U]{}, false
			}
			placements[j] = Placement[U]{
				Item:     it,
				Column:   p.Column,
				Row:      p.Row,
				Color:    p.Color,
				Rotation: p.Rotation,
			}
		}
		out.Columns[i] = WallColumn[U]{Index: col.Index, Placements: placements}
	}
	return out, true
}
