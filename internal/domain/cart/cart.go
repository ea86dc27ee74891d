package cart

import "errors"

var (
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrDuplicateItemID = errors.New("duplicate cart item id")
)

// Line is one cart row as the backend reports it. Lines the user has not
// checked off stay in the cart but take no part in checkout totals.
type Line struct {
	ItemID    int64
	ProductID string
	Size      string
	UnitPrice int64
	Quantity  int
	Selected  bool
}

type Cart struct {
	lines []Line
}

func NewCart(lines []Line) (*Cart, error) {
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if line.UnitPrice < 0 {
			return nil, ErrNegativePrice
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, dup := seen[line.ItemID]; dup {
			return nil, ErrDuplicateItemID
		}
		seen[line.ItemID] = struct{}{}
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)
	return &Cart{lines: copied}, nil
}

// Subtotal sums quantity times unit price over selected lines only.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.lines {
		if line.Selected {
			total += int64(line.Quantity) * line.UnitPrice
		}
	}
	return total
}

// SelectedItemIDs returns the ids of checked-off lines in cart order.
func (c *Cart) SelectedItemIDs() []int64 {
	ids := make([]int64, 0, len(c.lines))
	for _, line := range c.lines {
		if line.Selected {
			ids = append(ids, line.ItemID)
		}
	}
	return ids
}

func (c *Cart) HasSelection() bool {
	for _, line := range c.lines {
		if line.Selected {
			return true
		}
	}
	return false
}

func (c *Cart) Lines() []Line {
	copied := make([]Line, len(c.lines))
	copy(copied, c.lines)
	return copied
}
