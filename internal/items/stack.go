package items

// Stack is a quantity of a single item type.
type Stack struct {
	Item  ItemType `json:"item"`
	Count int      `json:"count"`
}

// Empty is the zero stack.
var Empty = Stack{}

// NewStack creates a stack of the given item and count.
func NewStack(item ItemType, count int) Stack {
	if count <= 0 {
		return Empty
	}
	return Stack{Item: item, Count: count}
}

// IsEmpty reports whether the stack holds nothing.
func (s Stack) IsEmpty() bool {
	return s.Item == ItemNone || s.Count <= 0
}

// Split removes up to n items from the stack and returns them as a new
// stack. The receiver is mutated in place.
func (s *Stack) Split(n int) Stack {
	if s.IsEmpty() || n <= 0 {
		return Empty
	}
	if n > s.Count {
		n = s.Count
	}
	out := Stack{Item: s.Item, Count: n}
	s.Count -= n
	if s.Count == 0 {
		*s = Empty
	}
	return out
}
