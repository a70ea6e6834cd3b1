package step

import "iter"

type ListNode struct {
	Value int
	Next  *ListNode
}

// List is a singly linked list. Search producers walk it through Next
// pointers only.
type List struct {
	Head *ListNode
	size int
}

func FromValues(vals []int) *List {
	l := &List{}
	for _, v := range vals {
		l.Append(v)
	}
	return l
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *List) Append(v int) {
	n := &ListNode{Value: v}
	l.size++
	if l.Head == nil {
		l.Head = n
		return
	}
	tail := l.Head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = n
}

// DeleteAt unlinks the i-th node.
func (l *List) DeleteAt(i int) error {
	if i < 0 || i >= l.Len() {
		return ErrInvalidIndex
	}
	l.size--
	if i == 0 {
		l.Head = l.Head.Next
		return nil
	}
	prev := l.Head
	for ; i > 1; i-- {
		prev = prev.Next
	}
	prev.Next = prev.Next.Next
	return nil
}

// All iterates over the nodes in link order.
func (l *List) All() iter.Seq[*ListNode] {
	return func(yield func(*ListNode) bool) {
		if l == nil {
			return
		}
		for n := l.Head; n != nil; n = n.Next {
			if !yield(n) {
				return
			}
		}
	}
}

func (l *List) Values() []int {
	vals := make([]int, 0, l.Len())
	for n := range l.All() {
		vals = append(vals, n.Value)
	}
	return vals
}

func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	return FromValues(l.Values())
}
