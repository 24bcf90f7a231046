package datastruct

// LinkedList is a doubly linked list.
// Its elements can be addressed in place through Front and Element.Next,
// which is what lets a list be borrowed by reference instead of drained.
type LinkedList[T any] struct {
	head   *Element[T]
	tail   *Element[T]
	length int
}

// Element is a node of a LinkedList.
type Element[T any] struct {
	Value T

	prev *Element[T]
	next *Element[T]
}

// Next returns the following element, or nil at the end of the list.
func (e *Element[T]) Next() *Element[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// Front returns the first element of the list, or nil when the list is empty.
func (ll *LinkedList[T]) Front() *Element[T] {
	if ll == nil {
		return nil
	}
	return ll.head
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &Element[T]{Value: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Length returns the number of elements in the list
func (ll *LinkedList[T]) Length() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Take moves every element into a new list and leaves the receiver empty.
func (ll *LinkedList[T]) Take() *LinkedList[T] {
	if ll == nil {
		return &LinkedList[T]{}
	}
	taken := &LinkedList[T]{head: ll.head, tail: ll.tail, length: ll.length}
	*ll = LinkedList[T]{}
	return taken
}

// Shift unlinks the first element and returns its value.
// The value is cleared from the unlinked node.
func (ll *LinkedList[T]) Shift() (T, bool) {
	var zero T
	if ll == nil || ll.head == nil {
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	} else {
		ll.tail = nil
	}
	v := first.Value
	first.Value, first.next = zero, nil
	ll.length--
	return v, true
}
