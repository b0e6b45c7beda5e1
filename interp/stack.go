package interp

const (
	STACK_LIMIT = 1024 // Maximum block nesting depth.
)

// Stack is a bounded LIFO.
type Stack[T any] struct {
	Data []T
}

func (s *Stack[T]) Push(value T) (ok bool) {
	if s.Full() {
		return
	}
	s.Data = append(s.Data, value)
	return true
}

func (s *Stack[T]) Pop() (value T, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack[T]) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack[T]) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack[T]) Reset() {
	if len(s.Data) > 0 {
		clear(s.Data)
		s.Data = s.Data[:0]
	}
}
