package rangekit_test

import (
	"go.llib.dev/rangekit/pkg/datastruct"
)

type Movable struct {
	Val int
}

func (m Movable) Clone() Movable {
	return Movable{Val: m.Val}
}

type Named struct {
	Name string
}

func (n *Named) Clone() *Named {
	return &Named{Name: n.Name}
}

func movables(vs ...int) []Movable {
	var out []Movable
	for _, v := range vs {
		out = append(out, Movable{Val: v})
	}
	return out
}

func listOf[T any](vs ...T) *datastruct.LinkedList[T] {
	var l datastruct.LinkedList[T]
	l.Append(vs...)
	return &l
}

func vals(ms []Movable) []int {
	var out []int
	for _, m := range ms {
		out = append(out, m.Val)
	}
	return out
}

func listValues[T any](l *datastruct.LinkedList[T]) []T {
	var out []T
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}
