// Package rangebolt exposes the contents of bolt buckets as rangekit sequences.
//
// The sequences read through a bolt cursor, so they must be drained
// within the transaction that the bucket belongs to.
// Keys and values are copied out of the bolt managed memory,
// so the collected elements stay valid after the transaction is closed.
package rangebolt

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Pair is a key/value entry of a bucket.
// Value is nil when the key refers to a nested bucket.
type Pair struct {
	Key   []byte
	Value []byte
}

// Pairs returns every entry of the bucket in key order.
func Pairs(b *bolt.Bucket) *rangekit.Adapter[Pair] {
	return Prefix(b, nil)
}

// Prefix returns the entries of the bucket whose key starts with prefix, in key order.
func Prefix(b *bolt.Bucket, prefix []byte) *rangekit.Adapter[Pair] {
	return rangekit.Generate[Pair](&cursorGenerator{cursor: b.Cursor(), prefix: prefix})
}

// Keys returns the keys of the bucket in key order.
func Keys(b *bolt.Bucket) *rangekit.TransformStage[Pair, []byte] {
	return rangekit.Transform[Pair](Pairs(b), func(p Pair) []byte {
		return p.Key
	})
}

type cursorGenerator struct {
	cursor  *bolt.Cursor
	prefix  []byte
	started bool
}

func (g *cursorGenerator) ComputeNext() (Pair, bool) {
	var k, v []byte
	switch {
	case g.started:
		k, v = g.cursor.Next()
	case len(g.prefix) == 0:
		k, v = g.cursor.First()
	default:
		k, v = g.cursor.Seek(g.prefix)
	}
	g.started = true
	if k == nil || !bytes.HasPrefix(k, g.prefix) {
		return Pair{}, false
	}
	return Pair{Key: bytes.Clone(k), Value: bytes.Clone(v)}, true
}
