// Package tetromino models a falling-block puzzle piece: the seven canonical
// kinds, their four rotation states encoded as 4x4 bitmasks, and the
// projection of a rotated shape onto absolute field positions.
package tetromino

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	O Kind = iota
	J
	L
	I
	S
	Z
	T
)

// KindCount is the number of distinct kinds.
const KindCount = 7

// Kinds lists every kind in table order.
var Kinds = [KindCount]Kind{O, J, L, I, S, Z, T}

var kindNames = [KindCount]string{"O", "J", "L", "I", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind named by a single letter, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}
