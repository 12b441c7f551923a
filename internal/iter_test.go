package internal

import (
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type number int

func (n number) String() string {
	return strconv.Itoa(int(n))
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestMembers(t *testing.T) {
	assert := assert.New(t)

	var text []string
	for s := range Members[fmt.Stringer]([]number{4, 5}) {
		text = append(text, s.String())
	}
	assert.Equal([]string{"4", "5"}, text)
}

func TestMap(t *testing.T) {
	assert := assert.New(t)

	seq := Map(slices.Values([]int{1, 2, 3}), func(n int) string { return strconv.Itoa(n * 2) })
	assert.Equal([]string{"2", "4", "6"}, slices.Collect(seq))
}
