// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/dictionary/pkg/slice"
)

/*
TestUnique keeps first-seen order.
*/
func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, slice.Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Nil(t, slice.Unique[string](nil))
}

/*
TestMapErr stops at the first failure.
*/
func TestMapErr(t *testing.T) {
	got, err := slice.MapErr([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = slice.MapErr([]string{"1", "x"}, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))

	assert.Equal(t, []int{2, 4}, slice.Map([]int{1, 2}, func(v int) int { return v * 2 }))
}
