package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 24, Shape{2, 3, 4}.NumElements())
	assert.Equal(t, 5, Shape{5}.NumElements())
	assert.Equal(t, 1, Shape{1, 1, 1}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{}.Validate(), "empty shape must be rejected")
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.True(t, s.Equal(Shape{2, 3, 4}))
	assert.False(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{2, 3, 5}))

	clone := s.Clone()
	require.True(t, s.Equal(clone))
	clone[0] = 7
	assert.Equal(t, 2, s[0], "Clone must not share memory")
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Equal(t, []int{3, 1}, Shape{3, 3}.ComputeStrides())
}
