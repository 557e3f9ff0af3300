package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulVecIdentity(t *testing.T) {
	v := Vec3{0.25, 0.5, 0.75}
	assert.Equal(t, v, Identity3.MulVec(v))
}

func TestMulVecRows(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{0, -1, 0},
		{0.5, 0, 2},
	}
	assert.Equal(t, Vec3{14, -2, 6.5}, m.MulVec(Vec3{1, 2, 3}))
}
