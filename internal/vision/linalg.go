package vision

// Vec3 is a color triple in any of the pipeline's spaces.
type Vec3 [3]float32

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float32

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// MulVec returns m*v, summing each row left to right in single precision.
// Every product is rounded to float32 before the add so the compiler cannot
// fuse it into an FMA and drift from the reference results.
func (m Mat3) MulVec(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		var acc float32
		for j := 0; j < 3; j++ {
			acc += float32(m[i][j] * v[j])
		}
		out[i] = acc
	}
	return out
}
