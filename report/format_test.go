package report

import (
	"math"
	"testing"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/stretchr/testify/assert"
)

func Test_SizeOf_renderingExamples(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.0B", SizeOf(0, "B"))
	assert.Equal("10.0B", SizeOf(10, "B"))
	assert.Equal("1023.0B", SizeOf(1023, "B"))
	assert.Equal("1.0KB", SizeOf(bytefmt.KILOBYTE, "B"))
	assert.Equal("1.5KB", SizeOf(1536, "B"))
	assert.Equal("2.0KB", SizeOf(2*bytefmt.KILOBYTE, "B"))
	assert.Equal("1.0MB", SizeOf(1048576, "B"))
	assert.Equal("3.0GB", SizeOf(3*bytefmt.GIGABYTE, "B"))
	assert.Equal("1.0EB", SizeOf(bytefmt.EXABYTE, "B"))
}

func Test_SizeOf_keepsSignOfNegativeSizes(t *testing.T) {
	assert.Equal(t, "-2.0KB", SizeOf(-2048, "B"))
	assert.Equal(t, "-512.0B", SizeOf(-512, "B"))
}

func Test_SizeOf_fallsBackToYottaAfterLastUnit(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.0YB", SizeOf(math.Pow(1024, 8), "B"))
	assert.Equal("2048.0YB", SizeOf(math.Pow(1024, 9)*2, "B"))
}

func Test_SizeOf_usesSuffix(t *testing.T) {
	assert.Equal(t, "1.0Ki", SizeOf(1024, "i"))
}

func Test_scale_magnitudeStaysBelowOneKibiUnlessExhausted(t *testing.T) {
	assert := assert.New(t)

	sizes := []float64{0, 1, 999, 1023, 1024, 1025, 1048575, 1048576, math.MaxUint32, math.MaxUint64}
	for exponent := 0; exponent < 64; exponent++ {
		sizes = append(sizes, math.Pow(2, float64(exponent)), math.Pow(2, float64(exponent))-1)
	}

	for _, size := range sizes {
		value, unit := scale(size)

		assert.NotEqual(overflowUnit, unit, "size %v", size)
		assert.Less(math.Abs(value), float64(bytefmt.KILOBYTE), "size %v rendered as %v%s", size, value, unit)
	}
}

func Test_Formatter_Timestamp_usesLocation(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	sut := Formatter{Location: pst}

	modified := time.Date(2024, time.March, 3, 22, 5, 9, 0, time.UTC)

	assert.Equal(t, "3Mar24 14:05:09 PST", sut.Timestamp(modified))
}

func Test_Formatter_Timestamp_defaultsToUTC(t *testing.T) {
	sut := Formatter{}

	modified := time.Date(2023, time.November, 23, 4, 5, 0, 0, time.UTC)

	assert.Equal(t, "23Nov23 04:05:00 UTC", sut.Timestamp(modified))
}

func Test_Formatter_Size(t *testing.T) {
	assert.Equal(t, "2.0KB", Formatter{}.Size(2048))
}
