package report

import (
	"fmt"
	"math"
	"time"

	"code.cloudfoundry.org/bytefmt"
)

// TimestampLayout renders e.g. 3Mar24 14:05:09 PST
const TimestampLayout = "2Jan06 15:04:05 MST"

// SizeSuffix is appended to every unit prefix
const SizeSuffix = "B"

const overflowUnit = "Y"

var sizeUnits = []string{"", "K", "M", "G", "T", "P", "E", "Z"}

// SizeOf renders num with binary unit prefixes and one decimal, e.g. 1536 becomes "1.5KB".
// Values beyond the zettabyte range are rendered as "Y" regardless of their magnitude.
func SizeOf(num float64, suffix string) string {
	value, unit := scale(num)

	if unit == overflowUnit {
		return fmt.Sprintf("%.1f%s%s", value, unit, suffix)
	}

	return fmt.Sprintf("%3.1f%s%s", value, unit, suffix)
}

// scale divides num by 1024 until its magnitude is below 1024 or all units are used
func scale(num float64) (float64, string) {
	for _, unit := range sizeUnits {
		if math.Abs(num) < bytefmt.KILOBYTE {
			return num, unit
		}

		num /= bytefmt.KILOBYTE
	}

	return num, overflowUnit
}

// Formatter derives the display fields of a record
type Formatter struct {
	// Location used for timestamps; UTC if nil
	Location *time.Location
}

func (f Formatter) Size(size uint64) string {
	return SizeOf(float64(size), SizeSuffix)
}

func (f Formatter) Timestamp(t time.Time) string {
	location := f.Location
	if location == nil {
		location = time.UTC
	}

	return t.In(location).Format(TimestampLayout)
}
