package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrip/pkg/utils"
)

func TestCalculateDays(t *testing.T) {
	d := func(s string) time.Time {
		v, err := utils.ParseDate(s)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 1, utils.CalculateDays(d("2025-01-01"), d("2025-01-01")))
	assert.Equal(t, 3, utils.CalculateDays(d("2025-01-01"), d("2025-01-03")))
	assert.Equal(t, 3, utils.CalculateDays(d("2025-01-03"), d("2025-01-01")))
	assert.Equal(t, 32, utils.CalculateDays(d("2025-01-31"), d("2025-03-03")))
}

func TestParseDate(t *testing.T) {
	v, err := utils.ParseDate(" 2025-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", utils.FormatDate(v))

	v, err = utils.ParseDate("2025-02-28T22:15:00+08:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", utils.FormatDate(v))
	assert.Equal(t, 0, v.Hour())

	for _, bad := range []string{"", "2025/02/28", "2025-02-30", "tomorrow"} {
		_, err := utils.ParseDate(bad)
		assert.Error(t, err, bad)
	}
	assert.Empty(t, utils.FormatDate(time.Time{}))
}

func TestTodayCN(t *testing.T) {
	// 17:30 UTC is already the next day in China.
	now := time.Date(2025, 3, 9, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", utils.FormatDate(utils.TodayCN(now)))

	now = time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-09", utils.FormatDate(utils.TodayCN(now)))
}

func TestFormatRFC3339CN(t *testing.T) {
	assert.Empty(t, utils.FormatRFC3339CN(time.Time{}))
	assert.Equal(t, "2025-01-01T08:00:00+08:00", utils.FormatRFC3339CN(utils.FromUnixSecondsCN(1735689600)))
	assert.True(t, utils.FromUnixSecondsCN(0).IsZero())
}
