package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 200.0, ParseAmount("200", 150))
	assert.Equal(t, 89.9, ParseAmount(" 89.9 ", 0))
	assert.Equal(t, 150.0, ParseAmount("", 150))
	assert.Equal(t, 150.0, ParseAmount("abc", 150))
	assert.Equal(t, 0.0, ParseAmount("", 0))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 150.00", FormatBRL(150))
	assert.Equal(t, "R$ 89.90", FormatBRL(89.9))
	assert.Equal(t, "R$ 0.00", FormatBRL(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15/06/1990", FormatDate("1990-06-15"))
	assert.Equal(t, "N/A", FormatDate(""))
	assert.Equal(t, "N/A", FormatDate("15/06/1990"))
	assert.Equal(t, "N/A", FormatDate("1990-13-40"))
}

func TestFormatToday(t *testing.T) {
	today := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatToday(today))
}
