package utils_test

import (
	"testing"

	"moving-service/src/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 min", utils.FormatDuration(0))
	assert.Equal(t, "45 min", utils.FormatDuration(45))
	assert.Equal(t, "1 hr", utils.FormatDuration(60))
	assert.Equal(t, "1 hr 20 min", utils.FormatDuration(80))
	assert.Equal(t, "3 hr 5 min", utils.FormatDuration(185))
	assert.Equal(t, "0 min", utils.FormatDuration(-10))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", utils.FormatCents(0))
	assert.Equal(t, "0.05", utils.FormatCents(5))
	assert.Equal(t, "7.50", utils.FormatCents(750))
	assert.Equal(t, "869.00", utils.FormatCents(86900))
	assert.Equal(t, "-12.34", utils.FormatCents(-1234))
}

func TestConvertString(t *testing.T) {
	assert.Equal(t, "plain", utils.ConvertString("plain"))
	assert.Equal(t, `{"a":1}`, utils.ConvertString(map[string]int{"a": 1}))
}

func TestConvertInt(t *testing.T) {
	assert.Equal(t, 7, utils.ConvertInt(7))
	assert.Equal(t, 7, utils.ConvertInt(int64(7)))
	assert.Equal(t, 7, utils.ConvertInt(7.9))
	assert.Equal(t, 7, utils.ConvertInt("7"))
	assert.Equal(t, 0, utils.ConvertInt("seven"))
}
