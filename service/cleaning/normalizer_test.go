/*
 * @module service/cleaning/normalizer_test
 * @description 日期时间规范化器单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 输入参数 -> 函数调用 -> 输出验证
 * @rules 覆盖模板回退顺序、解析失败降级和已规范值的幂等通过
 * @dependencies testing, testify
 * @refs normalizer.go
 */

package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{
			name:     "ISO日期",
			input:    "2005-01-13",
			expected: time.Date(2005, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "斜杠分隔日期",
			input:    "2005/01/13",
			expected: time.Date(2005, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "月份 年 日 编码",
			input:    "July 1973 08",
			expected: time.Date(1973, 7, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "月份 日 年 编码",
			input:    "July 08 1973",
			expected: time.Date(1973, 7, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "年 月份 日 编码",
			input:    "1973 July 08",
			expected: time.Date(1973, 7, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "带时间的ISO编码",
			input:    "2005-01-13 10:30:00",
			expected: time.Date(2005, 1, 13, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "无法解析的内容",
			input:    "QMAVR5H3LD",
			expected: nil,
		},
		{
			name:     "空字符串",
			input:    "",
			expected: nil,
		},
		{
			name:     "nil输入",
			input:    nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseDate(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseDateIdempotent(t *testing.T) {
	// 已规范化的时间戳再次解析必须原样通过
	first := ParseDate("2005-01-13")
	require.NotNil(t, first)

	second := ParseDate(first)
	assert.Equal(t, first, second)
}

func TestParseExpiryDate(t *testing.T) {
	result := ParseExpiryDate("09/26")
	require.NotNil(t, result)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), result)

	assert.Nil(t, ParseExpiryDate("2026-09-01x"))
	assert.Nil(t, ParseExpiryDate("13/26"))
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{
			name:     "有效时刻",
			input:    "22:00:10",
			expected: "22:00:10",
		},
		{
			name:     "无效时刻",
			input:    "25:00:00",
			expected: nil,
		},
		{
			name:     "缺少秒位",
			input:    "22:00",
			expected: nil,
		},
		{
			name:     "非时刻内容",
			input:    "evening",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseTimeOfDay(tc.input))
		})
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, int64(1998), ParseYear("1998"))
	assert.Equal(t, int64(1998), ParseYear(int64(1998)))
	assert.Equal(t, int64(1998), ParseYear(1998))
	assert.Nil(t, ParseYear("GYSATSCN"))
	assert.Nil(t, ParseYear("1998.5"))
	assert.Nil(t, ParseYear(nil))
}
