/*
 * @module service/cleaning/normalizer
 * @description 日期时间规范化器，按模板优先级解析异构日期编码，解析失败置为缺失
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 原始值读取 -> 模板顺序尝试 -> 规范时间戳输出/缺失标记
 * @rules 解析永不抛错，失败降级为缺失；已规范化的值再次解析结果不变
 * @dependencies github.com/spf13/cast
 * @refs service/cleaning/user_cleaner, service/cleaning/card_cleaner
 */

package cleaning

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// 日期模板，按优先级顺序尝试：先通用自由解析，再各实体数据中出现过的编码
var defaultDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2006 02",
	"January 02 2006",
	"2006 January 02",
}

// 卡片有效期模板 MM/YY
var expiryDateLayouts = []string{"01/06"}

// 时刻模板 HH:MM:SS
const timeOfDayLayout = "15:04:05"

// ParseDate 将异构日期值解析为规范时间戳
// 已经是time.Time的值原样通过；全部模板失败返回nil（缺失）
func ParseDate(value interface{}) interface{} {
	return parseWithLayouts(value, defaultDateLayouts)
}

// ParseExpiryDate 按 MM/YY 模板解析卡片有效期
func ParseExpiryDate(value interface{}) interface{} {
	return parseWithLayouts(value, expiryDateLayouts)
}

func parseWithLayouts(value interface{}, layouts []string) interface{} {
	if value == nil {
		return nil
	}
	if t, ok := value.(time.Time); ok {
		return t
	}

	raw := strings.TrimSpace(cast.ToString(value))
	if raw == "" {
		return nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return nil
}

// ParseTimeOfDay 严格按 HH:MM:SS 解析时刻，与日期无关
// 返回规范化的 HH:MM:SS 字符串，失败返回nil
func ParseTimeOfDay(value interface{}) interface{} {
	if value == nil {
		return nil
	}

	raw := strings.TrimSpace(cast.ToString(value))
	t, err := time.Parse(timeOfDayLayout, raw)
	if err != nil {
		return nil
	}
	return t.Format(timeOfDayLayout)
}

// ParseYear 将年份字段按十进制整数解析，非数字内容返回nil
func ParseYear(value interface{}) interface{} {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	}

	raw := strings.TrimSpace(cast.ToString(value))
	year, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return year
}

// normalizeDateField 对指定字段就地应用日期规范化，失败字段置为缺失
func normalizeDateField(table Table, field string, parse func(interface{}) interface{}) {
	for _, record := range table {
		record[field] = parse(record[field])
	}
}
