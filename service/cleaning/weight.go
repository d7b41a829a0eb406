/*
 * @module service/cleaning/weight
 * @description 重量单位转换器，将异构的数量+单位字符串统一换算为千克浮点数
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 原始值 -> 单位识别(按优先级) -> 数值提取 -> 千克换算
 * @rules 单位识别优先级固定：数值 -> kg -> g -> ml -> oz；无法识别的值所在行整行丢弃
 * @dependencies regexp, strconv
 * @refs service/cleaning/product_cleaner
 */

package cleaning

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// 常衡盎司到千克的换算系数
const ouncesToKilograms = 0.0283495

var nonNumericPattern = regexp.MustCompile(`[^0-9.]`)

// ConvertWeight 将异构重量值换算为千克
// 已经是数值的直接视为千克通过；字符串按单位标记换算；无法识别返回false
// 单位匹配沿用子串包含语义（"mg"会命中"g"规则），严格单位文法见设计文档
func ConvertWeight(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}

	raw := strings.TrimSpace(cast.ToString(value))

	switch {
	case strings.Contains(raw, "kg"):
		return parseNumericPart(raw, 1)
	case strings.Contains(raw, "g"):
		return parseNumericPart(raw, 1.0/1000)
	case strings.Contains(raw, "ml"):
		// 按密度≈1处理，毫升等同于克，属于刻意的设计取舍而非通用换算
		return parseNumericPart(raw, 1.0/1000)
	case strings.Contains(raw, "oz"):
		return parseNumericPart(raw, ouncesToKilograms)
	}
	return 0, false
}

func parseNumericPart(raw string, factor float64) (float64, bool) {
	numeric := nonNumericPattern.ReplaceAllString(raw, "")
	weight, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	return weight * factor, true
}
