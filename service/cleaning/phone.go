/*
 * @module service/cleaning/phone
 * @description 电话号码验证器，剥离非数字字符后按国家规则校验长度与前缀
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 原始号码 -> 非数字剥离 -> 国家规则匹配 -> 通过/拒绝
 * @rules 行级拒绝规则：国家不在支持范围或号码不满足规则的行整行丢弃
 * @dependencies regexp
 * @refs service/cleaning/user_cleaner
 */

package cleaning

import (
	"regexp"
	"strings"
)

var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// StripNonDigits 剥离字符串中的所有非数字字符
func StripNonDigits(raw string) string {
	return nonDigitPattern.ReplaceAllString(raw, "")
}

// ValidatePhone 按国家规则验证电话号码
// 返回剥离后的纯数字号码和是否通过；国家不受支持时直接拒绝
func ValidatePhone(raw, country string) (string, bool) {
	digits := StripNonDigits(raw)

	switch country {
	case "United Kingdom":
		if strings.HasPrefix(digits, "44") && len(digits) == 12 {
			return digits, true
		}
		if strings.HasPrefix(digits, "0") && len(digits) == 11 {
			return digits, true
		}
	case "Germany":
		if strings.HasPrefix(digits, "49") && len(digits) == 12 {
			return digits, true
		}
		if len(digits) == 10 {
			return digits, true
		}
	case "United States":
		if strings.HasPrefix(digits, "1") && len(digits) == 11 {
			return digits, true
		}
		if len(digits) == 10 {
			return digits, true
		}
	}
	return digits, false
}
