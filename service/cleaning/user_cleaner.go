/*
 * @module service/cleaning/user_cleaner
 * @description 用户实体清洗器：出生/注册日期规范化、电话验证、国家码一致性、邮箱与姓名修整
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 日期规范化 -> 电话验证 -> 国家码修复与过滤 -> 国家一致性 -> 邮箱/姓名修整 -> 缺失与哨兵过滤
 * @rules 电话、国家码、一致性规则为行级拒绝；邮箱形状规则为字段置缺失
 * @dependencies retail-etl-service/service/meta, golang.org/x/text/runes
 * @refs service/cleaning/cleaner
 */

package cleaning

import (
	"unicode"

	"retail-etl-service/service/meta"

	"github.com/spf13/cast"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// 姓名只保留字母和空白字符
var nameSanitizer = runes.Remove(runes.Predicate(func(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return false
	}
	return !unicode.IsSpace(r)
}))

// UserCleaner 用户实体清洗器
type UserCleaner struct{}

// NewUserCleaner 创建用户清洗器实例
func NewUserCleaner() *UserCleaner {
	return &UserCleaner{}
}

// Entity 获取实体类型
func (c *UserCleaner) Entity() string {
	return meta.EntityUsers
}

// Clean 执行用户清洗管道
func (c *UserCleaner) Clean(table Table) (Table, error) {
	if err := requireColumns(table, meta.EntityRequiredFields[meta.EntityUsers]...); err != nil {
		return nil, err
	}

	// 日期规范化，解析失败置缺失，由末尾的缺失过滤器统一丢行
	normalizeDateField(table, "date_of_birth", ParseDate)
	normalizeDateField(table, "join_date", ParseDate)

	// 电话验证，按行内国家限定规则，失败整行丢弃
	table = table.Filter(func(r Record) bool {
		digits, ok := ValidatePhone(cast.ToString(r["phone_number"]), cast.ToString(r["country"]))
		if !ok {
			return false
		}
		r["phone_number"] = digits
		return true
	})

	// 修复已知国家码录入错误，再过滤不受支持的国家码
	for _, record := range table {
		code := cast.ToString(record["country_code"])
		if repaired, exists := meta.CountryCodeRepairs[code]; exists {
			record["country_code"] = repaired
		}
	}
	table = table.Filter(func(r Record) bool {
		return meta.IsValidCountryCode(cast.ToString(r["country_code"]))
	})

	// 国家与国家码一致性
	table = table.Filter(func(r Record) bool {
		return cast.ToString(r["country"]) == meta.CountryByCode[cast.ToString(r["country_code"])]
	})

	// 邮箱形状校验：必须同时包含@和.，否则字段置缺失（不丢行）
	for _, record := range table {
		if record.IsAbsent("email_address") {
			continue
		}
		email := cast.ToString(record["email_address"])
		if !containsBoth(email, '@', '.') {
			record.SetAbsent("email_address")
		}
	}

	// 姓名只保留字母和空白
	for _, record := range table {
		for _, field := range []string{"first_name", "last_name"} {
			if record.IsAbsent(field) {
				continue
			}
			sanitized, _, err := transform.String(nameSanitizer, cast.ToString(record[field]))
			if err != nil {
				continue
			}
			record[field] = sanitized
		}
	}

	table = dropSentinelRows(table, meta.SentinelNull)
	table = dropAbsentRows(table)
	return table, nil
}

func containsBoth(s string, a, b rune) bool {
	hasA, hasB := false, false
	for _, r := range s {
		if r == a {
			hasA = true
		}
		if r == b {
			hasB = true
		}
	}
	return hasA && hasB
}
