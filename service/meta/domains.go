/*
 * @module service/meta/domains
 * @description 规范值域定义：国家/国家码/大洲映射、枚举集合、已知脏值修复表和哨兵值
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 常量定义 -> 清洗规则引用
 * @rules 所有枚举和映射均为固定不可变配置，清洗规则只做精确匹配不做模糊匹配
 * @dependencies 无外部依赖
 * @refs service/cleaning
 */

package meta

// SentinelNull 文本哨兵值，任意字段文本形式包含该值的行整行丢弃
const SentinelNull = "NULL"

// CountryByCode 国家码到国家名的固定映射
var CountryByCode = map[string]string{
	"GB": "United Kingdom",
	"DE": "Germany",
	"US": "United States",
}

// ContinentByCode 国家码到大洲的固定映射
var ContinentByCode = map[string]string{
	"GB": "Europe",
	"DE": "Europe",
	"US": "America",
}

// CountryCodeRepairs 已知国家码录入错误的修复映射
var CountryCodeRepairs = map[string]string{
	"GBB": "GB",
}

// ContinentRepairs 已知大洲录入错误的修复映射
var ContinentRepairs = map[string]string{
	"eeEurope":  "Europe",
	"eeAmerica": "America",
}

// ValidStoreTypes 门店类型枚举
var ValidStoreTypes = map[string]bool{
	"Web Portal":  true,
	"Local":       true,
	"Super Store": true,
	"Mall Kiosk":  true,
	"Outlet":      true,
}

// ValidProductCategories 商品类目枚举
var ValidProductCategories = map[string]bool{
	"toys-and-games":     true,
	"sports-and-leisure": true,
	"pets":               true,
	"homeware":           true,
	"health-and-beauty":  true,
	"food-and-drink":     true,
	"diy":                true,
}

// ValidAvailability 商品在售状态枚举
var ValidAvailability = map[string]bool{
	"Removed":         true,
	"Still_available": true,
}

// ValidTimePeriods 时段枚举
var ValidTimePeriods = map[string]bool{
	"Evening":    true,
	"Morning":    true,
	"Midday":     true,
	"Late_Hours": true,
}

// IsValidCountryCode 验证国家码是否在支持范围内
func IsValidCountryCode(code string) bool {
	_, exists := CountryByCode[code]
	return exists
}
