/*
 * @module service/cleaning/datetime_cleaner
 * @description 日期时间维度清洗器：时刻严格解析、年份数字化、时段枚举过滤
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 时刻解析 -> 年份数字化 -> 时段枚举过滤
 * @rules 时刻不可解析的行丢弃；年份非数字仅置缺失不丢行
 * @dependencies retail-etl-service/service/meta
 * @refs service/cleaning/cleaner, service/cleaning/normalizer
 */

package cleaning

import (
	"retail-etl-service/service/meta"
)

// DateTimeCleaner 日期时间维度清洗器
type DateTimeCleaner struct{}

// NewDateTimeCleaner 创建日期时间维度清洗器实例
func NewDateTimeCleaner() *DateTimeCleaner {
	return &DateTimeCleaner{}
}

// Entity 获取实体类型
func (c *DateTimeCleaner) Entity() string {
	return meta.EntityDateTimes
}

// Clean 执行日期时间维度清洗管道
func (c *DateTimeCleaner) Clean(table Table) (Table, error) {
	if err := requireColumns(table, meta.EntityRequiredFields[meta.EntityDateTimes]...); err != nil {
		return nil, err
	}

	// 时刻严格按 HH:MM:SS 解析，失败整行丢弃
	table = table.Filter(func(r Record) bool {
		timeOfDay := ParseTimeOfDay(r["timestamp"])
		if timeOfDay == nil {
			return false
		}
		r["timestamp"] = timeOfDay
		return true
	})

	// 年份数字化，非数字仅置缺失
	for _, record := range table {
		record["year"] = ParseYear(record["year"])
	}

	table = dropRowsOutsideEnum(table, "time_period", meta.ValidTimePeriods)
	return table, nil
}
