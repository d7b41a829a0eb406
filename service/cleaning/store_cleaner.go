/*
 * @module service/cleaning/store_cleaner
 * @description 门店实体清洗器：大洲一致性、门店类型枚举、经纬度范围校验、冗余列删除
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 大洲修复 -> 一致性过滤 -> 类型枚举过滤 -> 经纬度校验 -> 开业日期规范化 -> 冗余列删除 -> 哨兵过滤
 * @rules 经纬度可解析且越界的行丢弃；不可解析置缺失但保留行（线上门店无实体坐标）
 * @dependencies retail-etl-service/service/meta
 * @refs service/cleaning/cleaner
 */

package cleaning

import (
	"strconv"
	"strings"

	"retail-etl-service/service/meta"

	"github.com/spf13/cast"
)

// StoreCleaner 门店实体清洗器
type StoreCleaner struct{}

// NewStoreCleaner 创建门店清洗器实例
func NewStoreCleaner() *StoreCleaner {
	return &StoreCleaner{}
}

// Entity 获取实体类型
func (c *StoreCleaner) Entity() string {
	return meta.EntityStores
}

// Clean 执行门店清洗管道
func (c *StoreCleaner) Clean(table Table) (Table, error) {
	if err := requireColumns(table, meta.EntityRequiredFields[meta.EntityStores]...); err != nil {
		return nil, err
	}

	// 修复已知大洲录入错误
	for _, record := range table {
		continent := cast.ToString(record["continent"])
		if repaired, exists := meta.ContinentRepairs[continent]; exists {
			record["continent"] = repaired
		}
	}

	// 大洲与国家码一致性
	table = table.Filter(func(r Record) bool {
		return cast.ToString(r["continent"]) == meta.ContinentByCode[cast.ToString(r["country_code"])]
	})

	table = dropRowsOutsideEnum(table, "store_type", meta.ValidStoreTypes)

	// 经纬度数值化与范围校验
	table = table.Filter(func(r Record) bool {
		return normalizeCoordinate(r, "latitude", 90) && normalizeCoordinate(r, "longitude", 180)
	})

	normalizeDateField(table, "opening_date", ParseDate)

	// 删除遗留的冗余纬度列
	table = table.DropColumns("lat")

	table = dropSentinelRows(table, meta.SentinelNull)
	return table, nil
}

// normalizeCoordinate 将坐标字段数值化并做范围校验
// 可解析且越界返回false（丢行）；不可解析置缺失但保留行
func normalizeCoordinate(record Record, field string, bound float64) bool {
	if record.IsAbsent(field) {
		return true
	}

	var value float64
	switch v := record[field].(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	default:
		raw := strings.TrimSpace(cast.ToString(record[field]))
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			record.SetAbsent(field)
			return true
		}
		value = parsed
	}

	if value < -bound || value > bound {
		return false
	}
	record[field] = value
	return true
}
