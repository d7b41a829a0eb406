/*
 * @module service/cleaning/cleaner
 * @description 实体清洗器统一接口、注册表和共享行级过滤器
 * @architecture 分层架构 - 数据清洗层，注册表模式按实体类型分发
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 实体类型 -> 清洗器查找 -> 管道执行 -> 清洗后表输出
 * @rules 清洗是输入表的纯函数：脏数据只降级为丢行或置缺失，仅契约违规（缺少必需列）返回错误
 * @dependencies retail-etl-service/service/models, retail-etl-service/service/meta
 * @refs service/etl, api/controllers
 */

package cleaning

import (
	"fmt"

	"retail-etl-service/service/models"
)

// 使用models包中定义的类型
type Record = models.Record
type Table = models.Table

// Cleaner 实体清洗器接口
// Clean 独占输入表并返回清洗后的表，对脏数据永不返回错误
type Cleaner interface {
	// Entity 返回清洗器负责的实体类型
	Entity() string
	// Clean 执行清洗管道
	Clean(table Table) (Table, error)
}

var cleanerRegistry = map[string]Cleaner{}

func register(cleaner Cleaner) {
	cleanerRegistry[cleaner.Entity()] = cleaner
}

func init() {
	register(NewUserCleaner())
	register(NewCardCleaner())
	register(NewStoreCleaner())
	register(NewProductCleaner())
	register(NewOrdersCleaner())
	register(NewDateTimeCleaner())
}

// GetCleaner 按实体类型获取清洗器实例
func GetCleaner(entity string) (Cleaner, error) {
	cleaner, exists := cleanerRegistry[entity]
	if !exists {
		return nil, fmt.Errorf("不支持的实体类型: %s", entity)
	}
	return cleaner, nil
}

// Clean 按实体类型执行一次清洗，返回清洗后的表和行数统计
func Clean(entity string, table Table) (Table, models.CleanStats, error) {
	cleaner, err := GetCleaner(entity)
	if err != nil {
		return nil, models.CleanStats{}, err
	}

	rowsIn := len(table)
	cleaned, err := cleaner.Clean(table)
	if err != nil {
		return nil, models.CleanStats{}, err
	}

	stats := models.CleanStats{
		RowsIn:      rowsIn,
		RowsOut:     len(cleaned),
		RowsDropped: rowsIn - len(cleaned),
	}
	return cleaned, stats, nil
}

// requireColumns 校验字段契约：所有记录必须包含全部必需列
// 缺列是调用方错误而非数据质量问题，立即失败
func requireColumns(table Table, fields ...string) error {
	for _, record := range table {
		for _, field := range fields {
			if !record.HasField(field) {
				return fmt.Errorf("输入表缺少必需列: %s", field)
			}
		}
	}
	return nil
}

// dropAbsentRows 丢弃包含任意缺失字段的行
func dropAbsentRows(table Table) Table {
	return table.Filter(func(r Record) bool {
		return !r.HasAbsent()
	})
}

// dropSentinelRows 丢弃任意字段文本形式包含哨兵值的行
func dropSentinelRows(table Table, sentinel string) Table {
	return table.Filter(func(r Record) bool {
		return !r.ContainsSentinel(sentinel)
	})
}

// dropRowsOutsideEnum 丢弃指定字段取值落在枚举之外的行
func dropRowsOutsideEnum(table Table, field string, valid map[string]bool) Table {
	return table.Filter(func(r Record) bool {
		value, ok := r[field].(string)
		return ok && valid[value]
	})
}
