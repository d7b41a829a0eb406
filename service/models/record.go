/*
 * @module service/models/record
 * @description 动态类型表记录模型，提供记录/表结构、缺失值处理和哨兵值检测
 * @architecture 分层架构 - 数据模型层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 数据抽取 -> 记录构造 -> 清洗管道 -> 入库
 * @rules 缺失值统一以nil表示，保留字段键；表内所有记录在清洗完成后共享同一字段集
 * @dependencies github.com/spf13/cast
 * @refs service/cleaning, service/extraction
 */

package models

import (
	"strings"

	"github.com/spf13/cast"
)

// Record 一条动态类型记录，字段名到标量值的映射
// 标量取值为 string、int64、float64、time.Time 或 nil（缺失）
type Record map[string]interface{}

// Table 有序的记录序列，表示一张实体表
type Table []Record

// IsAbsent 判断指定字段是否缺失（键不存在或值为nil）
func (r Record) IsAbsent(field string) bool {
	value, exists := r[field]
	return !exists || value == nil
}

// SetAbsent 将指定字段置为缺失，保留字段键
func (r Record) SetAbsent(field string) {
	r[field] = nil
}

// HasAbsent 判断记录中是否存在任意缺失字段
func (r Record) HasAbsent() bool {
	for _, value := range r {
		if value == nil {
			return true
		}
	}
	return false
}

// ContainsSentinel 判断任意字段的文本形式是否包含哨兵值
func (r Record) ContainsSentinel(sentinel string) bool {
	for _, value := range r {
		if value == nil {
			continue
		}
		if strings.Contains(cast.ToString(value), sentinel) {
			return true
		}
	}
	return false
}

// HasField 判断记录是否包含指定字段（无论是否缺失）
func (r Record) HasField(field string) bool {
	_, exists := r[field]
	return exists
}

// Clone 深拷贝一条记录
func (r Record) Clone() Record {
	cloned := make(Record, len(r))
	for k, v := range r {
		cloned[k] = v
	}
	return cloned
}

// Clone 深拷贝一张表
func (t Table) Clone() Table {
	cloned := make(Table, 0, len(t))
	for _, record := range t {
		cloned = append(cloned, record.Clone())
	}
	return cloned
}

// Filter 按谓词过滤记录，保留原有顺序
func (t Table) Filter(keep func(Record) bool) Table {
	filtered := make(Table, 0, len(t))
	for _, record := range t {
		if keep(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// DropColumns 从所有记录中删除指定列
func (t Table) DropColumns(fields ...string) Table {
	for _, record := range t {
		for _, field := range fields {
			delete(record, field)
		}
	}
	return t
}
