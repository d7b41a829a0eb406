/*
 * @module service/cleaning/product_cleaner
 * @description 商品实体清洗器：重量千克化、类目与在售状态枚举、上架日期规范化
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 重量换算 -> 类目过滤 -> 在售状态过滤 -> 上架日期规范化 -> 缺失过滤
 * @rules 重量无法识别的行整行丢弃；换算后的千克值就地替换原字段
 * @dependencies retail-etl-service/service/meta
 * @refs service/cleaning/cleaner, service/cleaning/weight
 */

package cleaning

import (
	"retail-etl-service/service/meta"
)

// ProductCleaner 商品实体清洗器
type ProductCleaner struct{}

// NewProductCleaner 创建商品清洗器实例
func NewProductCleaner() *ProductCleaner {
	return &ProductCleaner{}
}

// Entity 获取实体类型
func (c *ProductCleaner) Entity() string {
	return meta.EntityProducts
}

// Clean 执行商品清洗管道
func (c *ProductCleaner) Clean(table Table) (Table, error) {
	if err := requireColumns(table, meta.EntityRequiredFields[meta.EntityProducts]...); err != nil {
		return nil, err
	}

	// 重量统一换算为千克，无法识别的行丢弃
	table = table.Filter(func(r Record) bool {
		kilograms, ok := ConvertWeight(r["weight"])
		if !ok {
			return false
		}
		r["weight"] = kilograms
		return true
	})

	table = dropRowsOutsideEnum(table, "category", meta.ValidProductCategories)
	table = dropRowsOutsideEnum(table, "removed", meta.ValidAvailability)

	normalizeDateField(table, "date_added", ParseDate)

	table = dropAbsentRows(table)
	return table, nil
}
