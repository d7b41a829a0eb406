/*
 * @module service/cleaning/orders_cleaner
 * @description 订单实体清洗器：投影掉冗余身份列和位置伪列，其余列原样保留
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 输入表 -> 列投影 -> 输出表
 * @rules 纯列投影，不做任何行过滤
 * @dependencies retail-etl-service/service/meta
 * @refs service/cleaning/cleaner
 */

package cleaning

import (
	"retail-etl-service/service/meta"
)

// 订单表需要投影掉的列：冗余身份列与抽取过程遗留的位置伪列
var ordersDroppedColumns = []string{"first_name", "last_name", "1", "level_0"}

// OrdersCleaner 订单实体清洗器
type OrdersCleaner struct{}

// NewOrdersCleaner 创建订单清洗器实例
func NewOrdersCleaner() *OrdersCleaner {
	return &OrdersCleaner{}
}

// Entity 获取实体类型
func (c *OrdersCleaner) Entity() string {
	return meta.EntityOrders
}

// Clean 执行订单清洗管道
// 投影对已投影过的表是无操作，保证重复清洗结果不变
func (c *OrdersCleaner) Clean(table Table) (Table, error) {
	return table.DropColumns(ordersDroppedColumns...), nil
}
