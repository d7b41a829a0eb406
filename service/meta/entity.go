/*
 * @module service/meta/entity
 * @description 实体类型常量定义，包括实体清单、字段契约和目标表名映射
 * @architecture 常量层 - 元数据定义
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 常量定义 -> 验证函数 -> 业务逻辑使用
 * @rules 统一管理所有实体相关的常量，字段契约缺失视为调用方契约违规
 * @dependencies 无外部依赖
 * @refs service/cleaning, service/etl
 */

package meta

// 实体类型常量
const (
	// EntityUsers 用户实体
	EntityUsers = "users"

	// EntityCards 支付卡实体
	EntityCards = "cards"

	// EntityStores 门店实体
	EntityStores = "stores"

	// EntityProducts 商品实体
	EntityProducts = "products"

	// EntityOrders 订单实体
	EntityOrders = "orders"

	// EntityDateTimes 日期时间维度实体
	EntityDateTimes = "date_times"
)

// EntityTargetTables 实体到数据仓库目标表名的映射
var EntityTargetTables = map[string]string{
	EntityUsers:     "dim_users",
	EntityCards:     "dim_card_details",
	EntityStores:    "dim_store_details",
	EntityProducts:  "dim_products",
	EntityOrders:    "orders_table",
	EntityDateTimes: "dim_date_times",
}

// EntityRequiredFields 各实体清洗管道要求的输入字段契约
// 缺失契约字段属于调用方错误，清洗器应快速失败而非静默继续
var EntityRequiredFields = map[string][]string{
	EntityUsers:     {"first_name", "last_name", "date_of_birth", "join_date", "phone_number", "country", "country_code", "email_address"},
	EntityCards:     {"card_number", "expiry_date", "date_payment_confirmed"},
	EntityStores:    {"continent", "country_code", "store_type", "latitude", "longitude", "opening_date"},
	EntityProducts:  {"weight", "category", "removed", "date_added"},
	EntityOrders:    {},
	EntityDateTimes: {"timestamp", "year", "time_period"},
}

// IsValidEntity 验证实体类型是否有效
func IsValidEntity(entity string) bool {
	_, exists := EntityTargetTables[entity]
	return exists
}

// GetAllEntities 获取所有支持的实体类型
func GetAllEntities() []string {
	return []string{
		EntityUsers,
		EntityCards,
		EntityStores,
		EntityProducts,
		EntityOrders,
		EntityDateTimes,
	}
}

// GetTargetTable 获取实体对应的目标表名
func GetTargetTable(entity string) string {
	if table, exists := EntityTargetTables[entity]; exists {
		return table
	}
	return ""
}
