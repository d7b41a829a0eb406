/*
 * @module service/cleaning/card_cleaner
 * @description 支付卡实体清洗器：有效期与支付确认日期规范化、卡号数字化
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 有效期解析 -> 确认日期解析 -> 卡号数字化 -> 缺失与哨兵过滤
 * @rules 卡号非严格数字内容置缺失；缺失字段与哨兵值的行整行丢弃
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

// CardCleaner 支付卡实体清洗器
type CardCleaner struct{}

// NewCardCleaner 创建支付卡清洗器实例
func NewCardCleaner() *CardCleaner {
	return &CardCleaner{}
}

// Entity 获取实体类型
func (c *CardCleaner) Entity() string {
	return meta.EntityCards
}

// Clean 执行支付卡清洗管道
func (c *CardCleaner) Clean(table Table) (Table, error) {
	if err := requireColumns(table, meta.EntityRequiredFields[meta.EntityCards]...); err != nil {
		return nil, err
	}

	normalizeDateField(table, "expiry_date", ParseExpiryDate)
	normalizeDateField(table, "date_payment_confirmed", ParseDate)

	// 卡号强制为严格数字整数，非数字内容置缺失
	for _, record := range table {
		record["card_number"] = coerceCardNumber(record["card_number"])
	}

	table = dropSentinelRows(table, meta.SentinelNull)
	table = dropAbsentRows(table)
	return table, nil
}

func coerceCardNumber(value interface{}) interface{} {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case nil:
		return nil
	}

	raw := strings.TrimSpace(cast.ToString(value))
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return number
}
