/*
 * @module service/cleaning/orders_cleaner_test
 * @description 订单实体清洗管道单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 构造输入表 -> 列投影 -> 输出验证
 * @rules 覆盖冗余列投影、其余列原样保留和无行过滤语义
 * @dependencies testing, testify
 * @refs orders_cleaner.go
 */

package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersCleanerProjection(t *testing.T) {
	table := Table{
		{
			"level_0":          0,
			"1":                "artifact",
			"date_uuid":        "3a4a2c1f",
			"first_name":       "Sigfried",
			"last_name":        "Noack",
			"user_uuid":        "8b2c7a11",
			"card_number":      "4971858637664481",
			"store_code":       "HI-9B97EE4E",
			"product_code":     "A8-4686892S",
			"product_quantity": 3,
		},
	}

	cleaned, err := NewOrdersCleaner().Clean(table)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)

	record := cleaned[0]
	assert.False(t, record.HasField("first_name"))
	assert.False(t, record.HasField("last_name"))
	assert.False(t, record.HasField("1"))
	assert.False(t, record.HasField("level_0"))

	// 其余列原样保留
	assert.Equal(t, "8b2c7a11", record["user_uuid"])
	assert.Equal(t, "4971858637664481", record["card_number"])
	assert.Equal(t, 3, record["product_quantity"])
}

func TestOrdersCleanerNoRowFiltering(t *testing.T) {
	// 订单清洗是纯列投影，哨兵值和缺失字段也不丢行
	table := Table{
		{"first_name": "NULL", "user_uuid": nil, "product_quantity": 1},
		{"first_name": "B", "user_uuid": "u2", "product_quantity": 2},
	}

	cleaned, err := NewOrdersCleaner().Clean(table)
	require.NoError(t, err)
	assert.Len(t, cleaned, 2)
}
