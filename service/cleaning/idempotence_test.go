/*
 * @module service/cleaning/idempotence_test
 * @description 清洗管道幂等性测试：对任意实体管道，清洗自身输出必须是无操作
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 脏数据表 -> 首次清洗 -> 二次清洗 -> 结果等价验证
 * @rules 已规范化的值再次解析结果相同且满足全部枚举，clean(clean(T)) == clean(T)
 * @dependencies testing, testify
 * @refs cleaner.go
 */

package cleaning

import (
	"testing"

	"retail-etl-service/service/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirtyTableForEntity(entity string) Table {
	switch entity {
	case meta.EntityUsers:
		bad := validUserRecord()
		bad["phone_number"] = "123"
		typo := validUserRecord()
		typo["country_code"] = "GBB"
		return Table{validUserRecord(), bad, typo}
	case meta.EntityCards:
		bad := validCardRecord()
		bad["card_number"] = "??123"
		return Table{validCardRecord(), bad}
	case meta.EntityStores:
		bad := validStoreRecord()
		bad["store_type"] = "Pop-up"
		web := validStoreRecord()
		web["store_type"] = "Web Portal"
		web["latitude"] = "N/A"
		web["longitude"] = "N/A"
		return Table{validStoreRecord(), bad, web}
	case meta.EntityProducts:
		bad := validProductRecord()
		bad["category"] = "electronics"
		grams := validProductRecord()
		grams["weight"] = "500g"
		return Table{validProductRecord(), bad, grams}
	case meta.EntityOrders:
		return Table{
			{"level_0": 0, "1": "x", "first_name": "A", "last_name": "B", "user_uuid": "u1", "product_quantity": 2},
			{"level_0": 1, "1": "y", "first_name": "C", "last_name": "D", "user_uuid": "u2", "product_quantity": 5},
		}
	case meta.EntityDateTimes:
		bad := validDateTimeRecord()
		bad["timestamp"] = "late"
		absentYear := validDateTimeRecord()
		absentYear["year"] = "GYSATSCN"
		return Table{validDateTimeRecord(), bad, absentYear}
	}
	return nil
}

func TestCleanersAreIdempotent(t *testing.T) {
	for _, entity := range meta.GetAllEntities() {
		t.Run(entity, func(t *testing.T) {
			table := dirtyTableForEntity(entity)
			require.NotNil(t, table)

			once, _, err := Clean(entity, table.Clone())
			require.NoError(t, err)

			twice, _, err := Clean(entity, once.Clone())
			require.NoError(t, err)

			assert.Equal(t, once, twice)
		})
	}
}

func TestCleanStats(t *testing.T) {
	table := dirtyTableForEntity(meta.EntityProducts)

	_, stats, err := Clean(meta.EntityProducts, table)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.RowsIn)
	assert.Equal(t, 2, stats.RowsOut)
	assert.Equal(t, 1, stats.RowsDropped)
}

func TestCleanUnknownEntity(t *testing.T) {
	_, _, err := Clean("unknown", Table{})
	assert.Error(t, err)
}
