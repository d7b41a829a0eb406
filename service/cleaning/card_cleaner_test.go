/*
 * @module service/cleaning/card_cleaner_test
 * @description 支付卡实体清洗管道单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 构造脏数据表 -> 清洗 -> 逐行验证
 * @rules 覆盖有效期模板、卡号数字化和缺失/哨兵丢弃
 * @dependencies testing, testify
 * @refs card_cleaner.go
 */

package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCardRecord() Record {
	return Record{
		"card_number":            "4971858637664481",
		"expiry_date":            "09/26",
		"card_provider":          "VISA 16 digit",
		"date_payment_confirmed": "2021-04-02",
	}
}

func TestCardCleanerHappyPath(t *testing.T) {
	cleaned, err := NewCardCleaner().Clean(Table{validCardRecord()})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)

	record := cleaned[0]
	assert.Equal(t, int64(4971858637664481), record["card_number"])
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), record["expiry_date"])
	assert.Equal(t, time.Date(2021, 4, 2, 0, 0, 0, 0, time.UTC), record["date_payment_confirmed"])
}

func TestCardCleanerRowRejections(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(Record)
	}{
		{
			name: "卡号含非数字内容",
			mutate: func(r Record) {
				r["card_number"] = "??4971858637664481"
			},
		},
		{
			name: "有效期不符合MM/YY",
			mutate: func(r Record) {
				r["expiry_date"] = "September 2026"
			},
		},
		{
			name: "支付确认日期无法解析",
			mutate: func(r Record) {
				r["date_payment_confirmed"] = "GYSATSCN"
			},
		},
		{
			name: "哨兵值NULL",
			mutate: func(r Record) {
				r["card_provider"] = "NULL"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := validCardRecord()
			tc.mutate(record)

			cleaned, err := NewCardCleaner().Clean(Table{record})
			require.NoError(t, err)
			assert.Empty(t, cleaned)
		})
	}
}

func TestCardCleanerMissingColumnFailsFast(t *testing.T) {
	record := validCardRecord()
	delete(record, "expiry_date")

	_, err := NewCardCleaner().Clean(Table{record})
	assert.Error(t, err)
}
