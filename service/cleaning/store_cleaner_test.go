/*
 * @module service/cleaning/store_cleaner_test
 * @description 门店实体清洗管道单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 构造脏数据表 -> 清洗 -> 逐行验证
 * @rules 覆盖大洲修复、类型枚举、经纬度范围、冗余列删除和线上门店坐标缺失保留
 * @dependencies testing, testify
 * @refs store_cleaner.go
 */

package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStoreRecord() Record {
	return Record{
		"store_code":   "HI-9B97EE4E",
		"store_type":   "Local",
		"continent":    "Europe",
		"country_code": "GB",
		"latitude":     "51.62907",
		"longitude":    "-0.74934",
		"lat":          "51.62907",
		"opening_date": "2012-05-05",
	}
}

func TestStoreCleanerHappyPath(t *testing.T) {
	cleaned, err := NewStoreCleaner().Clean(Table{validStoreRecord()})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)

	record := cleaned[0]
	assert.Equal(t, 51.62907, record["latitude"])
	assert.Equal(t, -0.74934, record["longitude"])
	assert.False(t, record.HasField("lat"), "冗余lat列必须被删除")
}

func TestStoreCleanerContinentRepair(t *testing.T) {
	record := validStoreRecord()
	record["continent"] = "eeEurope"

	cleaned, err := NewStoreCleaner().Clean(Table{record})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "Europe", cleaned[0]["continent"])
}

func TestStoreCleanerWebPortalWithoutCoordinates(t *testing.T) {
	// 线上门店没有实体坐标，不可解析的坐标置缺失但保留行
	record := validStoreRecord()
	record["store_type"] = "Web Portal"
	record["latitude"] = "N/A"
	record["longitude"] = "N/A"

	cleaned, err := NewStoreCleaner().Clean(Table{record})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Nil(t, cleaned[0]["latitude"])
	assert.Nil(t, cleaned[0]["longitude"])
}

func TestStoreCleanerUnparseableOpeningDateKeptAbsent(t *testing.T) {
	// 门店管道末尾没有整行缺失过滤，开业日期不可解析仅置缺失不丢行
	record := validStoreRecord()
	record["opening_date"] = "GYSATSCN"

	cleaned, err := NewStoreCleaner().Clean(Table{record})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Nil(t, cleaned[0]["opening_date"])
}

func TestStoreCleanerRowRejections(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(Record)
	}{
		{
			name: "大洲与国家码不一致",
			mutate: func(r Record) {
				r["continent"] = "America"
			},
		},
		{
			name: "门店类型不在枚举内",
			mutate: func(r Record) {
				r["store_type"] = "Pop-up"
			},
		},
		{
			name: "纬度越界",
			mutate: func(r Record) {
				r["latitude"] = "95.0"
			},
		},
		{
			name: "经度越界",
			mutate: func(r Record) {
				r["longitude"] = "-190.0"
			},
		},
		{
			name: "哨兵值NULL",
			mutate: func(r Record) {
				r["store_code"] = "NULL"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := validStoreRecord()
			tc.mutate(record)

			cleaned, err := NewStoreCleaner().Clean(Table{record})
			require.NoError(t, err)
			assert.Empty(t, cleaned)
		})
	}
}

func TestStoreCleanerMissingColumnFailsFast(t *testing.T) {
	record := validStoreRecord()
	delete(record, "store_type")

	_, err := NewStoreCleaner().Clean(Table{record})
	assert.Error(t, err)
}
