/*
 * @module service/cleaning/user_cleaner_test
 * @description 用户实体清洗管道单元测试
 * @architecture 测试层 - 纯函数测试，无外部依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 构造脏数据表 -> 清洗 -> 逐行验证
 * @rules 覆盖国家码修复、一致性过滤、邮箱置缺失、姓名修整、哨兵丢弃和幂等性
 * @dependencies testing, testify
 * @refs user_cleaner.go
 */

package cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserRecord() Record {
	return Record{
		"first_name":    "Sigfried",
		"last_name":     "Noack",
		"date_of_birth": "1990-09-30",
		"join_date":     "2018-10-10",
		"phone_number":  "+44 20 7946 0958",
		"country":       "United Kingdom",
		"country_code":  "GB",
		"email_address": "sigfried.noack@example.com",
	}
}

func TestUserCleanerHappyPath(t *testing.T) {
	cleaner := NewUserCleaner()
	table := Table{validUserRecord()}

	cleaned, err := cleaner.Clean(table)
	require.NoError(t, err)
	require.Len(t, cleaned, 1)

	record := cleaned[0]
	assert.Equal(t, time.Date(1990, 9, 30, 0, 0, 0, 0, time.UTC), record["date_of_birth"])
	assert.Equal(t, time.Date(2018, 10, 10, 0, 0, 0, 0, time.UTC), record["join_date"])
	assert.Equal(t, "442079460958", record["phone_number"])
	assert.Equal(t, "GB", record["country_code"])
}

func TestUserCleanerCountryCodeRepair(t *testing.T) {
	record := validUserRecord()
	record["country_code"] = "GBB"

	cleaned, err := NewUserCleaner().Clean(Table{record})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "GB", cleaned[0]["country_code"])
}

func TestUserCleanerRowRejections(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(Record)
	}{
		{
			name: "国家与国家码不一致",
			mutate: func(r Record) {
				r["country"] = "Germany"
				r["country_code"] = "US"
			},
		},
		{
			name: "不受支持的国家码",
			mutate: func(r Record) {
				r["country_code"] = "FR"
			},
		},
		{
			name: "电话号码不合规",
			mutate: func(r Record) {
				r["phone_number"] = "123"
			},
		},
		{
			name: "出生日期无法解析",
			mutate: func(r Record) {
				r["date_of_birth"] = "QMAVR5H3LD"
			},
		},
		{
			name: "注册日期无法解析",
			mutate: func(r Record) {
				r["join_date"] = "XXXX"
			},
		},
		{
			name: "哨兵值NULL",
			mutate: func(r Record) {
				r["last_name"] = "NULL"
			},
		},
		{
			name: "邮箱缺少@和点导致字段缺失后丢行",
			mutate: func(r Record) {
				r["email_address"] = "not-an-email"
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := validUserRecord()
			tc.mutate(record)

			cleaned, err := NewUserCleaner().Clean(Table{record})
			require.NoError(t, err)
			assert.Empty(t, cleaned)
		})
	}
}

func TestUserCleanerNameSanitization(t *testing.T) {
	record := validUserRecord()
	record["first_name"] = "Sig-fried3"
	record["last_name"] = "No ack!"

	cleaned, err := NewUserCleaner().Clean(Table{record})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "Sigfried", cleaned[0]["first_name"])
	assert.Equal(t, "No ack", cleaned[0]["last_name"])
}

func TestUserCleanerPreservesSurvivorOrder(t *testing.T) {
	first := validUserRecord()
	first["first_name"] = "Alice"
	dropped := validUserRecord()
	dropped["phone_number"] = "123"
	last := validUserRecord()
	last["first_name"] = "Carol"

	cleaned, err := NewUserCleaner().Clean(Table{first, dropped, last})
	require.NoError(t, err)
	require.Len(t, cleaned, 2)
	assert.Equal(t, "Alice", cleaned[0]["first_name"])
	assert.Equal(t, "Carol", cleaned[1]["first_name"])
}

func TestUserCleanerMissingColumnFailsFast(t *testing.T) {
	record := validUserRecord()
	delete(record, "country_code")

	_, err := NewUserCleaner().Clean(Table{record})
	assert.Error(t, err)
}
