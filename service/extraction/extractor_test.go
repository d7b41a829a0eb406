/*
 * @module service/extraction/extractor_test
 * @description 数据抽取器单元测试，使用httptest模拟门店API和对象存储
 * @architecture 测试层 - httptest模拟外部HTTP依赖
 * @documentReference .specify/memory/test_plan.md
 * @stateFlow 模拟服务启动 -> 抽取调用 -> 表结构验证
 * @rules 验证API鉴权头、分页抓取顺序和CSV/JSON两种编排的解析
 * @dependencies testing, testify, net/http/httptest
 * @refs extractor.go
 */

package extraction

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNumberOfStores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		fmt.Fprint(w, `{"number_stores": 451}`)
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "test-key")
	count, err := extractor.ListNumberOfStores(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 451, count)
}

func TestRetrieveStoresData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"store_code": "ST-%s", "store_type": "Local"}`, r.URL.Path[len("/store_details/"):])
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "test-key")
	table, err := extractor.RetrieveStoresData(context.Background(), server.URL, 3)
	require.NoError(t, err)
	require.Len(t, table, 3)

	// 抓取顺序即行序
	assert.Equal(t, "ST-0", table[0]["store_code"])
	assert.Equal(t, "ST-2", table[2]["store_code"])
}

func TestExtractCSVFromS3(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "product_name,weight,category\nLamp,1.6kg,homeware\nBall,500g,toys-and-games\n")
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "")
	table, err := extractor.ExtractCSVFromS3(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "Lamp", table[0]["product_name"])
	assert.Equal(t, "500g", table[1]["weight"])
}

func TestExtractJSONFromS3RecordArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"timestamp": "22:00:10", "year": "2012"}, {"timestamp": "09:15:00", "year": "2013"}]`)
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "")
	table, err := extractor.ExtractJSONFromS3(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "22:00:10", table[0]["timestamp"])
}

func TestExtractJSONFromS3Columnar(t *testing.T) {
	// pandas列式编排：字段 -> 行号 -> 值，行号按数值序还原
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"timestamp": {"0": "22:00:10", "1": "09:15:00", "10": "12:30:00"}, "year": {"0": "2012", "1": "2013", "10": "2014"}}`)
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "")
	table, err := extractor.ExtractJSONFromS3(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.Equal(t, "22:00:10", table[0]["timestamp"])
	assert.Equal(t, "09:15:00", table[1]["timestamp"])
	assert.Equal(t, "2014", table[2]["year"])
}

func TestRewriteS3Address(t *testing.T) {
	assert.Equal(t,
		"https://data-handling-public.s3.amazonaws.com/products.csv",
		rewriteS3Address("s3://data-handling-public/products.csv"))
	assert.Equal(t, "https://example.com/a.csv", rewriteS3Address("https://example.com/a.csv"))
}

func TestHTTPGetNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	extractor := NewDataExtractor(nil, "")
	_, err := extractor.ListNumberOfStores(context.Background(), server.URL)
	assert.Error(t, err)
}
