/*
 * @module service/extraction/extractor
 * @description 数据抽取器：关系库全表读取、分页门店API抓取、对象存储CSV/JSON下载解析
 * @architecture 分层架构 - 数据接入层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 数据源定位 -> 原始数据拉取 -> 表结构化 -> 交给清洗管道
 * @rules 抽取只做结构化不做清洗；网络请求全部携带context超时控制
 * @dependencies gorm.io/gorm, net/http, encoding/csv
 * @refs service/etl, service/database
 */

package extraction

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"retail-etl-service/service/models"

	"gorm.io/gorm"
)

// DataExtractor 数据抽取器，聚合本系统支持的全部数据源类型
type DataExtractor struct {
	db         *gorm.DB
	httpClient *http.Client
	apiKey     string
}

// NewDataExtractor 创建数据抽取器实例
// db 为源端关系库连接，可以为nil（仅使用HTTP类数据源时）
func NewDataExtractor(db *gorm.DB, apiKey string) *DataExtractor {
	return &DataExtractor{
		db:         db,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
	}
}

// ReadRDSTable 从源端关系库读取整张表
func (e *DataExtractor) ReadRDSTable(ctx context.Context, tableName string) (models.Table, error) {
	if e.db == nil {
		return nil, fmt.Errorf("源端数据库未配置")
	}

	var rows []map[string]interface{}
	if err := e.db.WithContext(ctx).Table(tableName).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("读取源表 %s 失败: %w", tableName, err)
	}

	table := make(models.Table, 0, len(rows))
	for _, row := range rows {
		table = append(table, models.Record(row))
	}
	return table, nil
}

// ListNumberOfStores 从门店API获取门店总数
func (e *DataExtractor) ListNumberOfStores(ctx context.Context, endpoint string) (int, error) {
	body, err := e.httpGet(ctx, endpoint)
	if err != nil {
		return 0, err
	}

	var payload struct {
		NumberStores int `json:"number_stores"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("解析门店总数响应失败: %w", err)
	}
	return payload.NumberStores, nil
}

// RetrieveStoresData 按门店编号逐个抓取门店详情，组装为一张表
func (e *DataExtractor) RetrieveStoresData(ctx context.Context, endpointTemplate string, numStores int) (models.Table, error) {
	table := make(models.Table, 0, numStores)

	for store := 0; store < numStores; store++ {
		endpoint := fmt.Sprintf("%s/store_details/%d", strings.TrimRight(endpointTemplate, "/"), store)
		body, err := e.httpGet(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("抓取门店 %d 详情失败: %w", store, err)
		}

		var record models.Record
		if err := json.Unmarshal(body, &record); err != nil {
			return nil, fmt.Errorf("解析门店 %d 详情失败: %w", store, err)
		}
		table = append(table, record)
	}
	return table, nil
}

// ExtractCSVFromS3 下载并解析对象存储中的CSV文件
// 地址支持 s3://bucket/key 形式（改写为公开HTTPS地址）或直接的HTTP(S)地址
func (e *DataExtractor) ExtractCSVFromS3(ctx context.Context, address string) (models.Table, error) {
	body, err := e.httpGet(ctx, rewriteS3Address(address))
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(body)))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("解析CSV内容失败: %w", err)
	}
	if len(rows) == 0 {
		return models.Table{}, nil
	}

	header := rows[0]
	table := make(models.Table, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		record := make(models.Record, len(header))
		for i, field := range header {
			if i < len(cells) {
				record[field] = cells[i]
			} else {
				record[field] = nil
			}
		}
		table = append(table, record)
	}
	return table, nil
}

// ExtractJSONFromS3 下载并解析对象存储中的JSON文件
// 同时支持记录数组和列式（字段 -> 行号 -> 值）两种编排
func (e *DataExtractor) ExtractJSONFromS3(ctx context.Context, address string) (models.Table, error) {
	body, err := e.httpGet(ctx, rewriteS3Address(address))
	if err != nil {
		return nil, err
	}

	var records []models.Record
	if err := json.Unmarshal(body, &records); err == nil {
		return models.Table(records), nil
	}

	var columnar map[string]map[string]interface{}
	if err := json.Unmarshal(body, &columnar); err != nil {
		return nil, fmt.Errorf("解析JSON内容失败: %w", err)
	}
	return pivotColumnar(columnar), nil
}

// pivotColumnar 将列式编排转置为记录序列，按行号数值排序保证行序稳定
func pivotColumnar(columnar map[string]map[string]interface{}) models.Table {
	indexSet := map[string]bool{}
	for _, column := range columnar {
		for index := range column {
			indexSet[index] = true
		}
	}

	indexes := make([]string, 0, len(indexSet))
	for index := range indexSet {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool {
		a, errA := strconv.Atoi(indexes[i])
		b, errB := strconv.Atoi(indexes[j])
		if errA != nil || errB != nil {
			return indexes[i] < indexes[j]
		}
		return a < b
	})

	table := make(models.Table, 0, len(indexes))
	for _, index := range indexes {
		record := make(models.Record, len(columnar))
		for field, column := range columnar {
			value, exists := column[index]
			if !exists {
				value = nil
			}
			record[field] = value
		}
		table = append(table, record)
	}
	return table
}

// rewriteS3Address 将 s3://bucket/key 改写为公开HTTPS地址，其余地址原样返回
func rewriteS3Address(address string) string {
	if !strings.HasPrefix(address, "s3://") {
		return address
	}
	trimmed := strings.TrimPrefix(address, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 {
		return address
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", parts[0], parts[1])
}

func (e *DataExtractor) httpGet(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	if e.apiKey != "" {
		req.Header.Set("x-api-key", e.apiKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 %s 失败: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("请求 %s 返回状态码 %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}
	return body, nil
}
