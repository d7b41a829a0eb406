/*
 * @module service/database/connector
 * @description 数据仓库连接器：YAML凭据加载、gorm引擎初始化、表清单查询和清洗结果替换式入库
 * @architecture 分层架构 - 数据持久层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 凭据加载 -> 引擎初始化 -> 目标表替换写入
 * @rules 入库采用替换语义：先删目标表再按清洗结果重建；列定义由首行值类型推导
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres, gopkg.in/yaml.v3
 * @refs service/etl, service/init
 */

package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"retail-etl-service/service/models"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 批量插入的单批行数
const uploadBatchSize = 500

// Credentials 数据库凭据，与 db_creds.yaml 字段对应
type Credentials struct {
	Host     string `yaml:"RDS_HOST"`
	Port     int    `yaml:"RDS_PORT"`
	User     string `yaml:"RDS_USER"`
	Password string `yaml:"RDS_PASSWORD"`
	Database string `yaml:"RDS_DATABASE"`
}

// Connector 数据仓库连接器
type Connector struct {
	db *gorm.DB
}

// NewConnector 使用已有gorm连接创建连接器
func NewConnector(db *gorm.DB) *Connector {
	return &Connector{db: db}
}

// NewConnectorFromCredsFile 从YAML凭据文件创建连接器
func NewConnectorFromCredsFile(filename string) (*Connector, error) {
	creds, err := ReadCredentials(filename)
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		creds.Host, creds.Port, creds.User, creds.Password, creds.Database)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据仓库失败: %w", err)
	}
	return &Connector{db: db}, nil
}

// ReadCredentials 读取YAML凭据文件
func ReadCredentials(filename string) (*Credentials, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("读取凭据文件 %s 失败: %w", filename, err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(content, &creds); err != nil {
		return nil, fmt.Errorf("解析凭据文件失败: %w", err)
	}
	return &creds, nil
}

// DB 获取底层gorm连接
func (c *Connector) DB() *gorm.DB {
	return c.db
}

// ListTables 列出数据仓库中的所有表
func (c *Connector) ListTables() ([]string, error) {
	tables, err := c.db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("获取表清单失败: %w", err)
	}
	return tables, nil
}

// Upload 将清洗后的表以替换语义写入目标表
// 先删除已有目标表，再按首行值类型推导列定义重建并批量插入
// 空表没有首行可供推导列定义，只删除旧表不重建
func (c *Connector) Upload(ctx context.Context, table models.Table, tableName string) error {
	db := c.db.WithContext(ctx)

	if err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %q`, tableName)).Error; err != nil {
		return fmt.Errorf("删除目标表 %s 失败: %w", tableName, err)
	}

	if len(table) == 0 {
		slog.Warn("清洗结果为空表，跳过目标表重建", "table", tableName)
		return nil
	}

	columns := sortedColumns(table[0])
	if err := db.Exec(buildCreateTableDDL(tableName, table[0], columns)).Error; err != nil {
		return fmt.Errorf("重建目标表 %s 失败: %w", tableName, err)
	}

	for start := 0; start < len(table); start += uploadBatchSize {
		end := start + uploadBatchSize
		if end > len(table) {
			end = len(table)
		}

		batch := make([]map[string]interface{}, 0, end-start)
		for _, record := range table[start:end] {
			batch = append(batch, map[string]interface{}(record))
		}
		if err := db.Table(tableName).Create(batch).Error; err != nil {
			return fmt.Errorf("写入目标表 %s 失败: %w", tableName, err)
		}
	}
	return nil
}

// sortedColumns 按字段名排序得到稳定的列顺序
func sortedColumns(record models.Record) []string {
	columns := make([]string, 0, len(record))
	for field := range record {
		columns = append(columns, field)
	}
	sort.Strings(columns)
	return columns
}

// buildCreateTableDDL 按首行值的Go类型推导列类型生成建表语句
func buildCreateTableDDL(tableName string, sample models.Record, columns []string) string {
	definitions := make([]string, 0, len(columns))
	for _, column := range columns {
		definitions = append(definitions, fmt.Sprintf("%q %s", column, columnType(sample[column])))
	}
	return fmt.Sprintf(`CREATE TABLE %q (%s)`, tableName, strings.Join(definitions, ", "))
}

func columnType(value interface{}) string {
	switch value.(type) {
	case time.Time:
		return "timestamp"
	case int, int64:
		return "bigint"
	case float32, float64:
		return "double precision"
	default:
		return "text"
	}
}
