/*
 * @module service/models/etl_models
 * @description ETL运行记录与清洗统计模型定义
 * @architecture 分层架构 - 数据模型层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow ETL任务启动 -> 运行记录创建 -> 统计更新 -> 状态落库
 * @rules 每次实体管道运行产生一条EtlRun记录，统计数字只增不减
 * @dependencies gorm.io/gorm
 * @refs service/etl, api/controllers
 */

package models

import "time"

// ETL运行状态常量
const (
	EtlRunStatusRunning = "running"
	EtlRunStatusSuccess = "success"
	EtlRunStatusFailed  = "failed"
)

// EtlRun ETL运行记录
type EtlRun struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Entity        string    `json:"entity" gorm:"not null;size:50;index"`
	TargetTable   string    `json:"target_table" gorm:"size:100"`
	Status        string    `json:"status" gorm:"not null;size:20"`
	RowsExtracted int       `json:"rows_extracted"`
	RowsLoaded    int       `json:"rows_loaded"`
	RowsDropped   int       `json:"rows_dropped"`
	ErrorMessage  string    `json:"error_message,omitempty" gorm:"size:2000"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	DurationMs    int64     `json:"duration_ms"`
}

// TableName 指定表名
func (EtlRun) TableName() string {
	return "etl_runs"
}

// CleanStats 单次清洗的行数统计
type CleanStats struct {
	RowsIn      int `json:"rows_in"`
	RowsOut     int `json:"rows_out"`
	RowsDropped int `json:"rows_dropped"`
}

// CleanResponse 清洗接口响应数据
type CleanResponse struct {
	Entity string     `json:"entity"`
	Stats  CleanStats `json:"stats"`
	Rows   Table      `json:"rows"`
}
