/*
 * @module service/etl/metrics
 * @description ETL运行指标：按实体维度统计抽取/入库/丢弃行数和运行耗时
 * @architecture 分层架构 - 可观测层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 管道执行 -> 指标更新 -> /metrics暴露
 * @rules 指标只在管道执行路径更新，标签维度固定为实体类型
 * @dependencies github.com/prometheus/client_golang
 * @refs service/etl/pipeline, main.go
 */

package etl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rowsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_rows_extracted_total",
		Help: "各实体从数据源抽取的累计行数",
	}, []string{"entity"})

	rowsLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_rows_loaded_total",
		Help: "各实体清洗后写入数据仓库的累计行数",
	}, []string{"entity"})

	rowsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "etl_rows_dropped_total",
		Help: "各实体清洗过程中丢弃的累计行数",
	}, []string{"entity"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "etl_run_duration_seconds",
		Help:    "各实体单次ETL运行耗时",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
)
