/*
 * @module service/etl/pipeline
 * @description ETL编排：按实体从数据源抽取、执行清洗管道、替换式写入数据仓库并记录运行历史
 * @architecture 分层架构 - 业务编排层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 抽取 -> 清洗 -> 入库 -> 运行记录落库 -> 事件发布
 * @rules 各实体管道相互独立；单实体失败不中断全量运行；运行历史一次运行一条记录
 * @dependencies retail-etl-service/service/cleaning, retail-etl-service/service/extraction, retail-etl-service/service/database
 * @refs api/controllers/etl_controller, service/scheduler
 */

package etl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"retail-etl-service/service/cleaning"
	"retail-etl-service/service/database"
	"retail-etl-service/service/meta"
	"retail-etl-service/service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Extractor 数据抽取接口，由extraction.DataExtractor实现
type Extractor interface {
	ReadRDSTable(ctx context.Context, tableName string) (models.Table, error)
	ListNumberOfStores(ctx context.Context, endpoint string) (int, error)
	RetrieveStoresData(ctx context.Context, endpointTemplate string, numStores int) (models.Table, error)
	ExtractCSVFromS3(ctx context.Context, address string) (models.Table, error)
	ExtractJSONFromS3(ctx context.Context, address string) (models.Table, error)
}

// SourceConfig 各实体数据源位置配置
type SourceConfig struct {
	UsersTable           string // 源端用户表名
	OrdersTable          string // 源端订单表名
	CardsCSVAddress      string // 卡明细CSV地址
	ProductsCSVAddress   string // 商品CSV地址
	DateDetailsAddress   string // 日期时间维度JSON地址
	StoreCountEndpoint   string // 门店总数API端点
	StoreDetailsEndpoint string // 门店详情API端点模板
}

// LoadSourceConfigFromEnv 从环境变量加载数据源配置
func LoadSourceConfigFromEnv() SourceConfig {
	return SourceConfig{
		UsersTable:           getEnvWithDefault("USERS_SOURCE_TABLE", "legacy_users"),
		OrdersTable:          getEnvWithDefault("ORDERS_SOURCE_TABLE", "orders_table"),
		CardsCSVAddress:      os.Getenv("CARDS_CSV_ADDRESS"),
		ProductsCSVAddress:   os.Getenv("PRODUCTS_CSV_ADDRESS"),
		DateDetailsAddress:   os.Getenv("DATE_DETAILS_JSON_ADDRESS"),
		StoreCountEndpoint:   os.Getenv("STORE_COUNT_ENDPOINT"),
		StoreDetailsEndpoint: os.Getenv("STORE_DETAILS_ENDPOINT"),
	}
}

// Service ETL编排服务
type Service struct {
	extractor Extractor
	warehouse *database.Connector
	runDB     *gorm.DB
	publisher *RunEventPublisher
	sources   SourceConfig
}

// NewService 创建ETL编排服务实例
// runDB 用于运行历史记录，可与数据仓库共用连接；publisher 可以为nil（不发布事件）
func NewService(extractor Extractor, warehouse *database.Connector, runDB *gorm.DB, publisher *RunEventPublisher, sources SourceConfig) *Service {
	return &Service{
		extractor: extractor,
		warehouse: warehouse,
		runDB:     runDB,
		publisher: publisher,
		sources:   sources,
	}
}

// RunEntity 执行单个实体的完整ETL管道
func (s *Service) RunEntity(ctx context.Context, entity string) (*models.EtlRun, error) {
	if !meta.IsValidEntity(entity) {
		return nil, fmt.Errorf("不支持的实体类型: %s", entity)
	}

	run := &models.EtlRun{
		ID:          uuid.NewString(),
		Entity:      entity,
		TargetTable: meta.GetTargetTable(entity),
		Status:      models.EtlRunStatusRunning,
		StartedAt:   time.Now(),
	}
	s.saveRun(run)

	table, err := s.extract(ctx, entity)
	if err != nil {
		return run, s.failRun(run, fmt.Errorf("抽取 %s 失败: %w", entity, err))
	}
	run.RowsExtracted = len(table)
	rowsExtracted.WithLabelValues(entity).Add(float64(len(table)))

	cleaned, stats, err := cleaning.Clean(entity, table)
	if err != nil {
		return run, s.failRun(run, fmt.Errorf("清洗 %s 失败: %w", entity, err))
	}
	run.RowsDropped = stats.RowsDropped
	rowsDropped.WithLabelValues(entity).Add(float64(stats.RowsDropped))

	if err := s.warehouse.Upload(ctx, cleaned, run.TargetTable); err != nil {
		return run, s.failRun(run, fmt.Errorf("入库 %s 失败: %w", entity, err))
	}
	run.RowsLoaded = stats.RowsOut
	rowsLoaded.WithLabelValues(entity).Add(float64(stats.RowsOut))

	run.Status = models.EtlRunStatusSuccess
	run.FinishedAt = time.Now()
	run.DurationMs = time.Since(run.StartedAt).Milliseconds()
	runDuration.WithLabelValues(entity).Observe(time.Since(run.StartedAt).Seconds())
	s.saveRun(run)

	s.publishCompletion(ctx, run)
	slog.Info("ETL运行完成",
		"entity", entity,
		"rows_extracted", run.RowsExtracted,
		"rows_loaded", run.RowsLoaded,
		"rows_dropped", run.RowsDropped,
	)
	return run, nil
}

// RunAll 顺序执行全部实体管道，单实体失败不影响其余实体
func (s *Service) RunAll(ctx context.Context) ([]*models.EtlRun, error) {
	runs := make([]*models.EtlRun, 0, len(meta.GetAllEntities()))
	var errs []error

	for _, entity := range meta.GetAllEntities() {
		run, err := s.RunEntity(ctx, entity)
		if run != nil {
			runs = append(runs, run)
		}
		if err != nil {
			slog.Error("实体管道运行失败", "entity", entity, "error", err)
			errs = append(errs, err)
		}
	}
	return runs, errors.Join(errs...)
}

// ListRuns 按开始时间倒序查询运行历史
func (s *Service) ListRuns(limit int) ([]models.EtlRun, error) {
	if s.runDB == nil {
		return nil, fmt.Errorf("运行历史存储未配置")
	}
	if limit <= 0 {
		limit = 50
	}

	var runs []models.EtlRun
	if err := s.runDB.Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("查询运行历史失败: %w", err)
	}
	return runs, nil
}

// extract 按实体路由到对应的数据源
func (s *Service) extract(ctx context.Context, entity string) (models.Table, error) {
	switch entity {
	case meta.EntityUsers:
		return s.extractor.ReadRDSTable(ctx, s.sources.UsersTable)
	case meta.EntityOrders:
		return s.extractor.ReadRDSTable(ctx, s.sources.OrdersTable)
	case meta.EntityCards:
		return s.extractor.ExtractCSVFromS3(ctx, s.sources.CardsCSVAddress)
	case meta.EntityProducts:
		return s.extractor.ExtractCSVFromS3(ctx, s.sources.ProductsCSVAddress)
	case meta.EntityDateTimes:
		return s.extractor.ExtractJSONFromS3(ctx, s.sources.DateDetailsAddress)
	case meta.EntityStores:
		numStores, err := s.extractor.ListNumberOfStores(ctx, s.sources.StoreCountEndpoint)
		if err != nil {
			return nil, err
		}
		return s.extractor.RetrieveStoresData(ctx, s.sources.StoreDetailsEndpoint, numStores)
	}
	return nil, fmt.Errorf("不支持的实体类型: %s", entity)
}

func (s *Service) failRun(run *models.EtlRun, err error) error {
	run.Status = models.EtlRunStatusFailed
	run.ErrorMessage = err.Error()
	run.FinishedAt = time.Now()
	run.DurationMs = time.Since(run.StartedAt).Milliseconds()
	s.saveRun(run)
	return err
}

func (s *Service) saveRun(run *models.EtlRun) {
	if s.runDB == nil {
		return
	}
	if err := s.runDB.Save(run).Error; err != nil {
		slog.Error("保存运行记录失败", "run_id", run.ID, "error", err)
	}
}

func (s *Service) publishCompletion(ctx context.Context, run *models.EtlRun) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRunCompleted(ctx, run); err != nil {
		slog.Error("发布运行完成事件失败", "run_id", run.ID, "error", err)
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
