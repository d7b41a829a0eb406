/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、数据源配置和ETL编排服务的装配
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 数据仓库连接失败立即终止进程；源端库、Kafka、Redis、调度均为可选能力
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres
 * @refs api/routes.go, service/etl
 */

package service

import (
	"log"
	"os"

	"retail-etl-service/service/database"
	"retail-etl-service/service/distributed_lock"
	"retail-etl-service/service/etl"
	"retail-etl-service/service/extraction"
	"retail-etl-service/service/models"
	"retail-etl-service/service/scheduler"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	// DB 数据仓库连接，运行历史也记录在此
	DB *gorm.DB

	GlobalExtractor        *extraction.DataExtractor
	GlobalConnector        *database.Connector
	GlobalEtlService       *etl.Service
	GlobalSchedulerService *scheduler.SchedulerService
)

func init() {
	initWarehouse()
	runMigrations()
	initServices()
}

// initWarehouse 初始化数据仓库连接
func initWarehouse() {
	var err error

	// 优先使用DATABASE_URL环境变量，其次是YAML凭据文件
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		credsFile := getEnvWithDefault("DB_CREDS_FILE", "db_creds.yaml")
		var connector *database.Connector
		connector, err = database.NewConnectorFromCredsFile(credsFile)
		if err == nil {
			DB = connector.DB()
		}
	}
	if err != nil {
		log.Fatalf("数据仓库连接失败: %v", err)
	}

	log.Println("数据仓库连接成功")
}

// runMigrations 运行数据库迁移
func runMigrations() {
	if err := DB.AutoMigrate(&models.EtlRun{}); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	log.Println("数据库表结构迁移完成")
}

// initServices 初始化服务
func initServices() {
	GlobalConnector = database.NewConnector(DB)
	GlobalExtractor = extraction.NewDataExtractor(initSourceDB(), os.Getenv("STORE_API_KEY"))

	publisher := etl.NewRunEventPublisherFromEnv()
	GlobalEtlService = etl.NewService(
		GlobalExtractor,
		GlobalConnector,
		DB,
		publisher,
		etl.LoadSourceConfigFromEnv(),
	)

	// 配置了Cron表达式才启动定时调度
	if spec := os.Getenv("ETL_CRON"); spec != "" {
		GlobalSchedulerService = scheduler.NewSchedulerService(GlobalEtlService, initRunLock(), spec)
		if err := GlobalSchedulerService.Start(); err != nil {
			log.Printf("启动ETL调度器失败: %v", err)
		}
	}

	log.Println("服务初始化完成")
}

// initSourceDB 初始化源端关系库连接，未配置时返回nil（仅HTTP类数据源可用）
func initSourceDB() *gorm.DB {
	sourceURL := os.Getenv("SOURCE_DATABASE_URL")
	if sourceURL == "" {
		return nil
	}

	sourceDB, err := gorm.Open(postgres.Open(sourceURL), &gorm.Config{})
	if err != nil {
		log.Printf("源端数据库连接失败: %v", err)
		return nil
	}
	return sourceDB
}

// initRunLock 初始化调度防重锁，未配置Redis时返回nil（单实例不加锁）
func initRunLock() distributed_lock.DistributedLock {
	if os.Getenv("REDIS_HOST") == "" {
		return nil
	}

	lock, err := distributed_lock.NewRedisLock()
	if err != nil {
		log.Printf("初始化分布式锁失败，降级为无锁调度: %v", err)
		return nil
	}
	return lock
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
