/**
 * @module SchedulerService
 * @description ETL定时调度器服务，按Cron表达式周期性执行全量ETL运行
 * @architecture 基于Go协程和cron库的调度器模式
 * @documentReference ../ai_docs/cleaning_engine_design.md
 * @stateFlow 调度器启动 -> 到点触发 -> 分布式锁防重 -> 全量ETL运行
 * @rules 多实例部署时通过分布式锁保证同一时刻只有一个实例执行运行
 * @dependencies cron库, etl服务, distributed_lock
 * @refs ../etl/pipeline.go, ../distributed_lock/redis_lock.go
 */

package scheduler

import (
	"context"
	"log/slog"
	"time"

	"retail-etl-service/service/distributed_lock"
	"retail-etl-service/service/etl"

	"github.com/robfig/cron/v3"
)

// 全量运行锁的过期时间，需覆盖最慢的一次全量运行
const runLockTTL = 30 * time.Minute

// SchedulerService ETL定时调度器服务
type SchedulerService struct {
	etlService *etl.Service
	lock       distributed_lock.DistributedLock
	cron       *cron.Cron
	spec       string
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewSchedulerService 创建调度器服务
// spec 为标准五段Cron表达式；lock 可以为nil（单实例部署不加锁）
func NewSchedulerService(etlService *etl.Service, lock distributed_lock.DistributedLock, spec string) *SchedulerService {
	ctx, cancel := context.WithCancel(context.Background())

	return &SchedulerService{
		etlService: etlService,
		lock:       lock,
		cron:       cron.New(),
		spec:       spec,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start 启动调度器
func (s *SchedulerService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runAll); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("ETL调度器启动完成", "cron", s.spec)
	return nil
}

// Stop 停止调度器，等待在途任务结束
func (s *SchedulerService) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	slog.Info("ETL调度器已停止")
}

func (s *SchedulerService) runAll() {
	run := func() error {
		_, err := s.etlService.RunAll(s.ctx)
		return err
	}

	var err error
	if s.lock != nil {
		err = distributed_lock.ExecuteWithLock(s.ctx, s.lock, "full_run", runLockTTL, run)
	} else {
		err = run()
	}

	if err != nil {
		slog.Error("定时全量ETL运行失败", "error", err)
	}
}
