/*
 * @module service/etl/events
 * @description ETL运行完成事件发布器，向Kafka主题投递运行结果供下游订阅
 * @architecture 适配器模式 - 封装Kafka生产者
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 运行完成 -> 事件序列化 -> Kafka投递
 * @rules 事件发布是尽力而为的旁路能力，失败只记日志不影响管道结果
 * @dependencies github.com/segmentio/kafka-go
 * @refs service/etl/pipeline
 */

package etl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"retail-etl-service/service/models"

	"github.com/segmentio/kafka-go"
)

// RunEventPublisher ETL运行事件发布器
type RunEventPublisher struct {
	writer *kafka.Writer
}

// NewRunEventPublisherFromEnv 从环境变量创建事件发布器
// 未配置 KAFKA_BROKERS 时返回nil，管道以无事件模式运行
func NewRunEventPublisherFromEnv() *RunEventPublisher {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "etl-run-events"
	}

	return &RunEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 10 * time.Second,
		},
	}
}

// PublishRunCompleted 发布一条运行完成事件，事件键为实体类型
func (p *RunEventPublisher) PublishRunCompleted(ctx context.Context, run *models.EtlRun) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("序列化运行事件失败: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(run.Entity),
		Value: payload,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("投递运行事件失败: %w", err)
	}
	return nil
}

// Close 关闭底层Kafka生产者
func (p *RunEventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
