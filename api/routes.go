/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers, service/init.go
 */

package api

import (
	"retail-etl-service/api/controllers"
	apimiddleware "retail-etl-service/api/middleware"
	"retail-etl-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 清洗引擎（纯函数暴露）
	cleanController := controllers.NewCleanController()
	r.Route("/clean", func(r chi.Router) {
		r.Use(apimiddleware.APIKeyAuth)
		r.Get("/entities", cleanController.GetEntities)
		r.Post("/{entity}", cleanController.CleanTable)
	})

	// ETL编排
	etlController := controllers.NewEtlController(service.GlobalEtlService)
	r.Route("/etl", func(r chi.Router) {
		r.Use(apimiddleware.APIKeyAuth)
		r.Post("/run", etlController.RunAll)
		r.Post("/run/{entity}", etlController.RunEntity)
		r.Get("/runs", etlController.ListRuns)
	})
}
