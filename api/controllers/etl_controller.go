/*
 * @module api/controllers/etl_controller
 * @description ETL控制器，提供按实体/全量触发ETL运行和运行历史查询
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 请求接收 -> ETL编排调用 -> 响应返回
 * @rules 运行触发是同步执行，调用方应设置充足的请求超时
 * @dependencies net/http, retail-etl-service/service/etl
 * @refs service/etl, api/routes.go
 */

package controllers

import (
	"net/http"
	"strconv"

	"retail-etl-service/service/etl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// EtlController ETL控制器
type EtlController struct {
	etlService *etl.Service
}

// NewEtlController 创建ETL控制器实例
func NewEtlController(etlService *etl.Service) *EtlController {
	return &EtlController{etlService: etlService}
}

// RunAll 触发全量ETL运行
// @Summary 触发全量ETL运行
// @Description 顺序执行全部实体的抽取、清洗、入库管道
// @Tags ETL
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.EtlRun}
// @Failure 500 {object} APIResponse
// @Router /etl/run [post]
func (c *EtlController) RunAll(w http.ResponseWriter, r *http.Request) {
	runs, err := c.etlService.RunAll(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, &APIResponse{Status: 1, Msg: err.Error(), Data: runs})
		return
	}
	render.JSON(w, r, NewSuccessResponse("全量ETL运行完成", runs))
}

// RunEntity 触发单实体ETL运行
// @Summary 触发单实体ETL运行
// @Description 执行指定实体的抽取、清洗、入库管道
// @Tags ETL
// @Produce json
// @Param entity path string true "实体类型" Enums(users,cards,stores,products,orders,date_times)
// @Success 200 {object} APIResponse{data=models.EtlRun}
// @Failure 400 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /etl/run/{entity} [post]
func (c *EtlController) RunEntity(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	run, err := c.etlService.RunEntity(r.Context(), entity)
	if err != nil {
		status := http.StatusInternalServerError
		if run == nil {
			status = http.StatusBadRequest
		}
		render.Status(r, status)
		render.JSON(w, r, &APIResponse{Status: 1, Msg: err.Error(), Data: run})
		return
	}
	render.JSON(w, r, NewSuccessResponse("ETL运行完成", run))
}

// ListRuns 查询运行历史
// @Summary 查询ETL运行历史
// @Description 按开始时间倒序返回最近的运行记录
// @Tags ETL
// @Produce json
// @Param limit query int false "返回条数" default(50)
// @Success 200 {object} APIResponse{data=[]models.EtlRun}
// @Failure 500 {object} APIResponse
// @Router /etl/runs [get]
func (c *EtlController) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	runs, err := c.etlService.ListRuns(limit)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, NewErrorResponse(err.Error()))
		return
	}
	render.JSON(w, r, NewSuccessResponse("查询成功", runs))
}
