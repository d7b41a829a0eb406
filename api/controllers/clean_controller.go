/*
 * @module api/controllers/clean_controller
 * @description 清洗控制器，将清洗引擎以纯函数形式暴露：提交原始表，返回清洗后的表和统计
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow 请求接收 -> 实体校验 -> 清洗管道执行 -> 响应返回
 * @rules 脏数据只导致丢行或字段缺失；缺少必需列返回400（调用方契约违规）
 * @dependencies net/http, retail-etl-service/service/cleaning
 * @refs service/cleaning, api/routes.go
 */

package controllers

import (
	"encoding/json"
	"net/http"

	"retail-etl-service/service/cleaning"
	"retail-etl-service/service/meta"
	"retail-etl-service/service/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// CleanController 清洗控制器
type CleanController struct{}

// NewCleanController 创建清洗控制器实例
func NewCleanController() *CleanController {
	return &CleanController{}
}

// CleanTable 清洗一张实体表
// @Summary 清洗实体表
// @Description 对提交的原始表执行指定实体的清洗管道，返回清洗后的表和行数统计
// @Tags 清洗
// @Accept json
// @Produce json
// @Param entity path string true "实体类型" Enums(users,cards,stores,products,orders,date_times)
// @Param rows body models.Table true "原始表内容"
// @Success 200 {object} APIResponse{data=models.CleanResponse}
// @Failure 400 {object} APIResponse
// @Router /clean/{entity} [post]
func (c *CleanController) CleanTable(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	if !meta.IsValidEntity(entity) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, NewErrorResponse("不支持的实体类型: "+entity))
		return
	}

	var table models.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, NewErrorResponse("请求体解析失败: "+err.Error()))
		return
	}

	cleaned, stats, err := cleaning.Clean(entity, table)
	if err != nil {
		// 清洗错误只来自字段契约违规，属于调用方错误
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, NewErrorResponse(err.Error()))
		return
	}

	render.JSON(w, r, NewSuccessResponse("清洗完成", models.CleanResponse{
		Entity: entity,
		Stats:  stats,
		Rows:   cleaned,
	}))
}

// GetEntities 获取支持的实体类型清单
// @Summary 获取实体类型清单
// @Description 返回清洗引擎支持的全部实体类型及其目标表名
// @Tags 清洗
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]string}
// @Router /clean/entities [get]
func (c *CleanController) GetEntities(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, NewSuccessResponse("查询成功", meta.EntityTargetTables))
}
