package controllers

// APIResponse 统一API响应结构
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"操作成功"`
	Data   interface{} `json:"data,omitempty"`
}

// NewSuccessResponse 构造成功响应
func NewSuccessResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: 0, Msg: msg, Data: data}
}

// NewErrorResponse 构造失败响应
func NewErrorResponse(msg string) *APIResponse {
	return &APIResponse{Status: 1, Msg: msg}
}
