/*
 * @module api/middleware/api_key_auth
 * @description API Key鉴权中间件，使用bcrypt哈希校验 x-api-key 请求头
 * @architecture 中间件模式 - HTTP请求拦截和验证
 * @documentReference ai_docs/cleaning_engine_design.md
 * @stateFlow Key提取 -> bcrypt哈希比对 -> 下一个处理器
 * @rules 未配置API_KEY_HASH时中间件直通；明文Key不落盘不入日志
 * @dependencies net/http, golang.org/x/crypto/bcrypt
 * @refs api/routes.go
 */

package middleware

import (
	"net/http"
	"os"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyAuth API Key鉴权中间件
// 校验 x-api-key 请求头与 API_KEY_HASH 环境变量中的bcrypt哈希是否匹配
func APIKeyAuth(next http.Handler) http.Handler {
	keyHash := os.Getenv("API_KEY_HASH")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if keyHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("x-api-key")
		if apiKey == "" {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]interface{}{"status": 1, "msg": "缺少x-api-key请求头"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(apiKey)); err != nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]interface{}{"status": 1, "msg": "API Key无效"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
