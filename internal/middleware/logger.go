package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// LoggerConfig controls what the request logger emits.
type LoggerConfig struct {
	EnableColors   bool
	LogRequestBody bool
	MaxBodySize    int64
	SkipPaths      []string
}

// DefaultLoggerConfig keeps request bodies small and skips noise endpoints.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:   true,
		LogRequestBody: true,
		MaxBodySize:    2048,
		SkipPaths:      []string{"/health", "/metrics", "/ping"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()
		contentType := c.GetHeader("Content-Type")
		queryParams := c.Request.URL.RawQuery

		// Read and restore request body with size limits
		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[Request body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), contentType)
				}
			}
		}

		logIncomingRequest(config, method, path, ip, queryParams, requestBody)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		adminID := c.GetString("adminID")

		logOutgoingResponse(config, method, path, status, latency, adminID)
	}
}

func logIncomingRequest(config LoggerConfig, method, path, ip, query, body string) {
	var methodColor, resetColor string
	if config.EnableColors {
		methodColor = getMethodColor(method)
		resetColor = ColorReset
	}

	log.Printf("%s-> %s%s%s %s%s%s",
		ColorCyan,
		methodColor, method, resetColor,
		ColorBlue, path, resetColor)

	if ip != "" {
		log.Printf("%s   ip:%s %s", ColorGray, resetColor, ip)
	}
	if query != "" {
		log.Printf("%s   query:%s %s", ColorGray, resetColor, truncateString(query, 100))
	}
	if body != "" {
		log.Printf("%s   body:%s %s", ColorGray, resetColor, body)
	}
}

func logOutgoingResponse(config LoggerConfig, method, path string, status int, latency time.Duration, adminID string) {
	var statusColor, methodColor, resetColor string
	if config.EnableColors {
		statusColor = getStatusColor(status)
		methodColor = getMethodColor(method)
		resetColor = ColorReset
	}

	log.Printf("%s<- [%d]%s %s%s%s %s%s%s %s%v%s",
		statusColor, status, resetColor,
		methodColor, method, resetColor,
		ColorBlue, path, resetColor,
		ColorGray, latency, resetColor)

	if adminID != "" {
		log.Printf("%s   admin:%s %s", ColorGray, resetColor, adminID)
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	case "PATCH":
		return ColorPurple
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if len(body) > 1024 {
		return "[Body too large to log]"
	}

	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			sanitized := hideSensitiveFields(jsonData)
			if formatted, err := json.Marshal(sanitized); err == nil {
				return string(formatted)
			}
		}
	}

	return truncateString(body, 200)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{})
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "key", "auth", "credential"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
