package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// maxLoggedBodyBytes はデバッグログに載せるリクエストボディの上限です。
const maxLoggedBodyBytes = 64 << 10

// replayBody はログ用に読んだ先頭部分と未読の残りを1本のボディとして見せます。
type replayBody struct {
	io.Reader
	io.Closer
}

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// sensitiveBodyFields はデバッグログでマスキングする JSON フィールドです。
var sensitiveBodyFields = []string{"email"}

// responseLogger は http.ResponseWriter をラップし、ステータスコードとレスポンスボディを記録します。
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func newResponseLogger(w http.ResponseWriter) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           new(bytes.Buffer),
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	rl.body.Write(b)
	return rl.ResponseWriter.Write(b)
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// chi の RequestID ミドルウェアの後に置いてください。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// リクエストID付きのロガーを生成し、コンテキストに格納
			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			var reqBodyBytes []byte
			if debug && r.Body != nil {
				// ログ用には先頭だけ読み、ハンドラには読んだ分と残りをつないで渡す
				reqBodyBytes, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBodyBytes))
				r.Body = &replayBody{
					Reader: io.MultiReader(bytes.NewReader(reqBodyBytes), r.Body),
					Closer: r.Body,
				}
			}

			rl := newResponseLogger(w)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			statusCode := rl.statusCode

			logLevel := slog.LevelInfo
			if statusCode >= 500 {
				logLevel = slog.LevelError
			} else if statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"status", statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.body.Len(),
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", maskBody(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", rl.body.String(),
				)
			}
		})
	}
}

// WithLogger はロガーを格納したコンテキストを返します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// LoggerFromContext はコンテキストに格納されたロガーを返します。
func LoggerFromContext(ctx context.Context) (*slog.Logger, bool) {
	logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger)
	return logger, ok
}

// GetLogger はコンテキストから slog.Logger を取得します。無ければ slog.Default() です。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := LoggerFromContext(ctx); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

// maskBody は JSON オブジェクトのボディ中の email などを伏せます。JSON でなければそのまま返します。
func maskBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) >= maxLoggedBodyBytes {
		return "[TRUNCATED]"
	}
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return string(body)
	}
	for _, name := range sensitiveBodyFields {
		if _, ok := fields[name]; ok {
			fields[name] = "[SENSITIVE]"
		}
	}
	masked, err := json.Marshal(fields)
	if err != nil {
		return string(body)
	}
	return string(masked)
}
