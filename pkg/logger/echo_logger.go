package logger

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// zap을 사용하여 HTTP 요청과 응답을 로깅합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		// 헬스 체크는 로그에서 제외
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogHost:         true,
		LogMethod:       true,
		LogURI:          true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.host", v.Host),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}

			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
				logger.Error("HTTP 요청 처리 실패", fields...)
				return nil
			}

			logger.Info("HTTP 요청 처리", fields...)
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// WithEchoLogger는 Echo 내부 로거를 zap 로거로 교체합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.HideBanner = true
	e.HidePort = true
	e.Logger = NewEchoZapLogger(logger)
}

// EchoZapLogger는 echo.Logger 인터페이스를 zap으로 구현합니다.
type EchoZapLogger struct {
	logger *zap.SugaredLogger
	level  log.Lvl
	prefix string
}

func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{
		logger: logger.Sugar(),
		level:  log.INFO,
	}
}

func (l *EchoZapLogger) Output() io.Writer {
	return &zapWriter{logger: l.logger}
}

func (l *EchoZapLogger) SetOutput(w io.Writer) {
	// zap 코어가 출력을 소유하므로 무시합니다
}

func (l *EchoZapLogger) Level() log.Lvl {
	return l.level
}

func (l *EchoZapLogger) SetLevel(v log.Lvl) {
	l.level = v
}

func (l *EchoZapLogger) SetHeader(h string) {
	// zap 인코더 설정을 따르므로 무시합니다
}

func (l *EchoZapLogger) Prefix() string {
	return l.prefix
}

func (l *EchoZapLogger) SetPrefix(p string) {
	l.prefix = p
}

func (l *EchoZapLogger) Print(i ...interface{}) {
	l.logger.Info(i...)
}

func (l *EchoZapLogger) Printf(format string, i ...interface{}) {
	l.logger.Infof(format, i...)
}

func (l *EchoZapLogger) Printj(j log.JSON) {
	l.logger.Infow("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Debug(i ...interface{}) {
	l.logger.Debug(i...)
}

func (l *EchoZapLogger) Debugf(format string, i ...interface{}) {
	l.logger.Debugf(format, i...)
}

func (l *EchoZapLogger) Debugj(j log.JSON) {
	l.logger.Debugw("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Info(i ...interface{}) {
	l.logger.Info(i...)
}

func (l *EchoZapLogger) Infof(format string, i ...interface{}) {
	l.logger.Infof(format, i...)
}

func (l *EchoZapLogger) Infoj(j log.JSON) {
	l.logger.Infow("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Warn(i ...interface{}) {
	l.logger.Warn(i...)
}

func (l *EchoZapLogger) Warnf(format string, i ...interface{}) {
	l.logger.Warnf(format, i...)
}

func (l *EchoZapLogger) Warnj(j log.JSON) {
	l.logger.Warnw("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Error(i ...interface{}) {
	l.logger.Error(i...)
}

func (l *EchoZapLogger) Errorf(format string, i ...interface{}) {
	l.logger.Errorf(format, i...)
}

func (l *EchoZapLogger) Errorj(j log.JSON) {
	l.logger.Errorw("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Fatal(i ...interface{}) {
	l.logger.Fatal(i...)
}

func (l *EchoZapLogger) Fatalf(format string, i ...interface{}) {
	l.logger.Fatalf(format, i...)
}

func (l *EchoZapLogger) Fatalj(j log.JSON) {
	l.logger.Fatalw("echo", jsonToPairs(j)...)
}

func (l *EchoZapLogger) Panic(i ...interface{}) {
	l.logger.Panic(i...)
}

func (l *EchoZapLogger) Panicf(format string, i ...interface{}) {
	l.logger.Panicf(format, i...)
}

func (l *EchoZapLogger) Panicj(j log.JSON) {
	l.logger.Panicw("echo", jsonToPairs(j)...)
}

func jsonToPairs(j log.JSON) []interface{} {
	pairs := make([]interface{}, 0, len(j)*2)
	for k, v := range j {
		pairs = append(pairs, k, v)
	}
	return pairs
}

type zapWriter struct {
	logger *zap.SugaredLogger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}
