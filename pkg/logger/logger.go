package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"hearth/pkg/config"
	"hearth/pkg/helper"
	"hearth/pkg/mq"

	eventtypes "hearth/pkg/types/eventtype"

	"github.com/rs/zerolog"
)

// Publisher 로그 exchange 로 발행할 수 있는 MQ 클라이언트
type Publisher interface {
	PublishMessage(exchange, routingKey string, body []byte) error
}

var (
	// Logger는 전역 로거 인스턴스
	Logger = zerolog.Nop()

	publisher      Publisher
	currentService ServiceType
	mu             sync.RWMutex
)

const (
	ServiceTypeMatch ServiceType = iota
	ServiceTypeInterest
	ServiceTypeLogger
)

// ServiceType은 서비스 타입을 나타내는 정수입니다
type ServiceType int

func (s ServiceType) String() string {
	switch s {
	case ServiceTypeMatch:
		return "match"
	case ServiceTypeInterest:
		return "interest"
	case ServiceTypeLogger:
		return "logger"
	}
	return "unknown"
}

const (
	// 데일리 매칭 생성
	LogEventMatchRunStart LogEventType = iota
	LogEventMatchRunFinish
	LogEventMatchRunFail
	LogEventMatchCreated
	LogEventMatchConflict
	LogEventMatchInsertFail

	// 관심 표시
	LogEventMatchInterest
	LogEventMatchMutual

	// 경고 이벤트
	LogEventWarning

	// 에러 이벤트
	LogEventError
)

// LogEventType은 로그 이벤트 타입을 나타내는 정수입니다
type LogEventType int

// BaseLog는 로그의 기본 구조를 정의합니다
type BaseLog struct {
	Level        string      `json:"level" bson:"level"`
	Timestamp    time.Time   `json:"timestamp" bson:"timestamp"`
	Service      int         `json:"service" bson:"service"`
	LogEventType int         `json:"log_event_type" bson:"log_event_type"`
	Message      string      `json:"message" bson:"message"`
	Log          interface{} `json:"log" bson:"log"`
}

// InitLogger는 로거를 초기화합니다
func InitLogger(serviceType ServiceType, env string, cfg config.LogConfig) {
	var out io.Writer = os.Stdout
	if env == "local" || cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	SetOutput(serviceType, out, cfg.Level)
}

// SetOutput 출력 대상을 지정해 로거를 구성합니다
func SetOutput(serviceType ServiceType, out io.Writer, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()

	currentService = serviceType
	Logger = zerolog.New(out).
		Level(lvl).
		With().
		Str("service", serviceType.String()).
		Timestamp().
		Logger()
}

// AttachPublisher 로그 exchange 발행 활성화. nil 이면 비활성화.
func AttachPublisher(p Publisher) {
	mu.Lock()
	defer mu.Unlock()
	publisher = p
}

// Log는 BaseLog 구조체와 동일한 형식으로 로그를 출력하고 발행합니다
func Log(level string, logEventType LogEventType, message string, logData interface{}) {
	mu.RLock()
	l := Logger
	p := publisher
	svc := currentService
	mu.RUnlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	l.WithLevel(lvl).
		Int("log_event_type", int(logEventType)).
		Interface("log", logData).
		Msg(message)

	if p == nil {
		return
	}

	baseLog := BaseLog{
		Level:        level,
		Timestamp:    time.Now(),
		Service:      int(svc),
		LogEventType: int(logEventType),
		Message:      message,
		Log:          logData,
	}

	eventPayload := eventtypes.EventPayload{
		EventType: eventtypes.EventTypeLog,
		Data:      helper.ToJSON(baseLog),
	}

	jsonData, err := json.Marshal(eventPayload)
	if err != nil {
		l.Error().Err(err).Msg("Failed to marshal log data")
		return
	}

	if err := p.PublishMessage(mq.ExchangeLog, "", jsonData); err != nil {
		l.Error().Err(err).Msg("Failed to publish log message")
	}
}

// Debug는 debug 레벨 로그를 출력합니다
func Debug(logEventType LogEventType, message string, logData interface{}) {
	Log("debug", logEventType, message, logData)
}

// Info는 info 레벨 로그를 출력합니다
func Info(logEventType LogEventType, message string, logData interface{}) {
	Log("info", logEventType, message, logData)
}

// Warn은 warn 레벨 로그를 출력합니다
func Warn(logEventType LogEventType, message string, logData interface{}) {
	Log("warn", logEventType, message, logData)
}

// Error는 error 레벨 로그를 출력합니다
func Error(logEventType LogEventType, message string, logData interface{}) {
	Log("error", logEventType, message, logData)
}

// WithContext는 추가 컨텍스트를 포함한 로거를 반환합니다
func WithContext(fields map[string]interface{}) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger.With().Fields(fields).Logger()
}
