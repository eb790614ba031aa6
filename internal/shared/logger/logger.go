// Package logger содержит общий логгер для server и fleetctl.
//
// Логгер построен на zap: вывод в консоль и/или в файл с ротацией (lumberjack),
// текстовый или JSON формат. Плюс метод для логирования HTTP-запросов.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger — обёртка над zap.Logger.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// Options — настройки логгера (секция log конфига).
type Options struct {
	Level   string // debug|info|warn|error
	Format  string // console|json
	File    string // путь к файлу, пусто — без файла
	Console bool   // дублировать в stderr

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New собирает логгер по opts.
//
// Если не задан ни файл, ни консоль, пишем в stderr.
func New(opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(defaultStr(opts.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	var encoder zapcore.Encoder
	switch defaultStr(opts.Format, "console") {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("log format %q: expected console or json", opts.Format)
	}

	var cores []zapcore.Core
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		// lumberjack отвечает за ротацию файлов
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    defaultInt(opts.MaxSizeMB, 100),
			MaxBackups: defaultInt(opts.MaxBackups, 10),
			MaxAge:     defaultInt(opts.MaxAgeDays, 30),
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(encoder, writer, level))
	}
	if opts.Console || opts.File == "" {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.Lock(os.Stderr), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return &Logger{Logger: l}, nil
}

// NewNop — логгер, который ничего не пишет (тесты, утилиты).
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// duration — длительность обработки запроса в миллисекундах.
func (logger *Logger) LogRequest(method, uri string, status, responseSize int, duration float64, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	}, fields...)

	switch {
	case status >= 500:
		logger.Error("HTTP request", fields...)
	default:
		logger.Info("HTTP request", fields...)
	}
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
