package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var lg = zap.NewNop()

// Init 根据配置初始化全局 zap logger
// mode: debug 使用开发编码（彩色、行号）；其余使用生产 JSON 编码
func Init(level, mode string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	var cfg zap.Config
	if mode == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	lg = l
	return nil
}

// L 返回全局 logger（未 Init 时为 Nop，测试里可直接用）
func L() *zap.Logger { return lg }

func Debug(msg string, fields ...zap.Field) { lg.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { lg.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { lg.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { lg.Error(msg, fields...) }

// Sync 刷出缓冲日志，进程退出前调用
func Sync() { _ = lg.Sync() }
