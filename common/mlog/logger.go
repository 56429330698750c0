package mlog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

/* ------------------------------------------------------------------------------------------ */

type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	Panic(msg string)
	Panicf(format string, args ...interface{})
	With(key, value string) Logger
	Stop() error
}

/* ------------------------------------------------------------------------------------------ */

var now = func() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}

// bus 保存所有 logger 共享的输出器，文件输出器需要通过 Init 开启。
type bus struct {
	terminal  writer
	file      writer
	lvl       Level
	isStopped bool
	mutex     *sync.RWMutex
}

var loggerBus = &bus{
	terminal: NewTerminalWriter(),
	file:     &mockWriter{},
	lvl:      InfoLevel,
	mutex:    &sync.RWMutex{},
}

// Init 根据配置中的 log 部分设置默认日志等级，并在 log.DirPath 不为空时开启按等级分目录的文件输出。
func Init(v *viper.Viper) error {
	cfg, err := ReadConfig(v)
	if err != nil {
		return err
	}

	var file writer = &mockWriter{}
	if cfg.DirPath != "" {
		if file, err = NewMultiFileWriter(cfg); err != nil {
			return err
		}
	}

	loggerBus.mutex.Lock()
	old := loggerBus.file
	loggerBus.file = file
	loggerBus.lvl = ParseLevel(cfg.Level)
	loggerBus.isStopped = false
	loggerBus.mutex.Unlock()

	return old.Close()
}

// DefaultLevel 返回通过 Init 设置的默认日志等级。
func DefaultLevel() Level {
	loggerBus.mutex.RLock()
	defer loggerBus.mutex.RUnlock()
	return loggerBus.lvl
}

func (b *bus) stopped() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.isStopped
}

func (b *bus) writers() (writer, writer) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.terminal, b.file
}

/* ------------------------------------------------------------------------------------------ */

type logger struct {
	// lvl 定义记录的日志等级。
	lvl Level

	// printPath 字段控制是否在每条日志记录上增加 file:line 信息。
	printPath bool

	// module 定义日志输出器 logger 属于项目的哪个模块。
	module string

	// ctx 定义日志输出器 logger 的上下文信息，按 key, value 交替存放。
	ctx []string

	// out 不为空时，日志只写到 out，不经过 loggerBus。
	out writer

	kvLoggers map[string]*logger

	mutex *sync.RWMutex
}

// GetLogger 返回属于 module 模块的日志记录器，日志写到终端以及（如已开启）日志文件。
func GetLogger(module string, lvl Level, printPath ...bool) Logger {
	l := &logger{
		lvl:       lvl,
		module:    module,
		kvLoggers: make(map[string]*logger),
		ctx:       make([]string, 0),
		mutex:     &sync.RWMutex{},
	}
	if len(printPath) > 0 {
		l.printPath = printPath[0]
	}
	return l
}

// GetTestLogger 返回一个只把日志写到 out 的日志记录器，out 为 nil 时丢弃所有日志。
func GetTestLogger(module string, lvl Level, out io.Writer) Logger {
	l := GetLogger(module, lvl).(*logger)
	if out == nil {
		l.out = &mockWriter{}
	} else {
		l.out = NewStreamWriter(out)
	}
	return l
}

func (l *logger) Debug(msg string) {
	if l.silent(DebugLevel) {
		return
	}
	l.log(newEntry(now(), l.module, DebugLevel, msg, l.ctxStr(), l.printPath))
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if l.silent(DebugLevel) {
		return
	}
	l.log(newEntry(now(), l.module, DebugLevel, fmt.Sprintf(format, args...), l.ctxStr(), l.printPath))
}

func (l *logger) Info(msg string) {
	if l.silent(InfoLevel) {
		return
	}
	l.log(newEntry(now(), l.module, InfoLevel, msg, l.ctxStr(), l.printPath))
}

func (l *logger) Infof(format string, args ...interface{}) {
	if l.silent(InfoLevel) {
		return
	}
	l.log(newEntry(now(), l.module, InfoLevel, fmt.Sprintf(format, args...), l.ctxStr(), l.printPath))
}

func (l *logger) Warn(msg string) {
	if l.silent(WarnLevel) {
		return
	}
	l.log(newEntry(now(), l.module, WarnLevel, msg, l.ctxStr(), l.printPath))
}

func (l *logger) Warnf(format string, args ...interface{}) {
	if l.silent(WarnLevel) {
		return
	}
	l.log(newEntry(now(), l.module, WarnLevel, fmt.Sprintf(format, args...), l.ctxStr(), l.printPath))
}

func (l *logger) Error(msg string) {
	if l.silent(ErrorLevel) {
		return
	}
	l.log(newEntry(now(), l.module, ErrorLevel, msg, l.ctxStr(), l.printPath))
}

func (l *logger) Errorf(format string, args ...interface{}) {
	if l.silent(ErrorLevel) {
		return
	}
	l.log(newEntry(now(), l.module, ErrorLevel, fmt.Sprintf(format, args...), l.ctxStr(), l.printPath))
}

func (l *logger) Panic(msg string) {
	if l.silent(PanicLevel) {
		return
	}
	l.log(newEntry(now(), l.module, PanicLevel, msg, l.ctxStr(), l.printPath))
}

func (l *logger) Panicf(format string, args ...interface{}) {
	if l.silent(PanicLevel) {
		return
	}
	l.log(newEntry(now(), l.module, PanicLevel, fmt.Sprintf(format, args...), l.ctxStr(), l.printPath))
}

// With 返回一个带有 key=value 上下文的日志记录器，相同的 key=value 会复用同一个记录器。
func (l *logger) With(key, value string) Logger {
	kv := key + "=" + value

	l.mutex.RLock()
	last, ok := l.kvLoggers[kv]
	l.mutex.RUnlock()
	if ok {
		return last
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	if last, ok := l.kvLoggers[kv]; ok {
		return last
	}
	cpy := &logger{
		lvl:       l.lvl,
		printPath: l.printPath,
		module:    l.module,
		out:       l.out,
		kvLoggers: make(map[string]*logger),
		mutex:     &sync.RWMutex{},
		ctx:       make([]string, 0, len(l.ctx)+2),
	}
	cpy.ctx = append(cpy.ctx, l.ctx...)
	cpy.ctx = append(cpy.ctx, key, value)
	l.kvLoggers[kv] = cpy
	return cpy
}

// Stop 关闭共享的文件输出器，之后所有经过 loggerBus 的日志都会被丢弃。
func (l *logger) Stop() error {
	if l.out != nil {
		return l.out.Close()
	}
	loggerBus.mutex.Lock()
	loggerBus.isStopped = true
	file := loggerBus.file
	loggerBus.mutex.Unlock()
	return file.Close()
}

// silent 给定的日志等级如果小于 logger 设定的日志等级，则保持沉默，不输出日志信息。
func (l *logger) silent(lvl Level) bool {
	return lvl < l.lvl
}

func (l *logger) log(e *entry) {
	if l.out != nil {
		l.out.WriteEntry(e)
		return
	}
	if loggerBus.stopped() {
		return
	}
	terminal, file := loggerBus.writers()
	file.WriteEntry(e)
	terminal.WriteEntry(e)
}

func (l *logger) ctxStr() string {
	if len(l.ctx) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(l.ctx)/2)
	for i := 0; i+1 < len(l.ctx); i += 2 {
		key, value := l.ctx[i], l.ctx[i+1]
		if key == "" {
			key = "unknown"
		}
		if value == "" {
			value = "unknown"
		}
		pairs = append(pairs, key+"="+value)
	}
	return strings.Join(pairs, ";")
}
