package mlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/11090815/telcrypt/config"
	"github.com/11090815/telcrypt/errors"
	"github.com/spf13/viper"
)

/* ------------------------------------------------------------------------------------------ */

// writer 定义了条目写入器接口。
type writer interface {
	// WriteEntry 利用写入器将日志条目写入到指定位置。
	WriteEntry(e *entry) error
	// Close 关闭写入日志的记录器。
	Close() error
}

var allLevels = []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, PanicLevel}

/* ------------------------------------------------------------------------------------------ */

type terminalWriter struct {
	out   io.Writer
	color bool
	mutex *sync.Mutex
}

// NewTerminalWriter 返回一个将带颜色的日志写到 os.Stdout 的写入器。
func NewTerminalWriter() writer {
	return &terminalWriter{out: os.Stdout, color: true, mutex: &sync.Mutex{}}
}

// NewStreamWriter 返回一个将无颜色的日志写到 out 的写入器。
func NewStreamWriter(out io.Writer) writer {
	return &terminalWriter{out: out, color: false, mutex: &sync.Mutex{}}
}

func (tw *terminalWriter) WriteEntry(e *entry) error {
	line := e.NormalLevelString()
	if tw.color {
		line = e.ColorLevelString()
	}
	tw.mutex.Lock()
	defer tw.mutex.Unlock()
	_, err := tw.out.Write([]byte(line))
	return err
}

func (*terminalWriter) Close() error {
	return nil
}

/* ------------------------------------------------------------------------------------------ */

type multiFileWriter struct {
	// maxSize 定义一个日志文件所能存储的字节数。
	maxSize int64
	// writers 多种级别日志记录器。
	writers map[Level]*fileWriter
}

// NewMultiFileWriter 在 cfg.DirPath 下为每个日志等级创建一个子目录，每个等级的日志单独写入，
// 单个文件超过 cfg.SingleFileMaxSize 字节后滚动到下一个文件。
func NewMultiFileWriter(cfg *FileWriterConfig) (writer, error) {
	if cfg == nil || cfg.DirPath == "" {
		return nil, errors.NewError("invalid path, nil directory path")
	}
	if cfg.SingleFileMaxSize <= 0 {
		return nil, errors.NewErrorf("invalid single file max size \"%d\"", cfg.SingleFileMaxSize)
	}

	mfw := &multiFileWriter{
		maxSize: int64(cfg.SingleFileMaxSize),
		writers: make(map[Level]*fileWriter),
	}

	for _, lvl := range allLevels {
		dir := filepath.Join(cfg.DirPath, lvl.String())
		if err := os.MkdirAll(dir, os.FileMode(0775)); err != nil {
			return nil, errors.NewErrorf("failed creating %s log directory \"%s\", the error is \"%s\"", lvl.String(), dir, err.Error())
		}
		wr, err := newFileWriter(cfg.DirPath, lvl)
		if err != nil {
			return nil, err
		}
		mfw.writers[lvl] = wr
	}

	return mfw, nil
}

func (mfw *multiFileWriter) WriteEntry(e *entry) error {
	wr, ok := mfw.writers[e.level]
	if !ok {
		return errors.NewErrorf("no file writer for level \"%s\"", e.level.String())
	}
	return wr.write(mfw.maxSize, e)
}

func (mfw *multiFileWriter) Close() error {
	var first error
	for lvl, wr := range mfw.writers {
		if err := wr.close(); err != nil && first == nil {
			first = errors.NewErrorf("failed closing %s log file, the error is \"%s\"", lvl.String(), err.Error())
		}
	}
	return first
}

/* ------------------------------------------------------------------------------------------ */

type fileWriter struct {
	dirPath        string
	lvl            Level
	alreadyWritten int64
	num            int
	wr             *os.File
	mutex          *sync.Mutex
}

func newFileWriter(dirPath string, lvl Level) (*fileWriter, error) {
	files, err := os.ReadDir(filepath.Join(dirPath, lvl.String()))
	if err != nil {
		return nil, errors.NewErrorf("failed reading %s log directory \"%s\", the error is \"%s\"", lvl.String(), filepath.Join(dirPath, lvl.String()), err.Error())
	}
	var recorded int
	var latestAlreadyWritten int64
	reg := regexp.MustCompile(fmt.Sprintf(`^%s-\d+\.log$`, lvl.String()))
	for _, file := range files {
		if reg.MatchString(file.Name()) {
			recorded++
		}
	}
	if recorded > 0 {
		filePath := filepath.Join(dirPath, lvl.String(), fmt.Sprintf("%s-%d.log", lvl.String(), recorded))
		stat, err := os.Stat(filePath)
		if err != nil {
			return nil, errors.NewErrorf("cannot fetch the latest information of the %s log file \"%s\", the error is \"%s\"", lvl.String(), filePath, err.Error())
		}
		latestAlreadyWritten = stat.Size()
	} else {
		recorded = 1
	}

	return &fileWriter{
		dirPath:        dirPath,
		lvl:            lvl,
		num:            recorded,
		alreadyWritten: latestAlreadyWritten,
		mutex:          &sync.Mutex{},
	}, nil
}

func (fw *fileWriter) path() string {
	return filepath.Join(fw.dirPath, fw.lvl.String(), fmt.Sprintf("%s-%d.log", fw.lvl.String(), fw.num))
}

func (fw *fileWriter) write(max int64, e *entry) (err error) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	if fw.wr == nil {
		fw.wr, err = os.OpenFile(fw.path(), os.O_CREATE|os.O_APPEND|os.O_RDWR, os.FileMode(0600))
		if err != nil {
			fw.wr = nil
			return errors.NewErrorf("failed opening the %s log file, the error is \"%s\"", fw.lvl.String(), err.Error())
		}
	}

	n, err := fw.wr.Write([]byte(e.NormalLevelString()))
	if err != nil {
		return errors.NewErrorf("failed writing log entry to the %s file, the error is \"%s\"", fw.lvl.String(), err.Error())
	}
	fw.alreadyWritten += int64(n)

	if fw.alreadyWritten >= max {
		fw.wr.Close()
		fw.alreadyWritten = 0
		fw.num++
		fw.wr, err = os.OpenFile(fw.path(), os.O_CREATE|os.O_APPEND|os.O_RDWR, os.FileMode(0600))
		if err != nil {
			fw.wr = nil
			return errors.NewErrorf("failed creating the new %s log file, the error is \"%s\"", fw.lvl.String(), err.Error())
		}
	}
	return nil
}

func (fw *fileWriter) close() error {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	if fw.wr == nil {
		return nil
	}
	err := fw.wr.Close()
	fw.wr = nil
	return err
}

/* ------------------------------------------------------------------------------------------ */

type FileWriterConfig struct {
	Level             string `json:"level" yaml:"Level" mapstructure:"Level"`
	DirPath           string `json:"dir_path" yaml:"DirPath" mapstructure:"DirPath"`
	SingleFileMaxSize int    `json:"single_file_max_size" yaml:"SingleFileMaxSize" mapstructure:"SingleFileMaxSize"`
}

// ReadConfig 读取配置中的 log 部分，DirPath 为相对路径时以配置文件所在目录为基准。
func ReadConfig(v *viper.Viper) (*FileWriterConfig, error) {
	if v == nil {
		v = config.GetConfig()
	}

	section := &struct {
		Log FileWriterConfig `mapstructure:"log"`
	}{}
	if err := v.Unmarshal(section); err != nil {
		return nil, errors.NewErrorf("cannot read config file, the error is \"%s\"", err.Error())
	}
	opts := &section.Log
	opts.DirPath = config.GetPath(v, "log.DirPath")

	return opts, nil
}

/* ------------------------------------------------------------------------------------------ */

type mockWriter struct{}

func (mock *mockWriter) WriteEntry(*entry) error {
	return nil
}

func (mock *mockWriter) Close() error {
	return nil
}
