package errors

import (
	"fmt"
	"runtime"
	"strings"
)

const PrefixPath = "github.com/11090815/"

var trace = false

/* ------------------------------------------------------------------------------------------ */

// Kind 描述错误的类别，调用方可以通过 errors.Is 判断错误属于哪一类。
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidLength
	KindInvalidKey
	KindAlignment
)

func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "InvalidLengthError"
	case KindInvalidKey:
		return "InvalidKeyError"
	case KindAlignment:
		return "AlignmentError"
	default:
		return "UnknownError"
	}
}

var (
	// ErrInvalidLength 密文（或明文）的长度不是分组长度的正整数倍。
	ErrInvalidLength = &Error{content: KindInvalidLength.String(), kind: KindInvalidLength}

	// ErrInvalidKey 密钥材料的长度不足。
	ErrInvalidKey = &Error{content: KindInvalidKey.String(), kind: KindInvalidKey}

	// ErrAlignment 比特向量的长度不是 8 的整数倍。
	ErrAlignment = &Error{content: KindAlignment.String(), kind: KindAlignment}
)

/* ------------------------------------------------------------------------------------------ */

type Error struct {
	content string
	path    string
	kind    Kind
}

func (et *Error) Error() string {
	if trace && et.path != "" {
		return fmt.Sprintf("[%s] => {%s}", et.path, et.content)
	}
	return et.content
}

// Kind 返回错误的类别。
func (et *Error) Kind() Kind {
	return et.kind
}

// Is 两个错误的类别相同（且不是 KindUnknown）时，认为两者是同一种错误。
func (et *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if et.kind == KindUnknown || t.kind == KindUnknown {
		return et == t
	}
	return et.kind == t.kind
}

func NewError(content string) *Error {
	var path string
	if trace {
		path = constructPath()
	}

	return &Error{
		content: content,
		path:    path,
	}
}

func NewErrorf(format string, args ...interface{}) *Error {
	var path string
	if trace {
		path = constructPath()
	}

	return &Error{
		content: fmt.Sprintf(format, args...),
		path:    path,
	}
}

// NewKindErrorf 创建一个带有类别的错误，错误信息以类别名开头。
func NewKindErrorf(kind Kind, format string, args ...interface{}) *Error {
	var path string
	if trace {
		path = constructPath()
	}

	return &Error{
		content: kind.String() + ": " + fmt.Sprintf(format, args...),
		path:    path,
		kind:    kind,
	}
}

// Wrapf 在保留 err 类别的前提下为其补充上下文信息。
func Wrapf(err error, format string, args ...interface{}) *Error {
	var path string
	if trace {
		path = constructPath()
	}

	var kind Kind
	if e, ok := err.(*Error); ok {
		kind = e.kind
	}

	return &Error{
		content: fmt.Sprintf("%s, the error is \"%s\"", fmt.Sprintf(format, args...), err.Error()),
		path:    path,
		kind:    kind,
	}
}

func SetTrace() {
	trace = true
}

func constructPath() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown path"
	}

	index := strings.Index(file, PrefixPath)
	if index == -1 {
		file = "unknown file"
	} else {
		file = file[index+len(PrefixPath):]
	}

	funcName := runtime.FuncForPC(pc).Name()
	index = strings.LastIndex(funcName, ".")
	if index == -1 {
		funcName = "unknown function"
	} else {
		funcName = funcName[index+1:]
	}

	return fmt.Sprintf("%s_%s:%d", file, funcName, line)
}
