package utils

import (
	"crypto/rand"
	"io"

	"github.com/11090815/telcrypt/errors"
)

// Reader 随机数来源，测试时可以替换成确定性的 io.Reader。
var Reader io.Reader = rand.Reader

/* ------------------------------------------------------------------------------------------ */

func GetRandomBytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.NewError("the size of the random bytes must be larger than 0")
	}

	buffer := make([]byte, size)

	n, err := io.ReadFull(Reader, buffer)
	if err != nil {
		return nil, errors.NewErrorf("cannot generate random bytes, the error is \"%s\"", err.Error())
	}

	if n != size {
		return nil, errors.NewErrorf("want to generate \"%d\" bytes, but got \"%d\"", size, n)
	}

	return buffer, nil
}

// GetRandomMaterials 依次生成给定长度的随机字节切片，例如盐值、初始向量和口令。
func GetRandomMaterials(sizes ...int) ([][]byte, error) {
	materials := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		material, err := GetRandomBytes(size)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	return materials, nil
}

/* ------------------------------------------------------------------------------------------ */

// Clone 返回 src 的副本，src 为 nil 时返回 nil。
func Clone(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
