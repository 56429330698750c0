package padding

import (
	"github.com/11090815/telcrypt/errors"
	"github.com/andreburgaud/crypt2go/padding"
)

// PKCS7Pad 用 PKCS7 方式把 src 补齐到 blockSize 的整数倍。src 的长度已经是 blockSize 的整数倍时，
// 依然会追加一个完整的填充分组。返回的切片不与 src 共享底层数组。
func PKCS7Pad(src []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize >= 256 {
		return nil, errors.NewErrorf("invalid block size \"%d\", it must be in (0, 256)", blockSize)
	}
	buf := make([]byte, len(src), len(src)+blockSize)
	copy(buf, src)
	return padding.NewPkcs7Padding(blockSize).Pad(buf)
}

// PKCS7Unpad 严格校验并去除 PKCS7 填充，填充不合法时返回错误。
func PKCS7Unpad(src []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 || blockSize >= 256 {
		return nil, errors.NewErrorf("invalid block size \"%d\", it must be in (0, 256)", blockSize)
	}
	if len(src) == 0 || len(src)%blockSize != 0 {
		return nil, errors.NewKindErrorf(errors.KindInvalidLength, "the length of the padded data must be a positive multiple of \"%d\", but got \"%d\"", blockSize, len(src))
	}
	if v := int(src[len(src)-1]); v == 0 || v > blockSize {
		return nil, errors.NewErrorf("invalid PKCS7 padding, the padded byte should be in [1, %d], but got \"%d\"", blockSize, v)
	}
	out, err := padding.NewPkcs7Padding(blockSize).Unpad(src)
	if err != nil {
		return nil, errors.NewErrorf("invalid PKCS7 padding, the error is \"%s\"", err.Error())
	}
	return out, nil
}

// PKCS7StripLenient 只看最后一个字节 v，当 1 <= v <= blockSize 时去掉末尾 v 个字节，否则原样返回，
// 不校验被去掉的字节是否都等于 v，也从不返回错误。
//
// 这是对端（airtel）响应的既有行为：填充看起来不对时调用方仍然拿到原始字节。
func PKCS7StripLenient(src []byte, blockSize int) []byte {
	if len(src) == 0 {
		return src
	}
	v := int(src[len(src)-1])
	if v < 1 || v > blockSize || v > len(src) {
		return src
	}
	return src[:len(src)-v]
}
