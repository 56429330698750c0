package des

import "github.com/11090815/telcrypt/errors"

// bytesToBits 把每个字节按最高位在前的顺序展开成 8 个取值为 0 或 1 的比特。
func bytesToBits(src []byte) []uint8 {
	bits := make([]uint8, 0, len(src)*8)
	for _, b := range src {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// bitsToBytes 是 bytesToBits 的逆过程，比特向量的长度必须是 8 的整数倍。
func bitsToBytes(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, errors.NewKindErrorf(errors.KindAlignment, "the length of the bit vector must be a multiple of 8, but got \"%d\"", len(bits))
	}
	return packBits(bits), nil
}

// packBits 调用方保证 len(bits)%8 == 0。
func packBits(bits []uint8) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = b<<1 | bit&1
		}
		out[i] = b
	}
	return out
}

func xorBits(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// rotateLeft 返回 bits 循环左移 n 位后的新比特向量。
func rotateLeft(bits []uint8, n int) []uint8 {
	out := make([]uint8, 0, len(bits))
	out = append(out, bits[n:]...)
	return append(out, bits[:n]...)
}

func concat(a, b []uint8) []uint8 {
	out := make([]uint8, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
