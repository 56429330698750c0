package des

// cryptBlock 对一个 8 字节的分组执行 DES 变换。加密与解密共用同一个 Feistel 结构，
// 解密时只是把轮密钥按相反的顺序使用。
func cryptBlock(block []byte, ks *subkeys, decrypt bool) []byte {
	perm := permute(bytesToBits(block), initialPermutation[:])
	l, r := perm[:32], perm[32:]

	for i := 0; i < 16; i++ {
		idx := i
		if decrypt {
			idx = 15 - i
		}
		newR := xorBits(l, feistel(r, ks[idx]))
		l, r = r, newR
	}

	// 最后一轮之后左右两半不再交换，所以这里是 R‖L。
	return packBits(permute(concat(r, l), finalPermutation[:]))
}
