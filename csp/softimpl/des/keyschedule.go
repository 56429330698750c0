package des

// subkeys 16 个 48 比特的轮密钥，第 0 个用于第一轮。生成后不再修改。
type subkeys [16][]uint8

// generateSubkeys 由 8 字节的密钥生成 16 个轮密钥，奇偶校验位不做检查。
func generateSubkeys(key []byte) *subkeys {
	pc1 := permute(bytesToBits(key[:BlockSize]), permutedChoice1[:])
	c, d := pc1[:28], pc1[28:]

	ks := &subkeys{}
	for i := 0; i < 16; i++ {
		c = rotateLeft(c, int(ksRotations[i]))
		d = rotateLeft(d, int(ksRotations[i]))
		ks[i] = permute(concat(c, d), permutedChoice2[:])
	}
	return ks
}
