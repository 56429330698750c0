package des

// permute 按照置换表 table 从 input 中取比特，table 中的下标从 1 开始。
func permute(input []uint8, table []uint8) []uint8 {
	out := make([]uint8, len(table))
	for i, t := range table {
		out[i] = input[t-1]
	}
	return out
}

// substitute 把 48 比特的输入分成 8 组 6 比特，第 i 组经过第 i 个 S 盒得到 4 比特，共输出 32 比特。
// 每组的第 0 位和第 5 位组成行号，中间 4 位组成列号。
func substitute(input []uint8) []uint8 {
	out := make([]uint8, 0, 32)
	for i := 0; i < 8; i++ {
		chunk := input[i*6 : i*6+6]
		row := chunk[0]<<1 | chunk[5]
		col := chunk[1]<<3 | chunk[2]<<2 | chunk[3]<<1 | chunk[4]
		v := sBoxes[i][int(row)*16+int(col)]
		out = append(out, v>>3&1, v>>2&1, v>>1&1, v&1)
	}
	return out
}

// feistel 轮函数 f(R, K) = P(S(E(R) xor K))。
func feistel(right []uint8, subkey []uint8) []uint8 {
	return permute(substitute(xorBits(permute(right, expansion[:]), subkey)), pBox[:])
}
