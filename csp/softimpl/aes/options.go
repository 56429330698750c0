package aes

/* ------------------------------------------------------------------------------------------ */

const (
	AES = "AES"

	// KeySize 只支持 AES-128。
	KeySize = 16
)

/* ------------------------------------------------------------------------------------------ */

type AESCBCPKCS7ModeOpts struct {
	// IV 加密和解密时使用的初始化向量，必须是 16 个字节，密文中不包含初始化向量。
	IV []byte
}

/* ------------------------------------------------------------------------------------------ */

type AESKeyImportOpts struct {
	Exportable bool
}

func (opts *AESKeyImportOpts) Algorithm() string {
	return AES
}
