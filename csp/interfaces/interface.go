package interfaces

/* ------------------------------------------------------------------------------------------ */

// CSP 对称密码服务提供者，只提供导入、派生、加密、解密四类操作，所有密钥都是临时的，
// 不会被持久化或缓存。
type CSP interface {
	// KeyImport 给定一个密钥的原始数据，根据此原始数据导入一个密钥。
	KeyImport(raw interface{}, opts KeyImportOpts) (key Key, err error)

	// KeyDeriv 给定一个密钥，在此密钥的基础上派生出一个新的密钥。
	KeyDeriv(key Key, opts KeyDerivOpts) (dk Key, err error)

	// Encrypt 给定加密密钥、明文，计算密文。
	Encrypt(key Key, plaintext []byte, opts EncrypterOpts) (ciphertext []byte, err error)

	// Decrypt 给定解密密钥、密文，计算明文。
	Decrypt(key Key, ciphertext []byte, opts DecrypterOpts) (plaintext []byte, err error)
}

/* ------------------------------------------------------------------------------------------ */

// Key softimpl 包内的所有密钥都必须实现此接口。
type Key interface {
	// Bytes 返回密钥的原始字节，不可导出的密钥返回错误。
	Bytes() ([]byte, error)

	// Algorithm 返回密钥所属算法的名称。
	Algorithm() string

	// Symmetric 如果此密钥是对称密钥，则此方法返回 true，否则返回 false。
	Symmetric() bool
}

/* ------------------------------------------------------------------------------------------ */

type KeyDerivOpts interface {
	// Algorithm 返回密钥派生算法的名称。
	Algorithm() string
}

type KeyImportOpts interface {
	// Algorithm 返回密钥导入算法的名称。
	Algorithm() string
}

/* ------------------------------------------------------------------------------------------ */

// EncrypterOpts 目前此接口内没有定义任何方法，是个空接口。
type EncrypterOpts interface{}

/* ------------------------------------------------------------------------------------------ */

// DecrypterOpts 目前此接口内没有定义任何方法，是个空接口。
type DecrypterOpts interface{}
