package kdf

/* ------------------------------------------------------------------------------------------ */

const (
	PBKDF2 = "PBKDF2"
)

/* ------------------------------------------------------------------------------------------ */

type PassphraseKeyImportOpts struct{}

func (opts *PassphraseKeyImportOpts) Algorithm() string {
	return PBKDF2
}

/* ------------------------------------------------------------------------------------------ */

// PBKDF2KeyDerivOpts 基于 HMAC-SHA1 的 PBKDF2 参数，派生出的密钥是 AES 密钥。
type PBKDF2KeyDerivOpts struct {
	Salt       []byte
	Iterations int
	// KeyLength 派生密钥的长度（字节），为 0 时取 16。
	KeyLength  int
	Exportable bool
}

func (opts *PBKDF2KeyDerivOpts) Algorithm() string {
	return PBKDF2
}
