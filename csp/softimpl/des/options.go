package des

/* ------------------------------------------------------------------------------------------ */

const (
	DES = "DES"
)

/* ------------------------------------------------------------------------------------------ */

type DESECBModeOpts struct {
	// StrictPadding 为 true 时，解密后严格校验 PKCS7 填充，默认沿用宽松的去填充方式。
	StrictPadding bool

	// NoPadding 为 true 时，加密前不做填充，明文长度必须是 8 的整数倍。
	NoPadding bool
}

/* ------------------------------------------------------------------------------------------ */

type DESKeyImportOpts struct {
	Exportable bool
}

func (opts *DESKeyImportOpts) Algorithm() string {
	return DES
}
