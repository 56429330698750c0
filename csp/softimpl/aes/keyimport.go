package aes

import (
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

type AESKeyImporter struct{}

func NewAESKeyImporter() *AESKeyImporter {
	return &AESKeyImporter{}
}

// KeyImport 此方法的第二个参数 KeyImportOpts 可以是 nil。
func (importer *AESKeyImporter) KeyImport(raw interface{}, opts interfaces.KeyImportOpts) (interfaces.Key, error) {
	aesRaw, ok := raw.([]byte)
	if !ok {
		return nil, errors.NewErrorf("invalid raw material, expected bytes, but got \"%T\"", raw)
	}

	if len(aesRaw) == 0 {
		return nil, errors.NewKindErrorf(errors.KindInvalidKey, "invalid raw material, nil material")
	}

	exportable := false
	if o, ok := opts.(*AESKeyImportOpts); ok && o != nil {
		exportable = o.Exportable
	}

	key, err := NewAESKey(aesRaw, exportable)
	if err != nil {
		return nil, err
	}
	return key, nil
}
