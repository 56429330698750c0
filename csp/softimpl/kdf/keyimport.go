package kdf

import (
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/errors"
)

type PassphraseKeyImporter struct{}

func NewPassphraseKeyImporter() *PassphraseKeyImporter {
	return &PassphraseKeyImporter{}
}

// KeyImport 第一个参数可以是 []byte 或 string，允许为空口令；第二个参数 KeyImportOpts 可以是 nil。
func (importer *PassphraseKeyImporter) KeyImport(raw interface{}, opts interfaces.KeyImportOpts) (interfaces.Key, error) {
	switch r := raw.(type) {
	case []byte:
		return NewPassphraseKey(r), nil
	case string:
		return NewPassphraseKey([]byte(r)), nil
	default:
		return nil, errors.NewErrorf("invalid raw material, expected bytes or string, but got \"%T\"", raw)
	}
}
