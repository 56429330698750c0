package des

import (
	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

type DESKeyImporter struct{}

func NewDESKeyImporter() *DESKeyImporter {
	return &DESKeyImporter{}
}

// KeyImport 第一个参数可以是 []byte 或 string，长度至少为 8 个字节，只使用前 8 个字节；第二个参数
// KeyImportOpts 可以是 nil。
func (importer *DESKeyImporter) KeyImport(raw interface{}, opts interfaces.KeyImportOpts) (interfaces.Key, error) {
	var material []byte
	switch r := raw.(type) {
	case []byte:
		material = r
	case string:
		material = []byte(r)
	default:
		return nil, errors.NewErrorf("invalid raw material, expected bytes or string, but got \"%T\"", raw)
	}

	exportable := false
	if o, ok := opts.(*DESKeyImportOpts); ok && o != nil {
		exportable = o.Exportable
	}

	key, err := NewDESKey(material, exportable)
	if err != nil {
		return nil, err
	}
	return key, nil
}
