package softimpl

import (
	"reflect"

	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/errors"
)

/* ------------------------------------------------------------------------------------------ */

// SoftCSPImpl 按类型分派的软件实现：导入器按 KeyImportOpts 的类型查找，其余组件按密钥的类型查找。
// 注册完成后只读，可以被并发使用。
type SoftCSPImpl struct {
	KeyDerivers  map[reflect.Type]interfaces.KeyDeriver
	KeyImporters map[reflect.Type]interfaces.KeyImporter
	Encrypters   map[reflect.Type]interfaces.Encrypter
	Decrypters   map[reflect.Type]interfaces.Decrypter
}

func NewSoftCSPImpl() *SoftCSPImpl {
	return &SoftCSPImpl{
		KeyDerivers:  make(map[reflect.Type]interfaces.KeyDeriver),
		KeyImporters: make(map[reflect.Type]interfaces.KeyImporter),
		Encrypters:   make(map[reflect.Type]interfaces.Encrypter),
		Decrypters:   make(map[reflect.Type]interfaces.Decrypter),
	}
}

func (csp *SoftCSPImpl) KeyDeriv(key interfaces.Key, opts interfaces.KeyDerivOpts) (interfaces.Key, error) {
	if key == nil {
		return nil, errors.NewError("invalid key, nil key")
	}

	if opts == nil {
		return nil, errors.NewError("invalid option, nil option")
	}

	kd, found := csp.KeyDerivers[reflect.TypeOf(key)]
	if !found {
		return nil, errors.NewErrorf("cannot find out the key deriver for the key of type \"%T\"", key)
	}

	dk, err := kd.KeyDeriv(key, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed deriving key with option \"%T\"", opts)
	}

	return dk, nil
}

func (csp *SoftCSPImpl) KeyImport(raw interface{}, opts interfaces.KeyImportOpts) (interfaces.Key, error) {
	if raw == nil {
		return nil, errors.NewError("invalid raw material, nil raw material")
	}
	if opts == nil {
		return nil, errors.NewError("invalid option, nil option")
	}

	ki, found := csp.KeyImporters[reflect.TypeOf(opts)]
	if !found {
		return nil, errors.NewErrorf("cannot find out the key importer for the option \"%T\"", opts)
	}

	key, err := ki.KeyImport(raw, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed importing key with option \"%T\"", opts)
	}

	return key, nil
}

func (csp *SoftCSPImpl) Encrypt(key interfaces.Key, plaintext []byte, opts interfaces.EncrypterOpts) ([]byte, error) {
	if key == nil {
		return nil, errors.NewErrorf("invalid key, nil key")
	}

	encrypter, found := csp.Encrypters[reflect.TypeOf(key)]
	if !found {
		return nil, errors.NewErrorf("cannot find out the encrypter for the key \"%T\"", key)
	}

	return encrypter.Encrypt(key, plaintext, opts)
}

func (csp *SoftCSPImpl) Decrypt(key interfaces.Key, ciphertext []byte, opts interfaces.DecrypterOpts) ([]byte, error) {
	if key == nil {
		return nil, errors.NewErrorf("invalid key, nil key")
	}

	decrypter, found := csp.Decrypters[reflect.TypeOf(key)]
	if !found {
		return nil, errors.NewErrorf("cannot find out the decrypter for the key \"%T\"", key)
	}

	return decrypter.Decrypt(key, ciphertext, opts)
}

// RegisterWidget 把组件 w 注册到 t 类型下。同时实现了多个接口的组件按 KeyImporter、KeyDeriver、
// Encrypter、Decrypter 的顺序只注册一次。
func RegisterWidget(scsp *SoftCSPImpl, t reflect.Type, w interface{}) error {
	if t == nil {
		return errors.NewError("invalid type, nil type")
	}

	if w == nil {
		return errors.NewError("invalid widget, nil widget")
	}

	switch ww := w.(type) {
	case interfaces.KeyImporter:
		scsp.KeyImporters[t] = ww
	case interfaces.KeyDeriver:
		scsp.KeyDerivers[t] = ww
	case interfaces.Encrypter:
		scsp.Encrypters[t] = ww
	case interfaces.Decrypter:
		scsp.Decrypters[t] = ww
	default:
		return errors.NewErrorf("widget type \"%T\" is not recognized", w)
	}
	return nil
}
