package factory

import (
	"reflect"
	"strings"
	"sync"

	"github.com/11090815/telcrypt/csp/interfaces"
	"github.com/11090815/telcrypt/csp/softimpl"
	"github.com/11090815/telcrypt/csp/softimpl/aes"
	"github.com/11090815/telcrypt/csp/softimpl/des"
	"github.com/11090815/telcrypt/csp/softimpl/kdf"
	"github.com/11090815/telcrypt/errors"
)

var (
	defaultFactory *CSPFactory
	mutex          = &sync.Mutex{}
)

type CSPFactory struct {
	opts *FactoryOpts
	csps map[string]interfaces.CSP
}

// InitCSPFactoryWithOpts 初始化全局的 CSP 工厂，一旦指定了 Kind，后续不能再更改。
func InitCSPFactoryWithOpts(opts *FactoryOpts) error {
	if opts == nil {
		return errors.NewError("invalid factory options, nil options")
	}

	mutex.Lock()
	defer mutex.Unlock()

	if defaultFactory == nil {
		defaultFactory = &CSPFactory{
			opts: opts,
			csps: make(map[string]interfaces.CSP),
		}
		return nil
	}

	if !strings.EqualFold(opts.Kind, defaultFactory.opts.Kind) {
		return errors.NewErrorf("once the csp factory's kind is specified, it can not be changed from %s to %s", defaultFactory.opts.Kind, opts.Kind)
	}
	defaultFactory.opts = opts
	return nil
}

// GetCSP 返回全局 CSP 工厂创建的 CSP，同一种 Kind 只会创建一次。
func GetCSP() (interfaces.CSP, error) {
	mutex.Lock()
	defer mutex.Unlock()

	if defaultFactory == nil || defaultFactory.opts == nil {
		return nil, errors.NewError("you should initialize the csp factory before calling this method")
	}

	kind := strings.ToLower(defaultFactory.opts.Kind)
	if csp, ok := defaultFactory.csps[kind]; ok {
		return csp, nil
	}
	csp, err := NewCSP(defaultFactory.opts)
	if err != nil {
		return nil, err
	}
	defaultFactory.csps[kind] = csp
	return csp, nil
}

// NewCSP 根据 opts.Kind 创建一个新的 CSP，目前只支持 "sw"。
func NewCSP(opts *FactoryOpts) (interfaces.CSP, error) {
	if opts == nil {
		return nil, errors.NewError("invalid factory options, nil options")
	}
	switch strings.ToLower(opts.Kind) {
	case "sw":
		return createSoftBasedCSP()
	default:
		return nil, errors.NewErrorf("unknown crypto service provider mode \"%s\"", opts.Kind)
	}
}

func createSoftBasedCSP() (interfaces.CSP, error) {
	softImpl := softimpl.NewSoftCSPImpl()

	widgets := []struct {
		t reflect.Type
		w interface{}
	}{
		// Key Import
		{reflect.TypeOf(&des.DESKeyImportOpts{}), des.NewDESKeyImporter()},
		{reflect.TypeOf(&aes.AESKeyImportOpts{}), aes.NewAESKeyImporter()},
		{reflect.TypeOf(&kdf.PassphraseKeyImportOpts{}), kdf.NewPassphraseKeyImporter()},

		// Key Derive
		{reflect.TypeOf(&kdf.PassphraseKey{}), kdf.NewPBKDF2KeyDeriver()},

		// Encrypt
		{reflect.TypeOf(&des.DESKey{}), des.NewDESECBEncrypter()},
		{reflect.TypeOf(&aes.AESKey{}), aes.NewAESCBCPKCS7Encrypter()},

		// Decrypt
		{reflect.TypeOf(&des.DESKey{}), des.NewDESECBDecrypter()},
		{reflect.TypeOf(&aes.AESKey{}), aes.NewAESCBCPKCS7Decrypter()},
	}

	for _, widget := range widgets {
		if err := softimpl.RegisterWidget(softImpl, widget.t, widget.w); err != nil {
			return nil, errors.Wrapf(err, "cannot create crypto service provider based on soft ware")
		}
	}

	return softImpl, nil
}
