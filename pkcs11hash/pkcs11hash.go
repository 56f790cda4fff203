// Package pkcs11hash registers an alternative "pkcs11" provider for the
// hash family, backed by a PKCS#11 module. Registration happens only when a
// module is configured, either through the BOTAN_PKCS11_MODULE environment
// variable at startup or through Configure with a loaded config.
package pkcs11hash

import (
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/miekg/pkcs11"

	"github.com/rafalsk/botan/algoconf"
	"github.com/rafalsk/botan/algohash"
	"github.com/rafalsk/botan/algoreg"
)

var logger = xlog.NewPackageLogger("github.com/rafalsk/botan", "pkcs11hash")

// ProviderName specifies a provider name
const ProviderName = "pkcs11"

type digestAlgo struct {
	base  string
	size  int
	block int
	mech  uint
}

var digestAlgos = []digestAlgo{
	{"SHA-1", 20, 64, pkcs11.CKM_SHA_1},
	{"SHA-256", 32, 64, pkcs11.CKM_SHA256},
	{"SHA-384", 48, 128, pkcs11.CKM_SHA384},
	{"SHA-512", 64, 128, pkcs11.CKM_SHA512},
}

var (
	modMu    sync.Mutex
	modPath  string
	modLabel string

	openOnce sync.Once
	lib      *p11Lib
	libErr   error
)

func init() {
	path := os.Getenv(algoconf.EnvPkcs11Module)
	modPath = path

	for _, a := range digestAlgos {
		_ = algoreg.NewConditionalRegistration(path != "", a.base, ProviderName,
			digestMaker(a))
	}
}

// Configure registers the provider for the module named in cfg. It is a
// no-op when no module is configured, and idempotent otherwise.
func Configure(cfg *algoconf.Config) error {
	path := cfg.Pkcs11Module()
	if path == "" {
		return nil
	}

	modMu.Lock()
	modPath = path
	modLabel = cfg.PKCS11.TokenLabel
	modMu.Unlock()

	for _, a := range digestAlgos {
		_ = algoreg.NewProviderRegistration(a.base, ProviderName, digestMaker(a))
	}
	return nil
}

func digestMaker(a digestAlgo) algoreg.Maker[algohash.Hash] {
	return func(algoreg.Spec) (algohash.Hash, error) {
		l, err := library()
		if err != nil {
			return nil, err
		}
		return &p11Hash{lib: l, algo: a}, nil
	}
}

// p11Lib holds the loaded module and the selected slot.
type p11Lib struct {
	ctx  *pkcs11.Ctx
	slot uint
}

// library loads and initializes the module on first use; the module stays
// loaded for the remainder of the process.
func library() (*p11Lib, error) {
	openOnce.Do(func() {
		modMu.Lock()
		path, label := modPath, modLabel
		modMu.Unlock()
		lib, libErr = openLibrary(path, label)
	})
	return lib, libErr
}

func openLibrary(path, label string) (*p11Lib, error) {
	ctx := pkcs11.New(path)
	if ctx == nil {
		return nil, errors.Errorf("unable to load PKCS#11 module: %s", path)
	}
	if err := ctx.Initialize(); err != nil {
		return nil, errors.WithMessagef(err, "Initialize: %s", path)
	}

	slots, err := ctx.GetSlotList(true)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(slots) == 0 {
		return nil, errors.Errorf("no token present: %s", path)
	}

	slot := slots[0]
	if label != "" {
		found := false
		for _, id := range slots {
			ti, err := ctx.GetTokenInfo(id)
			if err != nil {
				logger.Warningf("reason=GetTokenInfo, slotID=%d, err=[%+v]", id, err)
				continue
			}
			if strings.TrimSpace(ti.Label) == label {
				slot, found = id, true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("token not found: %q", label)
		}
	}

	logger.KV(xlog.INFO, "module", path, "slot", slot)
	return &p11Lib{ctx: ctx, slot: slot}, nil
}
