package hdwallet

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	seedIterations = 2048
	seedLength     = 64
	masterHMACKey  = "Bitcoin seed"
)

var (
	// ErrInvalidMnemonic is returned for phrases with an unsupported word count
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	errInvalidChild = errors.New("derived key out of range")
)

// validWordCounts are the BIP-39 phrase lengths
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// NormalizeMnemonic collapses whitespace and checks the word count. The
// checksum is not verified.
func NormalizeMnemonic(mnemonic string) (string, error) {
	words := strings.Fields(norm.NFKD.String(mnemonic))
	if !validWordCounts[len(words)] {
		return "", fmt.Errorf("%w: expected 12, 15, 18, 21 or 24 words, got %d", ErrInvalidMnemonic, len(words))
	}
	return strings.Join(words, " "), nil
}

// NewSeed derives the BIP-39 seed for mnemonic and passphrase
func NewSeed(mnemonic, passphrase string) []byte {
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte("mnemonic" + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, seedLength, sha512.New)
}

// extendedKey is a BIP-32 private node
type extendedKey struct {
	key       *big.Int
	chainCode []byte
}

func newMasterKey(seed []byte) (*extendedKey, error) {
	mac := hmac.New(sha512.New, []byte(masterHMACKey))
	mac.Write(seed)
	sum := mac.Sum(nil)

	key := new(big.Int).SetBytes(sum[:32])
	if key.Sign() == 0 || key.Cmp(crypto.S256().Params().N) >= 0 {
		return nil, errInvalidChild
	}
	return &extendedKey{key: key, chainCode: sum[32:]}, nil
}

func (k *extendedKey) privateKey() (*ecdsa.PrivateKey, error) {
	return crypto.ToECDSA(math.PaddedBigBytes(k.key, 32))
}

func (k *extendedKey) child(index uint32) (*extendedKey, error) {
	var data []byte
	if index >= 0x80000000 {
		data = append([]byte{0x00}, math.PaddedBigBytes(k.key, 32)...)
	} else {
		priv, err := k.privateKey()
		if err != nil {
			return nil, err
		}
		data = crypto.CompressPubkey(&priv.PublicKey)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, k.chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)

	n := crypto.S256().Params().N
	il := new(big.Int).SetBytes(sum[:32])
	if il.Cmp(n) >= 0 {
		return nil, errInvalidChild
	}
	childKey := il.Add(il, k.key)
	childKey.Mod(childKey, n)
	if childKey.Sign() == 0 {
		return nil, errInvalidChild
	}

	return &extendedKey{key: childKey, chainCode: sum[32:]}, nil
}

func (k *extendedKey) derive(path accounts.DerivationPath) (*extendedKey, error) {
	node := k
	for _, index := range path {
		var err error
		if node, err = node.child(index); err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", path, err)
		}
	}
	return node, nil
}

// DeriveAccounts returns count addresses starting at m/44'/60'/0'/0/start
func DeriveAccounts(seed []byte, start, count int) ([]common.Address, error) {
	if start < 0 || count < 1 {
		return nil, fmt.Errorf("invalid address range: start %d, count %d", start, count)
	}

	master, err := newMasterKey(seed)
	if err != nil {
		return nil, err
	}

	base := make(accounts.DerivationPath, len(accounts.DefaultBaseDerivationPath))
	copy(base, accounts.DefaultBaseDerivationPath)
	base[len(base)-1] = uint32(start)

	next := accounts.DefaultIterator(base)
	addresses := make([]common.Address, 0, count)
	for range count {
		node, err := master.derive(next())
		if err != nil {
			return nil, err
		}
		priv, err := node.privateKey()
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, crypto.PubkeyToAddress(priv.PublicKey))
	}

	return addresses, nil
}
