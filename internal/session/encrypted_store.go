package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"

	"trouvaille/models"
)

// Argon2id parameters per OWASP recommendations: 1 iteration, 64 MiB,
// 4 threads, 256-bit key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16
)

type encryptedStore struct {
	path       string
	passphrase string
}

// sealedSession is the on-disk envelope of the encrypted store. The blob is
// nonce-prefixed AES-256-GCM ciphertext of the JSON credential pair.
type sealedSession struct {
	Salt []byte `json:"salt"`
	Blob []byte `json:"blob"`
}

// NewEncryptedStore returns a [Store] that seals the credential pair with
// AES-256-GCM under an Argon2id key derived from passphrase. The file
// contract is identical to the plain store.
func NewEncryptedStore(path, passphrase string) Store {
	return &encryptedStore{path: path, passphrase: passphrase}
}

func (s *encryptedStore) Set(creds models.Credentials) error {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	plaintext, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	gcm, err := newGCM(s.passphrase, salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Get can split it back out.
	blob := append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...)

	payload, err := json.Marshal(sealedSession{Salt: salt, Blob: blob})
	if err != nil {
		return fmt.Errorf("encode sealed session: %w", err)
	}
	return writeSessionFile(s.path, payload)
}

func (s *encryptedStore) Get() (models.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Credentials{}, ErrNoSession
		}
		return models.Credentials{}, fmt.Errorf("read session file: %w", err)
	}

	var sealed sealedSession
	if err = json.Unmarshal(data, &sealed); err != nil {
		return models.Credentials{}, fmt.Errorf("decode sealed session: %w", err)
	}

	gcm, err := newGCM(s.passphrase, sealed.Salt)
	if err != nil {
		return models.Credentials{}, err
	}
	if len(sealed.Blob) < gcm.NonceSize() {
		return models.Credentials{}, fmt.Errorf("sealed session blob too short")
	}

	nonce, ciphertext := sealed.Blob[:gcm.NonceSize()], sealed.Blob[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.Credentials{}, ErrBadPassphrase
	}

	var creds models.Credentials
	if err = json.Unmarshal(plaintext, &creds); err != nil {
		return models.Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (s *encryptedStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *encryptedStore) Present() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
