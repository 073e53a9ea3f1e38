// Package password menyegel password sebelum disimpan ke kolom users.password.
package password

import (
	"errors"
	"fmt"
	"strings"

	openssl "github.com/Luzifer/go-openssl/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeAES    = "aes"
	SchemeBcrypt = "bcrypt"
)

var ErrEmptyKey = errors.New("password: empty encryption key")

// Sealer mengubah plaintext password menjadi bentuk yang aman disimpan.
type Sealer interface {
	Seal(plain string) (string, error)
}

func NewSealer(scheme, key string) (Sealer, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeAES:
		if key == "" {
			return nil, ErrEmptyKey
		}
		return NewAESSealer(key), nil
	case SchemeBcrypt:
		return &BcryptSealer{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("password: unknown scheme %q", scheme)
	}
}

/* ======================== bcrypt ======================== */

type BcryptSealer struct {
	Cost int
}

func (s *BcryptSealer) Seal(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), s.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

/* ======================== AES (passphrase) ======================== */

// AESSealer menghasilkan format OpenSSL "Salted__" base64 (AES-256-CBC, kunci dari
// EVP_BytesToKey/MD5) yang sama dengan data password yang sudah ada di tabel users.
type AESSealer struct {
	passphrase string
	o          *openssl.OpenSSL
}

func NewAESSealer(passphrase string) *AESSealer {
	return &AESSealer{passphrase: passphrase, o: openssl.New()}
}

func (s *AESSealer) Seal(plain string) (string, error) {
	out, err := s.o.EncryptBytes(s.passphrase, []byte(plain), openssl.BytesToKeyMD5)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Open membuka hasil Seal. Dipakai flow login/registrasi eksternal dan test.
func (s *AESSealer) Open(sealed string) (string, error) {
	plain, err := s.o.DecryptBytes(s.passphrase, []byte(sealed), openssl.BytesToKeyMD5)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
