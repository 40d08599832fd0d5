package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EncryptedPrefix marca valores cifrados; valores sem o prefixo são tratados como texto puro
const EncryptedPrefix = "enc:v1:"

var (
	ErrInvalidKey        = errors.New("chave de criptografia deve ter 32 bytes")
	ErrMalformedCipher   = errors.New("valor cifrado malformado")
	ErrDecryptionFailure = errors.New("falha ao decifrar valor")
)

// TokenCipher cifra tokens de acesso com AES-256-GCM.
// A chave é validada uma vez na criação e pertence à instância.
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher aceita a chave em hex (64 caracteres), base64 ou 32 bytes crus
func NewTokenCipher(rawKey string) (*TokenCipher, error) {
	key, err := parseKey(rawKey)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &TokenCipher{aead: aead}, nil
}

func parseKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidKey
	}

	if len(raw) == 64 {
		if key, err := hex.DecodeString(raw); err == nil {
			return key, nil
		}
	}
	if key, err := base64.StdEncoding.DecodeString(raw); err == nil && len(key) == 32 {
		return key, nil
	}
	if len(raw) == 32 {
		return []byte(raw), nil
	}

	return nil, ErrInvalidKey
}

// Encrypt devolve enc:v1: + base64(nonce || ciphertext)
func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return EncryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt inverte Encrypt; valores sem prefixo são devolvidos sem alteração
func (c *TokenCipher) Decrypt(value string) (string, error) {
	if !IsEncrypted(value) {
		return value, nil
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, EncryptedPrefix))
	if err != nil {
		return "", ErrMalformedCipher
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return "", ErrMalformedCipher
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailure
	}

	return string(plaintext), nil
}

func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, EncryptedPrefix)
}
