package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestTokenCipher_RoundTrip(t *testing.T) {
	c, err := NewTokenCipher(testKeyHex)
	require.NoError(t, err)

	tests := []string{
		"EAAB-token-de-teste",
		"",
		"token com acentuação e espaços",
		strings.Repeat("x", 1024),
	}

	for _, plaintext := range tests {
		encrypted, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.True(t, IsEncrypted(encrypted))

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestTokenCipher_NonceAleatorio(t *testing.T) {
	c, err := NewTokenCipher(testKeyHex)
	require.NoError(t, err)

	a, err := c.Encrypt("mesmo-token")
	require.NoError(t, err)
	b, err := c.Encrypt("mesmo-token")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenCipher_TextoPuroPassaDireto(t *testing.T) {
	c, err := NewTokenCipher(testKeyHex)
	require.NoError(t, err)

	out, err := c.Decrypt("EAAB-legado")
	require.NoError(t, err)
	assert.Equal(t, "EAAB-legado", out)
}

func TestTokenCipher_Erros(t *testing.T) {
	c, err := NewTokenCipher(testKeyHex)
	require.NoError(t, err)

	other, err := NewTokenCipher(strings.Repeat("k", 32))
	require.NoError(t, err)

	encrypted, err := other.Encrypt("token")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		err   error
	}{
		{name: "Base64 inválido", value: EncryptedPrefix + "%%%", err: ErrMalformedCipher},
		{name: "Conteúdo curto demais", value: EncryptedPrefix + "AAAA", err: ErrMalformedCipher},
		{name: "Chave diferente", value: encrypted, err: ErrDecryptionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.value)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewTokenCipher_Chaves(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "Hex de 64 caracteres", key: testKeyHex},
		{name: "Base64 de 32 bytes", key: "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="},
		{name: "32 bytes crus", key: strings.Repeat("a", 32)},
		{name: "Vazia", key: "", wantErr: true},
		{name: "Curta demais", key: "curta", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenCipher(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			assert.NoError(t, err)
		})
	}
}
