package metaclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// AppSecretProof calcula o HMAC-SHA256 do token usando o app secret como chave
func AppSecretProof(accessToken, appSecret string) (string, error) {
	if accessToken == "" {
		return "", errors.New("access token é obrigatório para o appsecret_proof")
	}
	if appSecret == "" {
		return "", errors.New("app secret é obrigatório para o appsecret_proof")
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	if _, err := mac.Write([]byte(accessToken)); err != nil {
		return "", err
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}
