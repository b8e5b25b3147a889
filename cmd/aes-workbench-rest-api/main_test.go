//go:build unit
// +build unit

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := &testutil.RecordingLogger{}
	aesService, err := initializeAESService(log)
	require.NoError(t, err)

	cfg := &config.RestConfig{
		Port:           "8080",
		MaxBodyBytes:   1 << 20,
		CORS:           config.CORSSettings{AllowOrigins: []string{"*"}},
		CipherDefaults: config.DefaultCipherDefaults(),
	}
	return newRouter(cfg, aesService, log)
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_EncryptDecryptRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := post(t, r, "/api/v1/aes/encrypt",
		`{"mode": "CBC", "key": "000102030405060708090a0b0c0d0e0f", "iv": "0f0e0d0c0b0a09080706050403020100", "plaintext": "hello world"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var encrypted crypto.CipherOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))

	body, err := json.Marshal(map[string]string{
		"mode":       "CBC",
		"key":        "000102030405060708090a0b0c0d0e0f",
		"iv":         "0f0e0d0c0b0a09080706050403020100",
		"ciphertext": encrypted.CiphertextHex,
	})
	require.NoError(t, err)

	w = post(t, r, "/api/v1/aes/decrypt", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var decrypted crypto.CipherOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))
	assert.Equal(t, "hello world", decrypted.Plaintext)
}

func TestRouter_DecryptWithWrongKey(t *testing.T) {
	r := setupRouter(t)

	w := post(t, r, "/api/v1/aes/encrypt",
		`{"key": "000102030405060708090a0b0c0d0e0f", "iv": "0f0e0d0c0b0a09080706050403020100", "plaintext": "hello world"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var encrypted crypto.CipherOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))

	body, err := json.Marshal(map[string]string{
		"key":        "ffeeddccbbaa99887766554433221100",
		"iv":         "0f0e0d0c0b0a09080706050403020100",
		"ciphertext": encrypted.CiphertextHex,
	})
	require.NoError(t, err)

	w = post(t, r, "/api/v1/aes/decrypt", string(body))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), crypto.KindDecryptionFailed)
}

func TestRouter_MissingIV(t *testing.T) {
	r := setupRouter(t)

	w := post(t, r, "/api/v1/aes/encrypt", `{"key": "000102030405060708090a0b0c0d0e0f", "plaintext": "hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), crypto.KindMissingIV)
}
