package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/aes-workbench/internal/domain/crypto"
	"github.com/MGTheTrain/aes-workbench/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AESHandler defines the interface for handling AES operations
type AESHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	GenerateKey(ctx *gin.Context)
	GenerateIV(ctx *gin.Context)
	Convert(ctx *gin.Context)
	Inspect(ctx *gin.Context)
	ListModes(ctx *gin.Context)
	Health(ctx *gin.Context)
}

// aesHandler holds the AES service and the defaults applied to incomplete requests
type aesHandler struct {
	aesService crypto.AESService
	defaults   config.CipherDefaults
}

// NewAESHandler creates a new AESHandler
func NewAESHandler(aesService crypto.AESService, defaults config.CipherDefaults) AESHandler {
	return &aesHandler{
		aesService: aesService,
		defaults:   defaults,
	}
}

// Encrypt handles the POST request to encrypt a plaintext
// @Summary Encrypt a plaintext with AES
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption parameters"
// @Success 200 {object} crypto.CipherOutput
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *aesHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	mode, keyFormat, ivFormat, err := handler.resolve(request.Mode, request.KeyFormat, request.IVFormat)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := handler.aesService.Encrypt(crypto.EncryptParams{
		Mode:      mode,
		Key:       request.Key,
		KeyFormat: keyFormat,
		IV:        request.IV,
		IVFormat:  ivFormat,
		Plaintext: request.Plaintext,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Decrypt handles the POST request to decrypt a hex ciphertext or Base64 container
// @Summary Decrypt a ciphertext with AES
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption parameters"
// @Success 200 {object} crypto.CipherOutput
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *aesHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	mode, keyFormat, ivFormat, err := handler.resolve(request.Mode, request.KeyFormat, request.IVFormat)
	if err != nil {
		respondError(ctx, err)
		return
	}

	rawFormat := request.CiphertextFormat
	if rawFormat == "" {
		rawFormat = handler.defaults.CiphertextFormat
	}
	ciphertextFormat, err := crypto.ParseCiphertextFormat(rawFormat)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := handler.aesService.Decrypt(crypto.DecryptParams{
		Mode:             mode,
		Key:              request.Key,
		KeyFormat:        keyFormat,
		IV:               request.IV,
		IVFormat:         ivFormat,
		Ciphertext:       request.Ciphertext,
		CiphertextFormat: ciphertextFormat,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// GenerateKey handles the POST request to generate a random key
// @Summary Generate a random AES key
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest false "Key size in bytes"
// @Success 201 {object} MaterialResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *aesHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest
	if ctx.Request.ContentLength != 0 {
		if !bindAndValidate(ctx, &request, request.Validate) {
			return
		}
	}

	keySize := request.KeySize
	if keySize == 0 {
		keySize = handler.defaults.KeySize
	}

	keyHex, err := handler.aesService.GenerateKey(keySize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, MaterialResponse{Hex: keyHex, Length: keySize})
}

// GenerateIV handles the POST request to generate a random IV
// @Summary Generate a random 16-byte IV
// @Tags AES
// @Produce json
// @Success 201 {object} MaterialResponse
// @Router /ivs [post]
func (handler *aesHandler) GenerateIV(ctx *gin.Context) {
	ivHex, err := handler.aesService.GenerateIV()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, MaterialResponse{Hex: ivHex, Length: crypto.IVSize})
}

// Convert handles the POST request to re-encode a key or IV between text and hex
// @Summary Convert a key or IV between text and hex
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body ConvertRequest true "Value and formats"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Router /convert [post]
func (handler *aesHandler) Convert(ctx *gin.Context) {
	var request ConvertRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	from, err := crypto.ParseFormat(request.From)
	if err != nil {
		respondError(ctx, err)
		return
	}
	to, err := crypto.ParseFormat(request.To)
	if err != nil {
		respondError(ctx, err)
		return
	}

	value, err := handler.aesService.Convert(request.Value, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertResponse{Value: value, Format: string(to)})
}

// Inspect handles the POST request to report how far a key or IV is from being accepted
// @Summary Inspect the length of a key or IV
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body InspectRequest true "Value, format and kind"
// @Success 200 {object} crypto.MaterialInfo
// @Failure 400 {object} ErrorResponse
// @Router /inspect [post]
func (handler *aesHandler) Inspect(ctx *gin.Context) {
	var request InspectRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	kind := crypto.MaterialKind(request.Kind)
	rawFormat := request.Format
	if rawFormat == "" {
		rawFormat = handler.defaults.KeyFormat
		if kind == crypto.MaterialIV {
			rawFormat = handler.defaults.IVFormat
		}
	}
	format, err := crypto.ParseFormat(rawFormat)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.aesService.Inspect(request.Value, format, kind))
}

// ListModes handles the GET request to list the supported modes
// @Summary List supported AES modes
// @Tags AES
// @Produce json
// @Success 200 {array} ModeResponse
// @Router /modes [get]
func (handler *aesHandler) ListModes(ctx *gin.Context) {
	modes := crypto.SupportedModes()
	response := make([]ModeResponse, 0, len(modes))
	for _, mode := range modes {
		response = append(response, ModeResponse{
			Mode:       mode,
			RequiresIV: mode.RequiresIV(),
			Streaming:  mode.IsStreaming(),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// Health handles the GET request for liveness probes
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *aesHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// resolve applies the configured defaults to empty fields and parses them
func (handler *aesHandler) resolve(rawMode, rawKeyFormat, rawIVFormat string) (crypto.Mode, crypto.Format, crypto.Format, error) {
	if rawMode == "" {
		rawMode = handler.defaults.Mode
	}
	if rawKeyFormat == "" {
		rawKeyFormat = handler.defaults.KeyFormat
	}
	if rawIVFormat == "" {
		rawIVFormat = handler.defaults.IVFormat
	}

	mode, err := crypto.ParseMode(rawMode)
	if err != nil {
		return "", "", "", err
	}
	keyFormat, err := crypto.ParseFormat(rawKeyFormat)
	if err != nil {
		return "", "", "", err
	}
	ivFormat, err := crypto.ParseFormat(rawIVFormat)
	if err != nil {
		return "", "", "", err
	}
	return mode, keyFormat, ivFormat, nil
}

// bindAndValidate binds the JSON body into request and runs validateFn,
// writing a 400 (413 for an oversized body) response and returning false on failure.
func bindAndValidate(ctx *gin.Context, request interface{}, validateFn func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
				Kind:    KindPayloadTooLarge,
			})
			return false
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid request body: %v", err),
			Kind:    KindInvalidRequest,
		})
		return false
	}
	if err := validateFn(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
			Kind:    KindInvalidRequest,
		})
		return false
	}
	return true
}

// respondError maps an error kind to its HTTP status
func respondError(ctx *gin.Context, err error) {
	kind := crypto.KindOf(err)

	status := http.StatusBadRequest
	switch kind {
	case crypto.KindDecryptionFailed:
		status = http.StatusUnprocessableEntity
	case crypto.KindUnknown:
		status = http.StatusInternalServerError
	}

	ctx.JSON(status, ErrorResponse{Message: err.Error(), Kind: kind})
}
