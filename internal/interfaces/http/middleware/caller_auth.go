package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"

	"contract-hub.backend/pkg/logger"
	"contract-hub.backend/pkg/redis"
	"go.uber.org/zap"
)

const replayKeyPrefix = "auth:sig:"

func replaySignatureKey(signature string) string {
	sum := sha256.Sum256([]byte(signature))
	return replayKeyPrefix + hex.EncodeToString(sum[:])
}

const (
	// CallerAddressKey is the context key for the authenticated caller
	CallerAddressKey = "caller_address"

	// CallerAddressHeader carries the claimed caller address
	CallerAddressHeader = "X-Caller-Address"
	// CallerSignatureHeader carries the personal-sign signature
	CallerSignatureHeader = "X-Caller-Signature"
	// CallerTimestampHeader carries the unix-seconds signing time
	CallerTimestampHeader = "X-Caller-Timestamp"
)

// CallerAuthMiddleware authenticates write requests by recovering the signer
// of a personal-sign message over "timestamp:METHOD:request-uri" and checking
// it against the claimed address. The recovered address becomes the caller
// for ownership and fee purposes.
func CallerAuthMiddleware(maxDrift time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetHeader(CallerAddressHeader)
		signature := c.GetHeader(CallerSignatureHeader)
		timestamp := c.GetHeader(CallerTimestampHeader)

		if address == "" || signature == "" || timestamp == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "caller address, signature and timestamp headers are required",
			})
			return
		}
		if !common.IsHexAddress(address) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid caller address"})
			return
		}

		ts, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid timestamp"})
			return
		}
		drift := time.Since(time.Unix(ts, 0))
		if drift > maxDrift || drift < -maxDrift {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "timestamp outside accepted window"})
			return
		}

		message := fmt.Sprintf("%s:%s:%s", timestamp, c.Request.Method, c.Request.URL.RequestURI())
		recovered, err := recoverSigner(message, signature)
		if err != nil {
			logger.Warn(c.Request.Context(), "caller signature rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid signature"})
			return
		}
		if recovered != common.HexToAddress(address) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "signature does not match caller address"})
			return
		}

		// each signature is good for one request within the drift window
		if redis.GetClient() != nil {
			fresh, err := redis.SetNX(c.Request.Context(), replaySignatureKey(signature), "1", 2*maxDrift)
			if err != nil {
				logger.Warn(c.Request.Context(), "signature replay check unavailable", zap.Error(err))
			} else if !fresh {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "signature already used"})
				return
			}
		}

		c.Set(CallerAddressKey, recovered.Hex())
		c.Next()
	}
}

func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("malformed signature: %w", err)
	}
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("signature must be 65 bytes, got %d", len(sig))
	}
	// wallets emit V as 27/28, go-ethereum expects 0/1
	if sig[64] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[64] -= 27
	}

	pubKey, err := ethcrypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("signature recovery failed: %w", err)
	}
	return ethcrypto.PubkeyToAddress(*pubKey), nil
}

// GetCallerAddress gets the authenticated caller address from context
func GetCallerAddress(c *gin.Context) (string, bool) {
	caller, exists := c.Get(CallerAddressKey)
	if !exists {
		return "", false
	}
	addr, ok := caller.(string)
	return addr, ok
}
