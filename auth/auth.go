package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLength  = 256
	secretLength     = 32

	bcryptCost       = 8
	bcryptSaltLength = 16
	bcryptHashLength = 23 // bytes of the cipher text that are encoded
	bcryptVersion    = "$2a$"
)

// the alphabet used by the firmware's bcrypt implementation
const bcryptAlphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var bcryptEncoding = base64.NewEncoding(bcryptAlphabet).WithPadding(base64.NoPadding)

var magicCipherData = []byte("OrpheanBeholderScryDoubt")

var (
	ErrInvalidSerial   = errors.New("serial must be digits only")
	ErrUnknownHashType = errors.New("unknown hash type")
)

// Derive the shared secret for the given password and serial number
func HashPassword(password, serial string, hashType api.AuthHashType) (string, error) {
	switch hashType {
	case api.AuthHashTypePBKDF2:
		return hashPBKDF2(password, serial), nil
	case api.AuthHashTypeBcrypt:
		_, secret, err := hashBcrypt(password, serial)
		return secret, err
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownHashType, hashType)
}

func hashPBKDF2(password, serial string) string {
	key := pbkdf2.Key([]byte(password), []byte(serial), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)

	return base64.StdEncoding.EncodeToString(key)[:secretLength]
}

// returns the encoded salt and the encoded hash without the salt prefix
func hashBcrypt(password, serial string) (string, string, error) {
	salt, err := serialSalt(serial)
	if err != nil {
		return "", "", err
	}

	digest := sha256.Sum256([]byte(password))
	key := []byte(hex.EncodeToString(digest[:]))
	// the key is used zero terminated, like the C implementation does
	ckey := append(key, 0)

	c, err := blowfish.NewSaltedCipher(ckey, salt)
	if err != nil {
		return "", "", err
	}
	for i := 0; i < 1<<bcryptCost; i++ {
		blowfish.ExpandKey(ckey, c)
		blowfish.ExpandKey(salt, c)
	}

	cipherData := make([]byte, len(magicCipherData))
	copy(cipherData, magicCipherData)
	for i := 0; i < len(cipherData); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(cipherData[i:i+8], cipherData[i:i+8])
		}
	}

	return bcryptEncoding.EncodeToString(salt), bcryptEncoding.EncodeToString(cipherData[:bcryptHashLength]), nil
}

// the salt consists of the digit values of the serial, left padded with zero bytes
func serialSalt(serial string) ([]byte, error) {
	if serial == "" {
		return nil, fmt.Errorf("%w: got empty serial", ErrInvalidSerial)
	}

	values := make([]byte, 0, len(serial))
	for _, ch := range serial {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%w: got %s", ErrInvalidSerial, serial)
		}
		values = append(values, byte(ch-'0'))
	}

	salt := make([]byte, bcryptSaltLength)
	if len(values) >= bcryptSaltLength {
		copy(salt, values[:bcryptSaltLength])
	} else {
		copy(salt[bcryptSaltLength-len(values):], values)
	}

	return salt, nil
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Compute the value of the hash field of the auth frame
func ComputeAuthResponse(token1, token2, token3, secret string) string {
	hash1 := sha256Hex(token1 + secret)

	return sha256Hex(token3 + token2 + hash1)
}

// Generate the client nonce token3, 32 hex characters
func GenerateToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Wrap a set value frame into a signed envelope
func SignSecuredMessage(message *model.SetValueFrame, secret string) (*model.SecuredFrame, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(payload)

	return &model.SecuredFrame{
		Type:      model.MsgTypeSecuredMsg,
		Data:      string(payload),
		RequestID: strconv.FormatInt(message.RequestID, 10) + model.SecuredRequestIDSuffix,
		HMAC:      hex.EncodeToString(mac.Sum(nil)),
	}, nil
}
