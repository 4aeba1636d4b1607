package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

type AuthSuite struct {
	suite.Suite
}

func (s *AuthSuite) Test_PBKDF2() {
	secret, err := HashPassword("testpassword", "12345678", api.AuthHashTypePBKDF2)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "ohnXXocPMj5z93UODPHXxKfz1eO5fr+C", secret)
	assert.Equal(s.T(), 32, len(secret))

	again, err := HashPassword("testpassword", "12345678", api.AuthHashTypePBKDF2)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), secret, again)

	otherSerial, _ := HashPassword("testpassword", "87654321", api.AuthHashTypePBKDF2)
	assert.NotEqual(s.T(), secret, otherSerial)

	otherPassword, _ := HashPassword("testpassword2", "12345678", api.AuthHashTypePBKDF2)
	assert.NotEqual(s.T(), secret, otherPassword)

	noSerial, err := HashPassword("testpassword", "", api.AuthHashTypePBKDF2)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), "z2Rn5ds+qLv/f+xycHcZ7cGaYEMFkEQd", noSerial)
}

func (s *AuthSuite) Test_Bcrypt() {
	secret, err := HashPassword("testpassword", "12345678", api.AuthHashTypeBcrypt)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 31, len(secret))

	again, err := HashPassword("testpassword", "12345678", api.AuthHashTypeBcrypt)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), secret, again)

	other, err := HashPassword("testpassword", "12345679", api.AuthHashTypeBcrypt)
	assert.Nil(s.T(), err)
	assert.NotEqual(s.T(), secret, other)
}

// the salt string as understood by standard bcrypt implementations
func bcryptSaltString(encodedSalt string) string {
	return bcryptVersion + fmt.Sprintf("%02d", bcryptCost) + "$" + encodedSalt
}

// the derived secret must be a regular bcrypt hash of the sha256 digest
func (s *AuthSuite) Test_BcryptCompatibility() {
	salt, secret, err := hashBcrypt("testpassword", "12345678")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), ".........../.eKC/OWFA.", salt)

	digest := "9f735e0df9a1ddc702bf0a1a7b83033f9f7153a00c29de82cedadc9957289b05"
	assert.Equal(s.T(), digest, sha256Hex("testpassword"))

	hashed := bcryptSaltString(salt) + secret
	assert.Equal(s.T(), 60, len(hashed))
	assert.Nil(s.T(), bcrypt.CompareHashAndPassword([]byte(hashed), []byte(digest)))

	cost, err := bcrypt.Cost([]byte(hashed))
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 8, cost)
}

func (s *AuthSuite) Test_BcryptInvalidSerial() {
	_, err := HashPassword("testpassword", "abc12345", api.AuthHashTypeBcrypt)
	assert.True(s.T(), errors.Is(err, ErrInvalidSerial))

	_, err = HashPassword("testpassword", "", api.AuthHashTypeBcrypt)
	assert.True(s.T(), errors.Is(err, ErrInvalidSerial))
}

func (s *AuthSuite) Test_SerialSalt() {
	salt, err := serialSalt("12345678")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}, salt)

	salt, err = serialSalt("12345678901234567")
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6}, salt)
}

func (s *AuthSuite) Test_UnknownHashType() {
	_, err := HashPassword("testpassword", "12345678", api.AuthHashType("md5"))
	assert.True(s.T(), errors.Is(err, ErrUnknownHashType))
}

func (s *AuthSuite) Test_ComputeAuthResponse() {
	secret := "ohnXXocPMj5z93UODPHXxKfz1eO5fr+C"
	token1 := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	token2 := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	token3 := "cccccccccccccccccccccccccccccccc"

	response := ComputeAuthResponse(token1, token2, token3, secret)
	assert.Equal(s.T(), "eef4ab5e599839560f8e6930d4d022ecf049cab68df4e11f77990a4569b9edf6", response)
	assert.Equal(s.T(), response, ComputeAuthResponse(token1, token2, token3, secret))

	assert.NotEqual(s.T(), response, ComputeAuthResponse("x"+token1[1:], token2, token3, secret))
	assert.NotEqual(s.T(), response, ComputeAuthResponse(token1, "x"+token2[1:], token3, secret))
	assert.NotEqual(s.T(), response, ComputeAuthResponse(token1, token2, "x"+token3[1:], secret))
	assert.NotEqual(s.T(), response, ComputeAuthResponse(token1, token2, token3, "other"))
}

func (s *AuthSuite) Test_GenerateToken() {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateToken()
		assert.Equal(s.T(), 32, len(token))
		_, err := hex.DecodeString(token)
		assert.Nil(s.T(), err)
		assert.False(s.T(), seen[token])
		seen[token] = true
	}
}

func (s *AuthSuite) Test_SignSecuredMessage() {
	secret := "ohnXXocPMj5z93UODPHXxKfz1eO5fr+C"
	msg := &model.SetValueFrame{
		Type:      model.MsgTypeSetValue,
		RequestID: 1,
		Key:       "amp",
		Value:     16,
	}

	envelope, err := SignSecuredMessage(msg, secret)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.MsgTypeSecuredMsg, envelope.Type)
	assert.Equal(s.T(), "1sm", envelope.RequestID)
	assert.Equal(s.T(), `{"type":"setValue","requestId":1,"key":"amp","value":16}`, envelope.Data)
	assert.Equal(s.T(), "22295ae966b418686f658ee78fa24a034ea85cd66e0b879f4bab9472ca140c21", envelope.HMAC)

	var inner model.SetValueFrame
	assert.Nil(s.T(), json.Unmarshal([]byte(envelope.Data), &inner))
	assert.Equal(s.T(), "amp", inner.Key)
	assert.Equal(s.T(), int64(1), inner.RequestID)
	assert.Equal(s.T(), float64(16), inner.Value)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(envelope.Data))
	assert.Equal(s.T(), hex.EncodeToString(mac.Sum(nil)), envelope.HMAC)

	other, err := SignSecuredMessage(msg, "another secret")
	assert.Nil(s.T(), err)
	assert.NotEqual(s.T(), envelope.HMAC, other.HMAC)
	assert.Equal(s.T(), 64, len(other.HMAC))
}
