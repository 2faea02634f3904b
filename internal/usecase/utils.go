package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const entityIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewEntityID는 고정 길이 12자의 무작위 엔티티 ID를 생성합니다.
func NewEntityID() (string, error) {
	id, err := gonanoid.Generate(entityIDAlphabet, 12)
	if err != nil {
		return "", fmt.Errorf("엔티티 ID 생성 실패: %w", err)
	}
	return id, nil
}

// GenerateTokenSecret은 지정된 바이트 길이의 무작위 시크릿을 hex 문자열로 생성합니다.
func GenerateTokenSecret(lengthBytes int) (string, error) {
	if lengthBytes <= 0 {
		lengthBytes = 32
	}
	b := make([]byte, lengthBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("토큰 시크릿 생성 실패: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateRandomString은 지정된 길이의 무작위 문자열을 생성합니다.
func GenerateRandomString(length int) string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	b := make([]byte, length)
	for i := range b {
		randIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		b[i] = letters[randIndex.Int64()]
	}
	return string(b)
}

// HashPassword는 비밀번호를 해싱하고 솔트를 반환합니다.
func HashPassword(password string, cost int) (hashedPassword string, salt string, err error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	// 솔트 생성
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}
	salt = base64.StdEncoding.EncodeToString(saltBytes)

	// 비밀번호 해싱
	hash, err := bcrypt.GenerateFromPassword([]byte(password+salt), cost)
	if err != nil {
		return "", "", err
	}

	return string(hash), salt, nil
}

// VerifyPassword는 제공된 비밀번호가 저장된 해시와 일치하는지 확인합니다.
func VerifyPassword(hashedPassword, inputPassword, salt string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(inputPassword+salt))
}

// isValidEmail은 이메일 형식이 유효한지 확인합니다.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
