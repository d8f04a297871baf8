package services

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Token chỉ chứa userid, không chứa role.
// Vai trò luôn được đọc lại từ DB ở mỗi request.
func GenerateToken(userID uint, minutes int) (string, error) {
	claims := jwt.MapClaims{
		"userid": userID,
		"exp":    time.Now().Add(time.Duration(minutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	userID, ok := claims["userid"].(float64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in token claims")
	}

	return uint(userID), nil
}

// Không có giá trị mặc định: main kiểm tra JWT_SECRET lúc khởi động.
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
