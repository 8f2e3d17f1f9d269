package tools

import "golang.org/x/crypto/bcrypt"

// PasswordEncrypt 使用 bcrypt 对明文密码加盐哈希，明文不落库
func PasswordEncrypt(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	PanicOnErr(err)
	return string(hash)
}

// PasswordCompare 校验明文密码与存储的哈希是否匹配
func PasswordCompare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
