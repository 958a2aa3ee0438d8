package dingding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"notification-dispatch/internal/errs"
)

// Sign 钉钉加签：timestamp + "\n" + secret 用 secret 做 HmacSHA256，再 base64，再 urlEncode
func Sign(timestampMillis int64, secret string) (string, error) {
	if !utf8.ValidString(secret) {
		return "", fmt.Errorf("%w: secret 不是合法的 UTF-8 编码", errs.ErrSignFailed)
	}
	stringToSign := strconv.FormatInt(timestampMillis, 10) + "\n" + secret

	mac := hmac.New(sha256.New, []byte(secret))
	if _, err := mac.Write([]byte(stringToSign)); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSignFailed, err)
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(mac.Sum(nil))), nil
}
