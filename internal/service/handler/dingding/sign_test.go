package dingding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/errs"
)

func TestSign(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		ts      int64
		secret  string
		want    string
		wantErr error
	}{
		{
			name:   "固定输入",
			ts:     1700000000000,
			secret: "testsecret",
			want:   "d043yCasNZ%2BKC1N0lrVg%2BAan0gEIKPvRfzRqMlUUwzk%3D",
		},
		{
			name:   "空secret",
			ts:     1700000000000,
			secret: "",
			want:   "wQEehkxzIwBWYeCJy%2BICeNfgZqNPmpFiMFDT6Qxm81Y%3D",
		},
		{
			name:    "secret不是UTF-8",
			ts:      1700000000000,
			secret:  string([]byte{0xff, 0xfe}),
			wantErr: errs.ErrSignFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sign(tc.ts, tc.secret)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	const (
		ts     int64 = 1700000000000
		secret       = "testsecret"
	)
	first, err := Sign(ts, secret)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := Sign(ts, secret)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}

	// 按钉钉文档的步骤单独算一遍
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("1700000000000\ntestsecret"))
	want := url.QueryEscape(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	assert.Equal(t, want, first)

	other, err := Sign(ts+1, secret)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
