package dingding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		receiver []string
		want     Target
	}{
		{
			name:     "只有ALL",
			receiver: []string{"ALL"},
			want:     Target{AtAll: true, UserIDs: []string{}},
		},
		{
			name:     "指定用户",
			receiver: []string{"u1", "u2"},
			want:     Target{UserIDs: []string{"u1", "u2"}},
		},
		{
			name:     "ALL后面的元素被忽略",
			receiver: []string{"ALL", "u2"},
			want:     Target{AtAll: true, UserIDs: []string{}},
		},
		{
			name:     "ALL不在第一个不生效",
			receiver: []string{"u1", "ALL"},
			want:     Target{UserIDs: []string{"u1", "ALL"}},
		},
		{
			name:     "空接收者",
			receiver: []string{},
			want:     Target{UserIDs: []string{}},
		},
		{
			name:     "nil接收者",
			receiver: nil,
			want:     Target{UserIDs: []string{}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ResolveTarget(tc.receiver))
		})
	}
}

func TestResolveTarget_CopiesReceiver(t *testing.T) {
	t.Parallel()

	receiver := []string{"u1"}
	target := ResolveTarget(receiver)
	receiver[0] = "changed"
	assert.Equal(t, []string{"u1"}, target.UserIDs)
}
