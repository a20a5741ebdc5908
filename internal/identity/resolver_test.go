package identity

import (
	"testing"

	"flashcard_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr error
	}{
		{name: "正常系: ドット区切り", email: "a.b@x.com", want: "a_b"},
		{name: "正常系: 英数字のみ", email: "user42@example.com", want: "user42"},
		{name: "正常系: 連続する記号は1つにまとめる", email: "john..+-doe@mail.com", want: "john_doe"},
		{name: "正常系: 先頭と末尾の記号", email: ".x.@mail.com", want: "_x_"},
		{name: "正常系: @なし", email: "plain-name", want: "plain_name"},
		{name: "正常系: 最初の@で区切る", email: "a@b@c", want: "a"},
		{name: "正常系: 前後の空白も記号として置換", email: "  u@x.com ", want: "_u"},
		{name: "正常系: 先頭の空白とドット", email: " a.b@x", want: "_a_b"},
		{name: "正常系: 非ASCII文字は置換", email: "tarō@x.jp", want: "tar_"},
		{name: "異常系: 空文字", email: "", wantErr: model.ErrAuthenticationMissing},
		{name: "異常系: 空白のみ", email: "   ", wantErr: model.ErrAuthenticationMissing},
		{name: "異常系: ローカル部が空", email: "@x.com", wantErr: model.ErrAuthenticationMissing},
		{name: "異常系: ローカル部が空白のみ", email: "  @x.com", wantErr: model.ErrAuthenticationMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first, err := Resolve("same.user@x.com")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Resolve("same.user@x.com")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_SameLocalPartCollides(t *testing.T) {
	a, err := Resolve("a.b@x.com")
	require.NoError(t, err)
	b, err := Resolve("a-b@y.org")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
