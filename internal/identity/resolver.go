// Package identity はクライアントが送ってくるメールアドレスから
// ファイル名に使える保存キーを作ります。認証ではありません。
package identity

import (
	"regexp"
	"strings"

	"flashcard_keep/internal/model"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Resolve は "@" より前の部分を取り出し、英数字以外の連続を "_" 1文字に置き換えます。
// 空白も他の記号と同じく "_" になります。
// 空文字、空白のみ、"@x.com" のようにローカル部が空の場合は model.ErrAuthenticationMissing を返します。
//
// 正規化後のローカル部が同じメールアドレス同士は同じキーになります。
func Resolve(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", model.ErrAuthenticationMissing
	}

	local, _, _ := strings.Cut(email, "@")
	if strings.TrimSpace(local) == "" {
		return "", model.ErrAuthenticationMissing
	}

	return nonAlnum.ReplaceAllString(local, "_"), nil
}
