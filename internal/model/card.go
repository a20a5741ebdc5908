// internal/model/card.go
package model

import "strings"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// FlashCard は保存された単語カード1件です。書き込み後は削除以外で変更されません。
type FlashCard struct {
	Word        string `json:"EN"`
	Sentence    string `json:"CH"`
	Translation string `json:"JP"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// UserCollection はユーザー1人分のカード (キー -> カード) です。
type UserCollection map[string]FlashCard

// SaveCardRequest は /save のリクエストボディ
// 旧クライアントは word/sentence/chinese、新しいクライアントは EN/CH/JP を送ってくる
type SaveCardRequest struct {
	Email       string `json:"email"`
	Word        string `json:"word"`
	EN          string `json:"EN"`
	Sentence    string `json:"sentence"`
	CH          string `json:"CH"`
	JP          string `json:"JP"`
	Translation string `json:"translation"`
	Chinese     string `json:"chinese"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04:05"`
}

// Card はエイリアスを解決して FlashCard を組み立てます。空白だけの値は無いものとして次の候補を見ます。
// date/time はそのまま写します。
func (r *SaveCardRequest) Card() FlashCard {
	return FlashCard{
		Word:        firstNonBlank(r.EN, r.Word),
		Sentence:    firstNonBlank(r.CH, r.Sentence),
		Translation: firstNonBlank(r.JP, r.Translation, r.Chinese),
		Date:        r.Date,
		Time:        r.Time,
	}
}

// HasText は空白以外のテキストを持つフィールドが1つでもあるかを返します。
func (c FlashCard) HasText() bool {
	for _, s := range []string{c.Word, c.Sentence, c.Translation} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// EmailRequest は /load と /delete/{key} のリクエストボディ
type EmailRequest struct {
	Email string `json:"email"`
}

// SampleResponse は /api/data のレスポンス
type SampleResponse struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

// MessageResponse は保存・削除成功時のレスポンス
type MessageResponse struct {
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`
}
