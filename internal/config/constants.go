// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "FlashcardKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultStorageDir         = "."
	DefaultStorageFilePattern = "%s.json"
	DefaultCORSMaxAge         = 300
)

// サンプル API が返す固定の単語と例文
const (
	SampleWord     = "apple"
	SampleSentence = "I eat an apple every day."
)
