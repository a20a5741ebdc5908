package webutil

import (
	"log"
	"reflect"
	"strings"

	"flashcard_keep/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// cardTextTag は「word / sentence / 訳のどれか1つは空白以外」を表す構造体レベルのタグです。
const cardTextTag = "cardtext"

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	Validator.RegisterStructValidation(saveCardStructLevel, model.SaveCardRequest{})

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		})
	}

	registerTranslation(cardTextTag, "at least one of word, sentence or translation must be filled in")
	registerTranslation("datetime", "{0} is not in the expected format")
}

func saveCardStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(model.SaveCardRequest)
	card := req.Card()
	if !card.HasText() {
		sl.ReportError(req.Word, "word", "Word", cardTextTag, "")
	}
}
