// Package web はバイナリに埋め込んだページテンプレートとクライアントスクリプトを提供します。
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates はページテンプレートを解析して返します。
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static は /static/ 以下で配信するファイル群です。
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// 埋め込みパスは固定なのでここには来ない
		panic(err)
	}
	return sub
}
