// Package main provides localization for the shotframe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":       "入力",
		"Style":       "スタイル",
		"Annotations": "注釈",
		"Output":      "出力",
		"Browser":     "ブラウザ設定",
		"Debug":       "デバッグ",
		"Logging":     "ログ",

		// Root command
		"Turn screenshots into presentation-ready images": "スクリーンショットを見栄えのよい画像に仕上げます",
		"YAML configuration file":                         "YAML 設定ファイル",
		"Environment files to load (default: .env)":       "読み込む環境変数ファイル（デフォルト: .env）",
		"Log level (debug, info, warn, error)":            "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                         "全てのログ出力を抑制",

		// Beautify command
		"Frame a screenshot on a background":            "スクリーンショットを背景の上に配置",
		"Read the screenshot from the clipboard":        "クリップボードからスクリーンショットを読み込む",
		"Capture this URL instead of reading a file":    "ファイルの代わりにこの URL をキャプチャ",
		"Capture the whole page, not just the viewport": "ビューポートだけでなくページ全体をキャプチャ",
		"Preset id (see the presets command)":           "プリセット ID（presets コマンドを参照）",
		"Background: gradient:<id>, solid:<id>, mesh:<id>, a color or a linear-gradient": "背景: gradient:<id>, solid:<id>, mesh:<id>, 色または linear-gradient",
		"Padding around the screenshot (0-128)": "スクリーンショット周囲の余白（0-128）",
		"Corner radius (0-64)":                  "角の丸み（0-64）",
		"Shadow (none, soft, medium, hard)":     "影（none, soft, medium, hard）",
		"Cast the shadow under device frames":   "デバイスフレームにも影を付ける",
		"Device frame":                          "デバイスフレーム",
		"Rotation in degrees as x,y (up to 15)": "回転角度 x,y（最大 15 度）",
		"Watermark text":                        "透かしのテキスト",
		"Disable the watermark (Pro)":           "透かしを無効化（Pro）",
		"Seed for mesh background noise":        "メッシュ背景ノイズのシード",
		"YAML or JSON file with annotations":    "注釈を記述した YAML または JSON ファイル",
		"Blur region x,y,w,h":                   "ぼかし領域 x,y,w,h",
		"Rectangle x,y,w,h":                     "矩形 x,y,w,h",
		"Arrow x1,y1,x2,y2":                     "矢印 x1,y1,x2,y2",
		"Text label x,y,text":                   "テキストラベル x,y,text",
		"Annotation color":                      "注釈の色",
		"Annotation font size":                  "注釈のフォントサイズ",
		"Output file name, or - for stdout":     "出力ファイル名（- で標準出力）",
		"Directory for saved images":            "画像の保存先ディレクトリ",
		"Output format (png, jpg, webp)":        "出力形式（png, jpg, webp）",
		"Lossy quality (0-1]":                   "非可逆圧縮の品質（0-1]",
		"Print the result as a data URL":        "結果を data URL として出力",
		"Copy the result to the clipboard":      "結果をクリップボードにコピー",
		"Path to Chrome executable":             "Chrome実行ファイルのパス",
		"Run browser in non-headless mode":      "ブラウザを非ヘッドレスモードで実行",
		"Browser viewport width":                "ブラウザのビューポート幅",
		"Browser viewport height":               "ブラウザのビューポート高さ",
		"Wait after load in milliseconds":       "読み込み後の待機時間（ミリ秒）",
		"Ignore HTTPS certificate errors":       "HTTPS証明書エラーを無視",
		"HTTP proxy server (e.g., http://proxy:8080)": "HTTPプロキシサーバー（例: http://proxy:8080）",
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Summary output
		"Write an execution summary (Markdown, or JSON/YAML by extension)": "実行サマリーを出力（Markdown、拡張子により JSON/YAML）",
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		"Failed to copy to clipboard: %s": "クリップボードへのコピーに失敗しました: %s",
		"Failed to release resource: %s":  "リソースの解放に失敗しました: %s",

		// Export command
		"Convert an image to another format without styling": "装飾せずに画像の形式を変換",
		"Exactly one input file is required":                 "入力ファイルを1つ指定してください",

		// Presets command
		"List presets, backgrounds and frames":       "プリセット、背景、フレームを一覧表示",
		"Also list backgrounds, frames and formats":  "背景、フレーム、形式も表示",
		"Presets":                                    "プリセット",
		"Gradients":                                  "グラデーション",
		"Solid colors":                               "単色",
		"Mesh gradients":                             "メッシュグラデーション",
		"Frames":                                     "フレーム",
		"Shadows":                                    "影",
		"Formats":                                    "形式",

		// License command
		"Manage the Pro license":                       "Pro ライセンスを管理",
		"Activate Pro with the email used at checkout": "購入時のメールアドレスで Pro を有効化",
		"Show the stored license":                      "保存されたライセンスを表示",
		"Remove the stored license":                    "保存されたライセンスを削除",
		"Free plan: no active license":                 "無料プラン: 有効なライセンスはありません",
		"Pro plan: %s (activated %s)":                  "Pro プラン: %s（%s に有効化）",
		"Enter the email address used during checkout.": "購入時に使用したメールアドレスを入力してください。",
		"No active Pro license found for this email. Make sure you used the same email during checkout.": "このメールアドレスに有効な Pro ライセンスが見つかりません。購入時と同じメールアドレスか確認してください。",
		"Network error or license service not configured. Please try again.":                             "ネットワークエラー、またはライセンスサービスが未設定です。もう一度お試しください。",
		"Failed to save license locally":                                                                 "ライセンスをローカルに保存できませんでした",
	})
}
