package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Render call (info)
		"Decoded %s source: %dx%d":         "%s ソースをデコードしました: %dx%d",
		"Layout calculated: %dx%d canvas":  "レイアウト計算完了: %dx%d キャンバス",
		"Rendered %s: %d bytes":            "%s をレンダリングしました: %d バイト",
		"Exporting %s as %s":               "%s を %s としてエクスポート中",
		"Output saved to %s":               "出力を %s に保存しました",
		"Copied to clipboard":              "クリップボードにコピーしました",
		"Applied preset %s":                "プリセット %s を適用しました",
		"Capturing %s":                     "%s をキャプチャ中",
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",

		// Stages (debug)
		"Painting %s background":                 "%s 背景を描画中",
		"Drawing %s frame":                       "%s フレームを描画中",
		"Casting %s shadow, blur %.0f":           "%s の影を描画中 (ぼかし %.0f)",
		"Tilting by %.1f, %.1f degrees":          "%.1f, %.1f 度傾けています",
		"Drawing %d annotations":                 "%d 個の注釈を描画中",
		"Stamping watermark":                     "透かしを描画中",
		"Encoding %dx%d as %s (quality %.2f)":    "%dx%d を %s としてエンコード中 (品質 %.2f)",
		"Encoded %d bytes":                       "%d バイトにエンコードしました",

		// Capture
		"Launching browser in headless mode": "ヘッドレスモードでブラウザを起動中",
		"Launching browser in visible mode":  "表示モードでブラウザを起動中",
		"Navigating to %s":                   "%s へ移動中",
		"Captured %s (%d bytes)":             "%s をキャプチャしました (%d バイト)",

		// Entitlement
		"%s requires Pro, falling back to %s": "%s は Pro 限定のため %s を使用します",
		"License activated for %s":            "%s のライセンスを有効化しました",
		"License deactivated":                 "ライセンスを無効化しました",
		"License lookup failed: %s":           "ライセンスの確認に失敗しました: %s",

		// Errors
		"Failed to decode source: %s":          "ソースのデコードに失敗しました: %s",
		"Failed to allocate %dx%d surface: %s": "%dx%d のサーフェスを確保できませんでした: %s",
		"Stage %s failed: %s":                  "ステージ %s が失敗しました: %s",
		"Failed to encode image: %s":           "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s":           "出力の書き込みに失敗しました: %s",
		"Failed to save debug output: %s":      "デバッグ出力の保存に失敗しました: %s",
	})
}
