package sl

import (
	"log/slog"
)

// Err はエラーを "error" キーの属性に変換します。nil の場合は空の属性です。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
