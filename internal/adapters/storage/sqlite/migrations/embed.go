package migrations

import "embed"

// FS は SQLite スロットストア用のマイグレーションです。
//
//go:embed *.sql
var FS embed.FS
