package onboarding

import "context"

// Store は社員コレクション全体を 1 つのスロットとして永続化する抽象です。
// 部分更新は持たず、LoadAll で全件を読み、SaveAll で全件を置き換えます。
type Store interface {
	// LoadAll は保存済みのコレクションを返します。未保存または壊れたデータは空として扱い、エラーにはしません。
	LoadAll(ctx context.Context) ([]Employee, error)
	// SaveAll はコレクション全体を上書き保存します。
	SaveAll(ctx context.Context, employees []Employee) error
}
