package usecase

import "time"

// 現在の時間と遅延実行
type Clock interface {
	Now() time.Time
	// 取り消しはできない
	AfterFunc(d time.Duration, f func())
}
