// Package parallel は行範囲を CPU コア数で分割して並列に処理します。
//
// 推定器の一括予測や registry.FitAll のように、互いに独立な項目を
// [start, end) の範囲ごとに処理する用途を想定しています。
package parallel

import (
	"runtime"
	"sync"
)

// workers は items 個の項目に使うワーカー数と、1ワーカーあたりの項目数を返します。
func workers(items int) (n, chunk int) {
	n = runtime.NumCPU()
	if n > items {
		n = items
	}
	return n, (items + n - 1) / n
}

// Parallelize は items 個の項目を CPU コア数の範囲に分け、各範囲 [start, end) について
// fn を並列に実行します。すべての fn が戻るまでブロックします。
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	n, chunk := workers(items)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		start := i * chunk
		end := min(start+chunk, items)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold は items が threshold を超える場合のみ並列化します。
// threshold 以下では fn(0, items) を呼び出し元の goroutine で1回だけ実行します。
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeErr は ParallelizeWithThreshold と同じ分割で fn を実行し、最初に発生したエラーを返します。
// エラーを返した範囲は途中で打ち切られますが、他の範囲は最後まで実行されます。
func ParallelizeErr(items, threshold int, fn func(start, end int) error) error {
	var (
		once     sync.Once
		firstErr error
	)
	ParallelizeWithThreshold(items, threshold, func(start, end int) {
		if err := fn(start, end); err != nil {
			once.Do(func() { firstErr = err })
		}
	})
	return firstErr
}
