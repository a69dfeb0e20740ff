// 包 join：并发扇出 N 个任务并统一汇合；任一失败即整体失败，不产生部分结果
package join

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task：可并发执行的单个任务，需遵守 ctx 取消
type Task func(ctx context.Context) error

// All：并发执行全部任务并等待全部返回
// 约束：返回第一个错误；首个错误出现后其余任务的 ctx 被取消，但 All 仍等待它们全部退出后才返回
func All(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error { return t(gctx) })
	}
	return g.Wait()
}
