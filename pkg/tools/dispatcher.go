package tools

import (
	"context"
	"log"
)

// ToolFunc defines a function executed asynchronously.
type ToolFunc func(ctx context.Context) error

// Dispatch runs the provided tool in a separate goroutine. fire-and-forget solution
func Dispatch(ctx context.Context, name string, fn ToolFunc) {
	go func() {
		if err := fn(ctx); err != nil {
			log.Printf("[WARN] %s: %v", name, err)
		}
	}()
}
