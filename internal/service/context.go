package service

import "context"

type ctxKey string

const ctxOperatorKey ctxKey = "operator"

// WithOperator кладёт имя оператора в контекст запроса; сервисы пишут его в лог действий.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, ctxOperatorKey, operator)
}

func OperatorFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxOperatorKey).(string)
	return v, ok && v != ""
}

func operatorField(ctx context.Context) string {
	if op, ok := OperatorFromContext(ctx); ok {
		return op
	}
	return "anonymous"
}
