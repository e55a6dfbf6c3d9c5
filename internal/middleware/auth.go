package middleware

import (
	"net/http"
	"strings"

	"laundry-service/internal/dto"
	"laundry-service/internal/service"
	"laundry-service/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxOperator     = "operator"
	CtxOperatorRole = "operator_role"
)

// OperatorAuth проверяет Bearer-токен оператора и кладёт его имя в контекст gin.
func OperatorAuth(tp *token.HSProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing Authorization header"))
			return
		}
		raw, ok := ExtractBearerToken(authz)
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid Authorization header"))
			return
		}

		claims, err := tp.Parse(raw)
		if err != nil {
			log.Warn("operator token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid token"))
			return
		}

		c.Set(CtxOperator, claims.Operator)
		c.Set(CtxOperatorRole, claims.Role)
		c.Request = c.Request.WithContext(service.WithOperator(c.Request.Context(), claims.Operator))
		c.Next()
	}
}

// ExtractBearerToken извлекает токен из заголовка Authorization, снимая кавычки и хвосты.
// Допустимо: "Bearer abc.def.ghi", "Bearer \"abc.def.ghi\"", "Bearer abc.def.ghi, extra".
func ExtractBearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.Trim(strings.TrimSpace(parts[1]), " \"'")
	if i := strings.IndexRune(t, ','); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if i := strings.IndexByte(t, ' '); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return strings.Trim(t, " \"'"), true
}
