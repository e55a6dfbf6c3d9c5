// Команда token выдаёт Bearer-токен оператору (нужен при AUTH_ENABLED=true).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"laundry-service/internal/logger"
	"laundry-service/internal/token"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	operator := flag.String("operator", "", "имя оператора (sub)")
	role := flag.String("role", "operator", "роль")
	ttl := flag.Duration("ttl", 12*time.Hour, "срок действия")
	flag.Parse()

	_ = godotenv.Load()
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" || *operator == "" {
		log.Fatal("нужны JWT_SECRET и -operator")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "laundry-service"
	}

	tok, exp, err := token.NewHSProvider(secret, issuer).Sign(*operator, *role, *ttl)
	if err != nil {
		log.Fatal("не удалось подписать токен", zap.Error(err))
	}
	log.Info("токен выдан", zap.String("operator", *operator), zap.Time("expires", exp))
	fmt.Println(tok)
}
