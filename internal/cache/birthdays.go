package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Birthdays deduplica os lembretes de aniversário por dia: o mesmo
// registro só gera aviso uma vez a cada dia por usuário. Sem Redis
// configurado o componente vira um no-op e todo aviso é inédito.
type Birthdays struct {
	rdb *redis.Client
}

func NewBirthdays(addr, password string) *Birthdays {
	if addr == "" {
		return &Birthdays{}
	}
	return &Birthdays{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

// FirstToday marca o aviso do registro para o dia corrente e responde
// se foi a primeira marcação. A chave expira em 24h, então o aviso
// volta a valer no dia seguinte sem limpeza manual.
func (b *Birthdays) FirstToday(ctx context.Context, userID, recordID string, today time.Time) (bool, error) {
	if b.rdb == nil {
		return true, nil
	}
	key := fmt.Sprintf("aniversario:%s:%s:%s", userID, recordID, today.Format("2006-01-02"))
	ok, err := b.rdb.SetNX(ctx, key, "1", 24*time.Hour).Result()
	if err != nil {
		return true, fmt.Errorf("cache: marcar aviso: %w", err)
	}
	return ok, nil
}

func (b *Birthdays) Close() error {
	if b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
