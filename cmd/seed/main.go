// File: cmd/seed/main.go
//
// Seeds invite documents into the document store so the verify flow's invite
// consumption can be exercised end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"checkout-backend/internal/config"
	"checkout-backend/internal/domain"
	"checkout-backend/internal/domain/model"
	red "checkout-backend/internal/infra/redis"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	invites := flag.String("invites", "", "comma-separated invite ids to create")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, false)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *invites == "" {
		log.Fatal("-invites is required (comma-separated ids)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer client.Close()

	repo := red.NewInviteRepo(client)
	for _, id := range strings.Split(*invites, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		// Leave existing invites alone so re-running the seed never resets a
		// consumed one.
		if _, err := repo.Find(ctx, id); err == nil {
			fmt.Printf("invite %s already present. No changes.\n", id)
			continue
		} else if err != domain.ErrNotFound {
			log.Fatalf("check invite %s: %v", id, err)
		}
		if err := repo.Create(ctx, &model.Invite{ID: id}); err != nil {
			log.Fatalf("create invite %s: %v", id, err)
		}
		fmt.Printf("created invite %s\n", id)
	}
}
