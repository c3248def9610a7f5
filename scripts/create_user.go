// Creates an account from the command line, for first deployments or when
// the admin API is not reachable.
//
// Usage: go run scripts/create_user.go -username tom -password secret1 -groups "Teaching Assistants"

package main

import (
	"context"
	"flag"
	"gradebook_backend/internal/config"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/service"
	"gradebook_backend/pkg/database"
	"gradebook_backend/pkg/logger"
	"log"
	"strings"
)

func main() {
	username := flag.String("username", "", "login name")
	password := flag.String("password", "", "password, at least 6 characters")
	isAdmin := flag.Bool("admin", false, "grant admin rights")
	groups := flag.String("groups", "", "comma separated groups: Students, Teaching Assistants")
	flag.Parse()

	if *username == "" || len(*password) < 6 {
		flag.Usage()
		log.Fatal("username and a password of at least 6 characters are required")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	req := &service.CreateUserRequest{
		Username: *username,
		Password: *password,
		IsAdmin:  *isAdmin,
	}
	for _, g := range strings.Split(*groups, ",") {
		if g = strings.TrimSpace(g); g != "" {
			req.Groups = append(req.Groups, g)
		}
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	u, err := users.Create(context.Background(), req)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("created user %s (id %d)", u.Username, u.ID)
}
