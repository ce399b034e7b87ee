package main

import (
	"flag"
	"fmt"

	"guestbook/internal/entity"
	"guestbook/internal/repo/persistent"
	"guestbook/pkg/config"
	"guestbook/pkg/database"
	"guestbook/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of users (with active subscriptions), messages, likes and
// comments for local development.
func main() {
	var password string
	flag.StringVar(&password, "password", "password123", "password for all seeded users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	users := []*entity.User{
		{Name: "Alice", Email: "alice@example.com", Password: string(hashed), SubscriptionStatus: entity.SubscriptionActive},
		{Name: "Bob", Email: "bob@example.com", Password: string(hashed), SubscriptionStatus: entity.SubscriptionActive},
		{Name: "Carol", Email: "carol@example.com", Password: string(hashed), SubscriptionStatus: "inactive"},
	}

	for _, user := range users {
		if err := userRepo.Create(user); err != nil {
			log.Warn("Skipping user %s: %v", user.Email, err)
			continue
		}
		log.Info("Created user %s (%s)", user.Name, user.ID)
	}

	messages := []string{
		"Hello World!!",
		"Greetings from the guestbook seeder.",
		"What a lovely page this is.",
	}

	var posts []*entity.Post
	for i, message := range messages {
		author := users[i%2] // Alice and Bob are subscribed
		post := &entity.Post{
			UserID:  author.ID,
			Name:    author.Name,
			Message: message,
		}
		if err := postRepo.Create(post); err != nil {
			log.Warn("Skipping message %q: %v", message, err)
			continue
		}
		posts = append(posts, post)
		log.Info("Created message %s by %s", post.ID, author.Name)
	}

	if len(posts) > 0 {
		if _, err := postRepo.CreateLike(users[1].ID, posts[0].ID); err != nil {
			log.Warn("Skipping like: %v", err)
		}
		comment := &entity.Comment{
			PostID:  posts[0].ID,
			UserID:  users[1].ID,
			Message: "First! Nice message.",
		}
		if err := postRepo.CreateComment(comment); err != nil {
			log.Warn("Skipping comment: %v", err)
		}
	}

	log.Info("Seeding complete")
}
