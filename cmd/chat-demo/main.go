// README: Line-oriented console chat with the booking assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"concierge/internal/ai"
	"concierge/internal/config"
	"concierge/internal/logger"
	"concierge/internal/modules/booking"
	"concierge/internal/modules/conversation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Persona)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	bookingSvc := booking.NewService(booking.NewStore())
	chat := conversation.NewService(bookingSvc, provider, nil, zlog)

	fmt.Println("Welcome! Ask me about bookings, or type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			fmt.Println("Goodbye!")
			break
		}
		fmt.Printf("Bot: %s\n", chat.Respond(ctx, "", line))
	}
}
