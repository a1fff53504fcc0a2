package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

// Connects to the gallery stream with a country session token and prints
// every event, one line each.
func main() {
	server := flag.String("server", "ws://localhost:10000", "API base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: websocket_client [-server ws://host:port] <COUNTRY_TOKEN>")
	}

	url := strings.TrimRight(*server, "/") + "/api/v1/gallery/stream"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))

	fmt.Printf("Connecting to %s...\n", url)
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("Failed to connect: %v (HTTP %d)", err, resp.StatusCode)
		}
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for gallery events...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			var event domain.GalleryEvent
			if err := json.Unmarshal(message, &event); err != nil {
				fmt.Printf("%s\n", message)
				continue
			}
			fmt.Printf("%s %-14s %s (%d images)\n",
				event.OccurredAt.Format(time.RFC3339), event.Type, event.GroupKey,
				max(len(event.ImageURLs), len(event.SubmissionIDs)))
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
