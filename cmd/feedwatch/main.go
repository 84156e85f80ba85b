package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/internal/pkg/realtime"
)

// feedwatch tails the realtime check-in feed from the command line. It is
// mainly a debugging aid: it exercises the same client, reconnect policy
// and subscription flow the mobile app uses.
func main() {
	var (
		url      = flag.String("url", "ws://localhost:9980/ws", "realtime endpoint")
		token    = flag.String("token", os.Getenv("SURFSUP_TOKEN"), "bearer token")
		spotID   = flag.String("spot", "", "spot feed to subscribe to")
		logLevel = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: *logLevel, Type: "stdout"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer zl.Close()
	logger.SetGlobalLogger(zl)

	client := realtime.NewClient(realtime.Config{
		URL:       *url,
		AuthToken: *token,
	}, realtime.NewWebSocketDialer(), nil, zl)

	unsubscribe := client.Subscribe(constants.EventWildcard, func(msg models.WSMessage) {
		fmt.Printf("%s %s %s\n", time.Now().Format(time.RFC3339), msg.Event, string(msg.Data))
	})
	defer unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = client.Connect(ctx)
	cancel()
	if err != nil {
		// The client keeps retrying in the background; just report it.
		fmt.Fprintln(os.Stderr, "initial connect failed, retrying:", err)
	}

	if *spotID != "" {
		subscribeWhenConnected(client, *spotID)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	client.Disconnect()
}

// subscribeWhenConnected sends the spot subscription as soon as a
// connection is up, and again after every reconnect.
func subscribeWhenConnected(client *realtime.Client, spotID string) {
	send := func() {
		data, _ := json.Marshal(models.SpotSubscribeRequest{SpotID: spotID})
		if err := client.Send(models.WSMessage{
			Event: constants.EventSpotSubscribe,
			Data:  data,
		}); err != nil {
			fmt.Fprintln(os.Stderr, "spot subscribe failed:", err)
		}
	}

	if client.State() == realtime.StateConnected {
		send()
	}

	client.Subscribe(constants.EventConnectionStatus, func(msg models.WSMessage) {
		var status models.ConnectionStatus
		if err := json.Unmarshal(msg.Data, &status); err != nil {
			return
		}
		if status.Connected {
			send()
		}
	})
}
