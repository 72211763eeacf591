package main

import (
	"Setlist/commands"
	"Setlist/config"
	"Setlist/handlers"
	"Setlist/playlist"
	"Setlist/redis_client"
	"Setlist/server"
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Strum355/log"
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

var (
	production *bool
	bot        *bool
)

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	bot = flag.Bool("bot", false, "runs the Discord bot and HTTP server instead of reading stdin")
	flag.Parse()

	// stdout carries the playlist in CLI mode
	logOutput := os.Stderr
	if *bot {
		logOutput = os.Stdout
	}
	if *production {
		log.InitJSONLogger(&log.Config{Output: logOutput})
	} else {
		log.InitSimpleLogger(&log.Config{Output: logOutput})
	}

	// Sets up Configurations for Viper
	config.InitConfig()

	pm := playlist.NewManager(redis_client.Init())

	if !*bot {
		if err := runOnce(context.Background(), pm, os.Stdin, os.Stdout); err != nil {
			log.WithError(err).Error("Failed to read command list")
			os.Exit(1)
		}
		return
	}

	if err := runBot(pm); err != nil {
		log.WithError(err).Error("Bot exited with error")
		os.Exit(1)
	}
}

// runOnce reads a single command line from r and writes the rendered playlist to w
func runOnce(ctx context.Context, pm *playlist.PlaylistManager, r io.Reader, w io.Writer) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading input: %w", err)
	}

	_, err = fmt.Fprintln(w, pm.Play(ctx, "cli", strings.TrimRight(line, "\r\n")))
	return err
}

// runBot serves the Discord and HTTP surfaces until SIGINT or SIGTERM
func runBot(pm *playlist.PlaylistManager) error {
	// Creates Discord Bot Session
	s, err := discordgo.New("Bot " + viper.GetString("discord.token"))
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info("Bot has registered handlers")
	})

	// Configuring Intents and Adding Handlers
	handlers.HandlerConfig(s, pm)

	// Connecting to Discord Server Gateway
	if err := s.Open(); err != nil {
		return fmt.Errorf("opening discord gateway: %w", err)
	}
	log.Info("Bot is initialising")

	// Register Slash Commands under discord.app.id
	commands.SetManager(pm)
	commands.RegisterSlashCommands(s)

	srv := server.New(viper.GetString("http.address"), pm)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.WithError(err).Error("HTTP server stopped")
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	gracefulShutdown(s, srv)
	return nil
}

// gracefulShutdown closes the HTTP server, the Discord session and redis
func gracefulShutdown(s *discordgo.Session, srv *server.Server) {
	log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Failed to shut down HTTP server")
	}

	s.Close()

	if redis_client.RDB != nil {
		redis_client.RDB.Close()
	}

	log.Info("Cleanly exiting")
}
