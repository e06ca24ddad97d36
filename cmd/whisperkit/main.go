package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/whisperkit/audio"
	"github.com/skillsenselab/whisperkit/component"
	"github.com/skillsenselab/whisperkit/config"
	"github.com/skillsenselab/whisperkit/logger"
	"github.com/skillsenselab/whisperkit/provider"
	"github.com/skillsenselab/whisperkit/server"
	"github.com/skillsenselab/whisperkit/server/endpoint"
	"github.com/skillsenselab/whisperkit/transcription"
	"github.com/skillsenselab/whisperkit/transcription/whispercpp"
	"github.com/skillsenselab/whisperkit/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "path to config.yml")
		modelPath   = flag.String("model", "", "path to GGML model file")
		language    = flag.String("language", "", "decode language tag")
		threads     = flag.Int("threads", 0, "engine worker thread count")
		translate   = flag.Bool("translate", false, "translate transcript into English")
		serve       = flag.Bool("serve", false, "run the HTTP server instead of one-shot transcription")
		port        = flag.Int("port", 0, "HTTP server port (with -serve)")
		asJSON      = flag.Bool("json", false, "print the full result as JSON")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <audio.wav>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Transcribes a mono 16kHz WAV file, or serves the transcription API with -serve.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return nil
	}

	var cfg config.Config
	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if err := config.LoadConfig(&cfg, opts...); err != nil {
		return err
	}

	// Flags take precedence over file and environment settings.
	if *modelPath != "" {
		cfg.Engine.ModelPath = *modelPath
	}
	if *language != "" {
		cfg.Engine.Language = *language
	}
	if *threads > 0 {
		cfg.Engine.Threads = *threads
	}
	if *translate {
		cfg.Engine.Translate = true
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	cfg.ApplyDefaults()
	logger.Init(cfg.Logging)
	if err := cfg.Validate(); err != nil {
		return err
	}

	manager := transcription.NewManager()
	manager.Register(whispercpp.ProviderName, whispercpp.Factory())
	if err := manager.Initialize(whispercpp.ProviderName, map[string]any{
		"model_path": cfg.Engine.ModelPath,
		"language":   cfg.Engine.Language,
		"threads":    cfg.Engine.Threads,
		"max_tokens": cfg.Engine.MaxTokens,
		"translate":  cfg.Engine.Translate,
	}); err != nil {
		return err
	}
	defer manager.Close(context.Background())

	p, err := manager.GetByName(whispercpp.ProviderName)
	if err != nil {
		return err
	}

	// Cross-cutting instrumentation wraps the transcribe path only; health
	// checks keep talking to the raw provider.
	tp := transcription.Instrument(p,
		provider.WithLogging[transcription.Request, *transcription.Result](logger.Get("transcription")),
		provider.WithTracing[transcription.Request, *transcription.Result](cfg.Name),
		provider.WithMetrics[transcription.Request, *transcription.Result](),
	)

	if *serve {
		return runServer(cfg, p, tp)
	}
	return transcribeFile(tp, *asJSON)
}

// transcribeFile decodes the WAV file named by the first positional argument
// and prints the transcript to stdout.
func transcribeFile(p transcription.Provider, asJSON bool) error {
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one audio file argument")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	samples, err := audio.DecodeWAV(f)
	if err != nil {
		return err
	}

	res, err := p.Transcribe(context.Background(), transcription.Request{Samples: samples})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Println(res.Text)
	return nil
}

// runServer starts the HTTP surface and blocks until SIGINT or SIGTERM.
// Health checks inspect the raw provider; requests go through the
// instrumented one.
func runServer(cfg config.Config, p, tp transcription.Provider) error {
	log := logger.New(&cfg.Logging, cfg.Name)

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Name, healthChecker(p))
	srv.RegisterTranscription(tp)

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return srv.Stop(ctx)
}

// healthChecker reports the engine provider's health as a component status.
func healthChecker(p transcription.Provider) endpoint.HealthChecker {
	return func(ctx context.Context) []component.Health {
		h := component.Health{Name: p.Name(), Status: component.StatusHealthy}
		if hc, ok := any(p).(provider.HealthChecker); ok {
			status := hc.Health(ctx)
			if status.Status != provider.StatusHealthy {
				h.Status = component.StatusUnhealthy
			}
			h.Message = status.Message
		} else if !p.IsAvailable(ctx) {
			h.Status = component.StatusUnhealthy
		}
		return []component.Health{h}
	}
}
