package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/rentio/rentio/internal/source"
	"github.com/rentio/rentio/pkg/rentio"
	"github.com/rentio/rentio/pkg/rentio/config"
	"github.com/rentio/rentio/pkg/rentio/nlp"
	"github.com/rentio/rentio/pkg/rentio/store"
	"github.com/rentio/rentio/pkg/rentio/store/memstore"
	"github.com/rentio/rentio/pkg/rentio/store/sqlite"
)

func main() {
	var (
		catalogPath  = flag.String("catalog", "", "Catalog file (required unless -config sets it)")
		formatFlag   = flag.String("format", "", "Catalog format: csv or xlsx (default by extension)")
		configPath   = flag.String("config", "", "Config YAML (optional)")
		storeFlag    = flag.String("store", "", "Catalog store: memory or sqlite (default memory)")
		dbPath       = flag.String("db", "", "SQLite path (default :memory:)")
		lexiconPath  = flag.String("lexicon", "", "Synonym lexicon YAML (optional)")
		stoplistPath = flag.String("stoplist", "", "Stopword list YAML (optional)")
		debug        = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override config file values.
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *formatFlag != "" {
		cfg.Catalog.Format = *formatFlag
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *lexiconPath != "" {
		cfg.Lexicon = *lexiconPath
	}
	if *stoplistPath != "" {
		cfg.Stoplist = *stoplistPath
	}
	if *debug {
		cfg.Debug = true
	}

	if cfg.Catalog.Path == "" {
		log.Fatal("-catalog required")
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	assistant, err := buildAssistant(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer assistant.Close()

	fmt.Println(assistant.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		resp, done, err := assistant.Turn(scanner.Text())
		if err != nil {
			logger.Error("turn failed", zap.Error(err))
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(resp)
		if done {
			return
		}
	}

	// EOF behaves as exit.
	resp, _, err := assistant.Turn("exit")
	if err == nil {
		fmt.Println(resp)
	}
}

func buildAssistant(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*rentio.Assistant, error) {
	rows, err := source.Read(cfg.Catalog.Path, cfg.Catalog.Format)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := rentio.LoadRows(ctx, st, rows); err != nil {
		st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	loader := config.Loader{
		LexiconPath:  cfg.Lexicon,
		StoplistPath: cfg.Stoplist,
	}
	components, err := loader.Load()
	if err != nil {
		st.Close()
		return nil, err
	}

	assistant, err := rentio.New(ctx, rentio.Options{
		Store:    st,
		Tagger:   nlp.NewProse(),
		Lexicon:  components.Lexicon,
		Stoplist: components.Stoplist,
		Logger:   logger,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return assistant, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return memstore.New(), nil
	case "sqlite":
		path := cfg.DBPath
		if path == "" {
			path = ":memory:"
		}
		return sqlite.Open(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zapCfg.Build()
}
