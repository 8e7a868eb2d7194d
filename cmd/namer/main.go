package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/japaniel/namer/pkg/config"
	"github.com/japaniel/namer/pkg/db"
	"github.com/japaniel/namer/pkg/dictionary"
	"github.com/japaniel/namer/pkg/logger"
	"github.com/japaniel/namer/pkg/naming"
	"github.com/japaniel/namer/pkg/translator"
)

func main() {
	configFlag := flag.String("config", "", "Path to YAML config (default $NAMER_CONFIG or ./namer.yaml)")
	dbFlag := flag.String("db", "", "Path to SQLite term database")
	termsFlag := flag.String("terms", "", "Path to JSON term database")
	contextFlag := flag.String("context", "", "Translation context")
	suggestFlag := flag.Int("suggest", 0, "Print up to N suggestions per phrase instead of a single translation")
	searchFlag := flag.String("search", "", "Search terms by phrase, primary or alternative")
	categoriesFlag := flag.Bool("categories", false, "List categories")
	statsFlag := flag.Bool("stats", false, "Print term store statistics")
	addFlag := flag.String("add", "", "Add a custom term: phrase=primary[,alt...]")
	categoryFlag := flag.String("category", dictionary.DefaultCategory, "Category for -add")
	importFlag := flag.String("import", "", "Import a JSON term database into -db and exit")
	kindFlag := flag.String("kind", "", "Generate a type name instead: struct, enum or union")
	fileFlag := flag.String("file", "", "Read phrases from a file, one per line")
	workersFlag := flag.Int("workers", runtime.NumCPU(), "Goroutines used to translate phrases")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] phrase...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbFlag != "" {
		cfg.Terms.Database = *dbFlag
	}
	if *termsFlag != "" {
		cfg.Terms.File = *termsFlag
	}
	if *contextFlag != "" {
		cfg.Translator.Context = *contextFlag
	}
	lg := logger.New(cfg.Log)

	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var conn *sql.DB
	if cfg.Terms.Database != "" {
		conn, err = db.Open(cfg.Terms.Database)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer conn.Close()
	}

	if *importFlag != "" {
		if conn == nil {
			log.Fatal("Please provide -db for -import")
		}
		src, err := dictionary.LoadFile(*importFlag)
		if err != nil {
			log.Fatalf("Failed to load term database: %v", err)
		}
		n, err := db.ImportStore(ctx, conn, src, cfg.Terms.ImportSize)
		if err != nil {
			log.Fatalf("Import stopped after %d terms: %v", n, err)
		}
		fmt.Printf("Imported %d terms into %s\n", n, cfg.Terms.Database)
		return
	}

	engine := newEngine(conn, cfg, lg)

	if *addFlag != "" {
		phrase, primary, alts, err := parseTerm(*addFlag)
		if err != nil {
			log.Fatalf("Invalid -add value: %v", err)
		}
		phrase = dictionary.NormalizePhrase(phrase)
		if err := engine.AddCustomTerm(phrase, primary, *categoryFlag, alts...); err != nil {
			log.Fatalf("Failed to add term: %v", err)
		}
		if conn != nil {
			rec := dictionary.Record{Primary: primary, Alternatives: alts, Custom: true}
			if err := db.SaveTerm(conn, *categoryFlag, phrase, rec); err != nil {
				log.Fatalf("Failed to save term: %v", err)
			}
		}
		fmt.Printf("Added %s -> %s (%s)\n", phrase, primary, *categoryFlag)
	}

	did := *addFlag != ""
	if *categoriesFlag {
		did = true
		st := engine.Statistics()
		for _, c := range engine.Categories() {
			fmt.Printf("%s\t%d\n", c, st.PerCategory[c])
		}
	}
	if *statsFlag {
		did = true
		st := engine.Statistics()
		fmt.Printf("categories: %d\nterms: %d\n", st.TotalCategories, st.TotalTerms)
	}
	if *searchFlag != "" {
		did = true
		for _, m := range engine.SearchTerms(*searchFlag) {
			fmt.Printf("%s\t%s\t%s\t%s\n", m.Phrase, m.Primary, m.Category, m.Kind)
		}
	}

	phrases := flag.Args()
	if *fileFlag != "" {
		lines, err := readLines(*fileFlag)
		if err != nil {
			log.Fatalf("Failed to read phrases: %v", err)
		}
		phrases = append(phrases, lines...)
	}
	if len(phrases) == 0 {
		if !did {
			flag.Usage()
			os.Exit(2)
		}
		return
	}

	switch {
	case *kindFlag != "":
		gen := naming.NewGenerator(engine, naming.PrefixesFromConfig(cfg.Naming))
		for _, p := range phrases {
			var n naming.Name
			switch *kindFlag {
			case "struct":
				n = gen.StructTypeName(p)
			case "enum":
				n = gen.EnumTypeName(p)
			case "union":
				n = gen.UnionTypeName(p)
			default:
				log.Fatalf("Unknown -kind %q (want struct, enum or union)", *kindFlag)
			}
			printName(p, n)
		}
	case *suggestFlag > 0:
		for _, p := range phrases {
			fmt.Println(p)
			for _, s := range engine.Suggestions(p, *suggestFlag) {
				fmt.Printf("  %s\t%.2f\t%s\n", s.Text, s.Confidence, s.Source)
			}
		}
	default:
		results, err := engine.TranslateConcurrent(ctx, phrases, cfg.Translator.Context, *workersFlag)
		if err != nil {
			log.Fatalf("Translation interrupted: %v", err)
		}
		for i, res := range results {
			fmt.Printf("%s\t%s\t%.2f\t%s\n", phrases[i], res.Primary, res.Confidence, res.Source)
		}
	}
}

// newEngine picks the term source: the SQLite database, then the JSON file,
// then the built-in terms.
func newEngine(conn *sql.DB, cfg *config.Config, lg *slog.Logger) *translator.Engine {
	opts := []translator.Option{
		translator.WithLogger(lg),
		translator.WithCacheSize(cfg.Translator.CacheSize),
		translator.WithWidthFolding(!cfg.Translator.NoWidthFolding),
	}

	switch {
	case conn != nil:
		store, err := db.LoadStore(conn)
		if err != nil {
			lg.Warn("term database unavailable, continuing with empty store",
				slog.String("path", cfg.Terms.Database),
				slog.Any("error", err))
			return translator.New(nil, opts...)
		}
		if store.Len() == 0 {
			lg.Info("term database is empty, using built-in terms", slog.String("path", cfg.Terms.Database))
			return translator.New(dictionary.Builtin(), opts...)
		}
		return translator.New(store, opts...)
	case cfg.Terms.File != "":
		return translator.NewFromFile(cfg.Terms.File, opts...)
	default:
		return translator.New(dictionary.Builtin(), opts...)
	}
}

// parseTerm splits "phrase=primary,alt1,alt2".
func parseTerm(s string) (phrase, primary string, alts []string, err error) {
	phrase, rest, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", nil, fmt.Errorf("%q: missing '='", s)
	}
	fields := strings.Split(rest, ",")
	phrase = strings.TrimSpace(phrase)
	primary = strings.TrimSpace(fields[0])
	if phrase == "" || primary == "" {
		return "", "", nil, fmt.Errorf("%q: phrase and primary are required", s)
	}
	for _, f := range fields[1:] {
		if f = strings.TrimSpace(f); f != "" {
			alts = append(alts, f)
		}
	}
	return phrase, primary, alts, nil
}

// readLines returns the non-blank lines of the file at path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

func printName(phrase string, n naming.Name) {
	if n.Err != nil {
		fmt.Printf("%s\t%s\tinvalid: %v\n", phrase, n.Name, strings.ReplaceAll(n.Err.Error(), "\n", "; "))
		return
	}
	fmt.Printf("%s\t%s\n", phrase, n.Name)
}
