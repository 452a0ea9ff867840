// Command seed loads the externally maintained resource documents — the
// category color table and the default dining-menu fallbacks — into the
// store from a YAML file.
//
// Usage:
//
//	go run ./cmd/seed -file resources.yaml [-redis localhost:6379] [-db 0]
//
// Expected file shape:
//
//	category_colors:
//	  Lecture: "#0854a0"
//	  Default: "#888888"
//	default_menus:
//	  Whitmans:
//	    dinner:
//	      Entrees:
//	        - name: Pizza
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	redisadapter "github.com/couchcryptid/campus-data-sync/internal/adapter/redis"
	"github.com/couchcryptid/campus-data-sync/internal/domain"
)

type resources struct {
	CategoryColors domain.ColorTable      `koanf:"category_colors"`
	DefaultMenus   map[string]domain.Menu `koanf:"default_menus"`
}

func main() {
	path := flag.String("file", "", "YAML resources file")
	redisAddr := flag.String("redis", "localhost:6379", "redis address")
	redisDB := flag.Int("db", 0, "redis database")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*path, *redisAddr, *redisDB); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(path, redisAddr string, redisDB int) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	var res resources
	if err := k.UnmarshalWithConf("", &res, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if len(res.CategoryColors) == 0 {
		return fmt.Errorf("%s: category_colors is empty", path)
	}
	if _, ok := res.CategoryColors[domain.DefaultColorKey]; !ok {
		return fmt.Errorf("%s: category_colors must include a %q entry", path, domain.DefaultColorKey)
	}

	ctx := context.Background()
	store := redisadapter.NewStore(redisAddr, redisDB)
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", redisAddr, err)
	}

	col := store.Collection(domain.CollectionResources)
	if err := col.Set(ctx, domain.DocCategoryColors, res.CategoryColors); err != nil {
		return err
	}
	fmt.Printf("seeded %s/%s (%d categories)\n", domain.CollectionResources, domain.DocCategoryColors, len(res.CategoryColors))

	if len(res.DefaultMenus) > 0 {
		if err := col.Set(ctx, domain.DocDefaultMenus, res.DefaultMenus); err != nil {
			return err
		}
		fmt.Printf("seeded %s/%s (%d locations)\n", domain.CollectionResources, domain.DocDefaultMenus, len(res.DefaultMenus))
	}

	return nil
}
