package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	fieldkit "github.com/goliatone/go-fieldkit"
	"github.com/goliatone/go-fieldkit/pkg/config"
	"github.com/goliatone/go-fieldkit/pkg/fieldtypes"
	"github.com/goliatone/go-fieldkit/pkg/middlewares"
)

func main() {
	fieldType := flag.String("type", "text", "field type to render (text, boolean)")
	mode := flag.String("mode", "viewing", "render mode (viewing, editing)")
	value := flag.String("value", "", "field value")
	label := flag.String("label", "", "field label")
	configPath := flag.String("config", "", "YAML defaults file (mode, middlewares)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	fieldkit.Configure(func(cfg *fieldkit.Configuration) {
		if err := middlewares.RegisterBuiltins(cfg); err != nil {
			log.Fatalf("register middlewares: %v", err)
		}
		if err := cfg.FieldTypes.RegisterAll(map[fieldkit.Name]any{
			"text":    fieldtypes.TextFactory(fieldtypes.WithLabel(*label)),
			"boolean": fieldtypes.BooleanFactory(fieldtypes.WithLabel(*label)),
		}); err != nil {
			log.Fatalf("register field types: %v", err)
		}
		if *configPath != "" {
			doc, err := config.LoadDefaultsFS(os.DirFS("."), *configPath)
			if err != nil {
				log.Fatalf("load defaults: %v", err)
			}
			if err := cfg.ApplyDefaults(doc); err != nil {
				log.Fatalf("apply defaults: %v", err)
			}
		}
	})

	b := fieldkit.New()
	rendered, err := b.Field(*fieldType, config.Map{"mode": *mode}, *value)
	if err != nil {
		log.Fatalf("render field: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Field written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}
