package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"github.com/conduitmesh/qospolicy/pkg/params"
	"github.com/conduitmesh/qospolicy/pkg/qos"
	"github.com/conduitmesh/qospolicy/pkg/qosparams"
	"github.com/conduitmesh/qospolicy/pkg/qosvalidate"
)

// resolveOutput is what `qosctl resolve` prints.
type resolveOutput struct {
	Profile    qos.Profile    `yaml:"profile"`
	Parameters map[string]any `yaml:"parameters,omitempty"`
}

func runResolveCmd(args []string, stdout io.Writer, logger *slog.Logger) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	topic := fs.String("topic", "", "topic name of the endpoint (required)")
	entity := fs.String("entity", "publisher", "entity type: publisher or subscriber")
	entityID := fs.String("entity-id", "", "disambiguating entity id")
	overridesPath := fs.String("overrides", "", "YAML override file seeding the parameter store")
	policiesFlag := fs.String("policies", "default", `overridable policies: "default", "all" or a comma-separated token list`)
	validateExpr := fs.String("validate", "", "CEL expression the final profile must satisfy")
	storeKind := fs.String("store", "memory", "parameter store: memory or postgres")
	dsn := fs.String("dsn", "", "postgres DSN (with -store postgres)")
	depth := fs.Uint("depth", 10, "default history depth")
	reliability := fs.String("reliability", string(qos.ReliabilitySystemDefault), "default reliability")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *topic == "" {
		logger.Error("missing required -topic flag")
		return 1
	}

	entityType := qosparams.EntityType(*entity)
	if entityType != qosparams.EntityPublisher && entityType != qosparams.EntitySubscriber {
		logger.Error("invalid entity type", "entity", *entity)
		return 1
	}

	opts := qosparams.DefaultOptions(*entityID)
	switch *policiesFlag {
	case "default":
	case "all":
		opts.Policies = qosparams.AllowedPolicies(entityType)
	default:
		opts.Policies = opts.Policies[:0]
		for _, token := range strings.Split(*policiesFlag, ",") {
			kind, ok := qosparams.ParsePolicyKind(strings.TrimSpace(token))
			if !ok {
				logger.Error("unknown policy token", "token", token)
				return 1
			}
			opts.Policies = append(opts.Policies, kind)
		}
	}

	if *validateExpr != "" {
		validate, err := qosvalidate.Compile(*validateExpr)
		if err != nil {
			logger.Error("invalid validation expression", "error", err)
			return 1
		}
		opts.Validation = validate
	}

	profile := qos.KeepLast(*depth)
	rel, ok := qos.ParseReliability(*reliability)
	if !ok {
		logger.Error("invalid reliability value", "value", *reliability)
		return 1
	}
	profile.Reliability = rel

	var store params.Store
	var memory *params.MemoryStore
	switch *storeKind {
	case "memory":
		memory = params.NewMemoryStore()
		if *overridesPath != "" {
			overrides, err := params.LoadOverridesFile(*overridesPath)
			if err != nil {
				logger.Error("failed to load overrides", "path", *overridesPath, "error", err)
				return 1
			}
			memory.SetOverrides(overrides)
		}
		store = memory
	case "postgres":
		db, err := sql.Open("postgres", *dsn)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return 1
		}
		defer db.Close()
		store = params.NewSQLStore(db)
	default:
		logger.Error("unknown store kind", "store", *storeKind)
		return 1
	}

	if err := qosparams.Declare(opts, store, *topic, entityType, &profile); err != nil {
		logger.Error("override declaration failed", "topic", *topic, "entity", *entity, "error", err)
		return 1
	}

	out := resolveOutput{Profile: profile}
	if memory != nil {
		out.Parameters = make(map[string]any)
		for _, name := range memory.ByPrefix("qos_overrides.") {
			v, _ := memory.Get(name)
			out.Parameters[name] = v.Interface()
		}
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		logger.Error("failed to encode output", "error", err)
		return 1
	}
	return 0
}

func runCheckCmd(args []string, stdout io.Writer, logger *slog.Logger) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	overridesPath := fs.String("overrides", "", "YAML override file to validate (required)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *overridesPath == "" {
		logger.Error("missing required -overrides flag")
		return 1
	}

	overrides, err := params.LoadOverridesFile(*overridesPath)
	if err != nil {
		logger.Error("override file rejected", "path", *overridesPath, "error", err)
		return 1
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	// Stable output for scripting.
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	logger.Info("override file ok", "path", *overridesPath, "parameters", len(names))
	return 0
}
