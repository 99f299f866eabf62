package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/tuannm99/clusterdict/internal"
	"github.com/tuannm99/clusterdict/internal/dict"
	"github.com/tuannm99/clusterdict/internal/logging"
	"github.com/tuannm99/clusterdict/internal/memdict"
)

const usage = `Usage: dictls [-config config.yaml] <command> [arg]

Commands:
  databases                list databases owning usable tables
  tables <database>        list usable table names in a database
  tablespaces              list tablespace names
  logfile-groups           list logfile group names
  datafiles <tablespace>   list datafile names in a tablespace
  undofiles <group>        list undofile names in a logfile group
`

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := internal.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closeLog := logging.Setup(cfg.Log.SeqURL, cfg.Log.Debug)
	defer closeLog()

	d, err := memdict.LoadSnapshot(cfg.Snapshot.Path)
	if err != nil {
		logger.Error("failed to load snapshot", "path", cfg.Snapshot.Path, "error", err)
		os.Exit(1)
	}
	logger.Debug("snapshot loaded", "path", cfg.Snapshot.Path)

	names, err := run(d, flag.Args())
	if err != nil {
		logger.Error("query failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
}

func run(d dict.Dictionary, args []string) ([]string, error) {
	set := make(map[string]struct{})

	switch cmd := args[0]; cmd {
	case "databases":
		if err := dict.DatabaseNames(d, set); err != nil {
			return nil, err
		}

	case "tables":
		if len(args) != 2 {
			return nil, errors.New("usage: tables <database>")
		}
		if err := dict.TableNamesInSchema(d, args[1], set); err != nil {
			return nil, err
		}

	case "tablespaces":
		if err := dict.TablespaceNames(d, set); err != nil {
			return nil, err
		}

	case "logfile-groups":
		if err := dict.LogfileGroupNames(d, set); err != nil {
			return nil, err
		}

	case "undofiles":
		if len(args) != 2 {
			return nil, errors.New("usage: undofiles <logfile group>")
		}
		return dict.UndofileNames(d, args[1], nil)

	case "datafiles":
		if len(args) != 2 {
			return nil, errors.New("usage: datafiles <tablespace>")
		}
		return dict.DatafileNames(d, args[1], nil)

	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names, nil
}
