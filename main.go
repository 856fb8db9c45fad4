package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Do not print time in logs.
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
	env, err := loadEnv()
	if err != nil {
		log.Fatal(err)
	}
	// Parse Flags
	var (
		configFlag  string
		sepFlag     string
		verboseFlag bool
		writeFlag   bool
		writeToFlag string
	)
	config := defaultConfig
	configHelp := "path of config file holding default answers"
	if env.Config != "" {
		config = env.Config
		configHelp += ", default inherited from TCCALC_CONFIG environment variable"
	}
	flag.StringVar(&configFlag, "config", config, configHelp)
	flag.StringVar(&sepFlag, "sep", "\t", "report fields will be separated by this value when printed")
	flag.BoolVar(&verboseFlag, "v", false, "print debug logs")
	flag.BoolVar(&writeFlag, "w", false, "write the report to excel file. will print instead when it is false.")
	flag.StringVar(&writeToFlag, "f", "tccalc_output.xlsx", "excel file path to be written. no-op if -w flag is off. existing file will be overrided.")
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, filepath.Base(os.Args[0])+" [args...]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if env.LogLevel != "" {
		lvl, err := log.ParseLevel(env.LogLevel)
		if err != nil {
			log.Fatalf("invalid TCCALC_LOG_LEVEL: %v", err)
		}
		log.SetLevel(lvl)
	}
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if writeToFlag == "" {
		// Cannot write, print instead.
		writeFlag = false
	}
	explicit := configFlag != defaultConfig
	cfg, err := loadConfig(configFlag, explicit)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("config", configFlag).Debug("config loaded")

	s, err := Run(NewPrompter(os.Stdin, os.Stdout), cfg)
	if err != nil {
		log.Fatal(err)
	}
	table := SessionTable(s)
	if !writeFlag {
		fmt.Println()
		table.Print(os.Stdout, sepFlag)
		return
	}
	if err := table.WriteExcel(writeToFlag); err != nil {
		log.Fatal(err)
	}
	log.WithField("file", writeToFlag).Info("report written")
}
