// Command maskgen builds a chip layout from a configuration file and reports
// the flattened geometry per layer.
//
// Parameters are read from maskgen.toml in the working directory, or from the
// file named by -config. Every parameter has a default, so maskgen runs
// without any configuration.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var configFile = flag.String("config", "", "configuration file (default ./maskgen.toml)")
var printConfig = flag.Bool("print-config", false, "print the effective configuration and exit")

func main() {
	flag.Parse()

	v := viper.New()
	SetDefaults(v)
	if err := ProcessConfigFile(v, *configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *printConfig {
		keys := v.AllKeys()
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Println(key, "=", v.Get(key))
		}
		return
	}

	log, err := NewLogger(logConfig(v))
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating logger:", err)
		os.Exit(1)
	}
	defer log.Sync()
	if used := v.ConfigFileUsed(); used != "" {
		log.Info("loaded configuration", zap.String("file", used))
	}

	ch, err := buildChip(v, log, time.Now().Format("02/01/2006"))
	if err != nil {
		log.Error("building chip", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	logStats(ch, log)
}
