package main

import (
	"math/rand/v2"

	"wardrobe/internal/catalog"
	"wardrobe/internal/config"
	"wardrobe/internal/log"
	"wardrobe/internal/wardrobe"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile string
	root    string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "wardrobe",
		Short:   "Page through your clothes and pick an outfit",
		Long:    `Wardrobe shows one image each from your tops, bottoms and shoes directories and can put together a random outfit.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(flags.debug)
		},
		SilenceUsage: true,
		// With no subcommand, open the window.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/wardrobe/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", "directory holding the category directories (overrides library.root)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newGUICmd(flags))
	rootCmd.AddCommand(newTUICmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newOutfitCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}

// loadConfig reads the config file named by --config, or the default one,
// and applies --root.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.cfgFile != "" {
		cfg, err = config.LoadConfigFile(flags.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	if flags.root != "" {
		cfg.Library.Root = flags.root
	}
	return cfg, nil
}

// loadWardrobe scans the library and builds the selection state.
func loadWardrobe(flags *globalFlags, opts ...wardrobe.Option) (*config.Config, *wardrobe.Wardrobe, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	w, err := wardrobe.New(cat, opts...)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("loaded %d categories from %s", len(cat.Categories), cfg.Library.Root)
	return cfg, w, nil
}

// seededRand returns a deterministic source for --seed.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
